package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zaliyastore/shopit-gateway/backend"
	"github.com/zaliyastore/shopit-gateway/checkout"
	"github.com/zaliyastore/shopit-gateway/controllers"
	"github.com/zaliyastore/shopit-gateway/initializers"
	"github.com/zaliyastore/shopit-gateway/middlewares"
	"github.com/zaliyastore/shopit-gateway/notifier"
	"github.com/zaliyastore/shopit-gateway/routes"
	"github.com/zaliyastore/shopit-gateway/store"
)

func init() {
	initializers.LoadEnv()
}

func main() {
	cfg, err := initializers.LoadConfig()
	if err != nil {
		log.Fatal("configuration error: ", err)
	}

	logger, err := initializers.InitLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal("logger error: ", err)
	}
	defer logger.Sync()

	rdb := initializers.ConnectToRedis(cfg, logger)
	sessions := store.NewSessionManager(rdb, cfg.SessionTTL, logger)

	api := backend.New(cfg.BackendBaseURL, cfg.BackendTimeout, logger)
	checkouts := checkout.NewRegistry(api, api, checkout.DefaultBankAccounts, logger)
	hub := notifier.NewHub(logger)

	auth := &controllers.AuthController{Backend: api, JWTSecret: cfg.JWTSecret, CookieSecure: cfg.CookieSecure, Log: logger}
	catalog := &controllers.CatalogController{Backend: api, Log: logger}
	cart := &controllers.CartController{Checkouts: checkouts, Log: logger}
	checkoutCtrl := &controllers.CheckoutController{Checkouts: checkouts, Backend: api, Hub: hub, Log: logger}
	order := &controllers.OrderController{Backend: api, Hub: hub, Log: logger}
	admin := &controllers.AdminController{Backend: api, Log: logger}

	requireAuth := middlewares.RequireAuth(cfg.JWTSecret)
	requireAdmin := middlewares.RequireAdmin()

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", middlewares.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	server.Use(middlewares.RequestID())
	server.Use(middlewares.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	server.Use(middlewares.Session(sessions, int(cfg.SessionTTL.Seconds()), cfg.CookieSecure))

	routes.DefaultRoutes(server)
	routes.CatalogRoutes(server, catalog)
	routes.CartRoutes(server, cart)
	routes.CheckoutRoutes(server, checkoutCtrl, requireAuth)
	routes.AuthRoutes(server, auth, requireAuth)
	routes.OrderRoutes(server, order, requireAuth, requireAdmin)
	routes.AdminRoutes(server, admin, requireAuth, requireAdmin)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server,
	}

	go func() {
		logger.Info("gateway listening", zap.String("port", cfg.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
}
