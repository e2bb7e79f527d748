package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/zaliyastore/shopit-gateway/backend"
	"github.com/zaliyastore/shopit-gateway/middlewares"
	"github.com/zaliyastore/shopit-gateway/models"
	"github.com/zaliyastore/shopit-gateway/notifier"
)

type OrderController struct {
	Backend *backend.Client
	Hub     *notifier.Hub
	Log     *zap.Logger
}

func (oc *OrderController) GetOrder(ctx *gin.Context) {
	order, err := oc.Backend.GetOrder(ctx.Request.Context(), middlewares.BackendToken(ctx), ctx.Param("orderId"))
	if err != nil {
		respondBackendError(ctx, oc.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, order)
}

// GetOrderHistories lists the caller's orders, or every order when a staff
// member asks for the admin view.
func (oc *OrderController) GetOrderHistories(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))

	asAdmin := false
	if ctx.Query("asAdmin") == "true" {
		if claims, exists := ctx.Get(middlewares.ContextUser); exists {
			role, _ := claims.(jwt.MapClaims)["role"].(string)
			asAdmin = models.Role(role).IsStaff()
		}
	}

	orders, err := oc.Backend.GetOrderHistories(ctx.Request.Context(), middlewares.BackendToken(ctx), page, asAdmin)
	if err != nil {
		respondBackendError(ctx, oc.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

func (oc *OrderController) GetRecentOrders(ctx *gin.Context) {
	orders, err := oc.Backend.GetRecentOrders(ctx.Request.Context(), middlewares.BackendToken(ctx))
	if err != nil {
		respondBackendError(ctx, oc.Log, err)
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

// EditOrder updates an order's status fields and pushes the change to the
// live admin feed.
func (oc *OrderController) EditOrder(ctx *gin.Context) {
	var order models.Order
	if err := ctx.ShouldBindJSON(&order); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	updated, err := oc.Backend.EditOrder(ctx.Request.Context(), middlewares.BackendToken(ctx), ctx.Param("orderId"), order)
	if err != nil {
		respondBackendError(ctx, oc.Log, err)
		return
	}

	oc.Hub.Broadcast(notifier.OrderEvent{Type: notifier.EventOrderUpdated, Order: updated})
	ctx.JSON(http.StatusOK, updated)
}

func (oc *OrderController) CancelOrder(ctx *gin.Context) {
	cancelled, err := oc.Backend.CancelOrder(ctx.Request.Context(), middlewares.BackendToken(ctx), ctx.Param("orderId"))
	if err != nil {
		respondBackendError(ctx, oc.Log, err)
		return
	}

	oc.Hub.Broadcast(notifier.OrderEvent{Type: notifier.EventOrderUpdated, Order: cancelled})
	ctx.JSON(http.StatusOK, cancelled)
}

func (oc *OrderController) SendOrderReminder(ctx *gin.Context) {
	message, err := oc.Backend.SendOrderReminder(ctx.Request.Context(), middlewares.BackendToken(ctx), ctx.Param("orderId"))
	if err != nil {
		respondBackendError(ctx, oc.Log, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": message})
}

// LiveOrders upgrades the connection to the order event feed for the admin
// dashboard.
func (oc *OrderController) LiveOrders(ctx *gin.Context) {
	oc.Hub.Serve(ctx)
}
