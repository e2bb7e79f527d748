package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/zaliyastore/shopit-gateway/controllers"
)

// CheckoutRoutes registers the order flow. Opening and editing the form is
// anonymous; submitting and payment operations need the session JWT since
// the upstream order endpoints want the user's token.
func CheckoutRoutes(server *gin.Engine, co *controllers.CheckoutController, requireAuth gin.HandlerFunc) {
	server.POST("/checkout/open/", co.Open)
	server.PATCH("/checkout/address/", co.SetAddress)
	server.POST("/checkout/close/", co.Close)

	server.POST("/checkout/submit/", requireAuth, co.Submit)
	server.POST("/checkout/payment-claim/:orderId/", requireAuth, co.ClaimPayment)
	server.GET("/checkout/payment-qr/:orderId/", requireAuth, co.PaymentQR)
}
