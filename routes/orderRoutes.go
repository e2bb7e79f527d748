package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/zaliyastore/shopit-gateway/controllers"
)

func OrderRoutes(server *gin.Engine, order *controllers.OrderController, requireAuth, requireAdmin gin.HandlerFunc) {
	server.GET("/order/:orderId/", requireAuth, order.GetOrder)
	server.GET("/order-histories/", requireAuth, order.GetOrderHistories)

	server.GET("/recent-orders/", requireAuth, requireAdmin, order.GetRecentOrders)
	server.PATCH("/order/:orderId/", requireAuth, requireAdmin, order.EditOrder)
	server.PATCH("/cancel-order/:orderId/", requireAuth, requireAdmin, order.CancelOrder)
	server.GET("/order-reminder/:orderId/", requireAuth, requireAdmin, order.SendOrderReminder)
	server.GET("/admin/orders/live/", requireAuth, requireAdmin, order.LiveOrders)
}
