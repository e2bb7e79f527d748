package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/zaliyastore/shopit-gateway/controllers"
)

func CartRoutes(server *gin.Engine, cart *controllers.CartController) {
	server.GET("/cart/", cart.GetCart)
	server.POST("/cart/", cart.AddItemToCart)
	server.POST("/cart/initialize/", cart.InitializeCart)
	server.DELETE("/cart/:productId/", cart.RemoveItemFromCart)
	server.PATCH("/cart/:productId/quantity/", cart.UpdateItemQuantity)
	server.GET("/cart/quote/", cart.GetQuote)
}
