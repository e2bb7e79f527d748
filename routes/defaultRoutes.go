package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", func(ctx *gin.Context) {
		message := `Welcome to the ShopIt storefront gateway.

PUBLIC
- GET "/products/" - Browse the catalog
- GET "/products/:id" - Get product by ID
- GET "/collections/" - List collections
- GET "/get-states/" - Delivery states
- POST "/join-newsletter/" - Subscribe to the newsletter

CART
- GET "/cart/" - Current session cart
- POST "/cart/" - Add an item
- GET "/cart/quote/" - Reconciled totals

CHECKOUT
- POST "/checkout/open/" - Start checkout
- POST "/checkout/submit/" - Place the order
- POST "/checkout/payment-claim/:orderId/" - Claim a bank transfer`

		ctx.JSON(http.StatusOK, gin.H{"message": message})
	})

	server.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
