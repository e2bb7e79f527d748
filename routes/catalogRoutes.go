package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/zaliyastore/shopit-gateway/controllers"
)

func CatalogRoutes(server *gin.Engine, catalog *controllers.CatalogController) {
	server.GET("/products/", catalog.GetProducts)
	server.GET("/products/:id", catalog.GetProduct)
	server.GET("/collections/", catalog.GetCollections)
	server.GET("/collections/:slug/", catalog.GetCollectionProducts)
	server.GET("/best-selling-product/", catalog.GetBestSellingProduct)
	server.GET("/latest-discounted-product/", catalog.GetLatestDiscountedProduct)
	server.GET("/top-sellers/", catalog.GetTopSellers)
	server.GET("/suggested-for-you/", catalog.GetSuggestedForYou)
	server.GET("/product-set/", catalog.GetProductSet)
	server.GET("/get-promo-banner/", catalog.GetPromoBanner)
	server.GET("/get-states/", catalog.GetStates)
	server.GET("/get-lga/:state", catalog.GetLGAs)
	server.POST("/join-newsletter/", catalog.JoinNewsletter)
}
