package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/zaliyastore/shopit-gateway/controllers"
)

func AdminRoutes(server *gin.Engine, admin *controllers.AdminController, requireAuth, requireAdmin gin.HandlerFunc) {
	staff := server.Group("/", requireAuth, requireAdmin)

	staff.GET("/dashboard-content/", admin.GetDashboardContent)
	staff.GET("/sales-overview/", admin.GetSalesOverview)

	staff.POST("/product/", admin.UpsertProduct)
	staff.DELETE("/product/:productId/", admin.DeleteProduct)
	staff.POST("/category/", admin.CreateCategory)

	staff.GET("/users/", admin.GetUsers)
	staff.DELETE("/user/:userId/", admin.DeleteUser)
	staff.POST("/assign-moderator/:userId/", admin.AssignModerator)

	staff.POST("/send-message/", admin.SendMessageToUsers)
	staff.GET("/get-message/", admin.GetMessage)
	staff.DELETE("/message/:messageId/", admin.DeleteMessage)

	staff.POST("/create-or-edit-store-promotion/", admin.UpsertStorePromotion)
	staff.GET("/get-store-promotion/", admin.GetStorePromotion)
	staff.POST("/create-or-edit-store-banner/", admin.UpsertStoreBanner)
	staff.POST("/create-or-edit-store-set/", admin.UpsertStoreSet)
	staff.GET("/get-store-sets/", admin.GetStoreSet)
}
