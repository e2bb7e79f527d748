package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/zaliyastore/shopit-gateway/controllers"
)

func AuthRoutes(server *gin.Engine, auth *controllers.AuthController, requireAuth gin.HandlerFunc) {
	server.POST("/authenticate-user/", auth.AuthenticateUser)
	server.GET("/user/", requireAuth, auth.GetUser)
	server.POST("/edit-address/", requireAuth, auth.EditAddress)
	server.GET("/expense-insight/", requireAuth, auth.GetExpenseInsight)
}
