package routes

import (
	"camerahive/controllers"
	"camerahive/middlewares"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(server *gin.Engine) {
	auth := server.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
		auth.POST("/register", controllers.Register)
		auth.POST("/logout", middlewares.RequireSession(), controllers.Logout)
		auth.GET("/profile", middlewares.RequireSession(), controllers.Profile)
	}
}
