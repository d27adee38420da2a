package routes

import (
	"camerahive/controllers"

	"github.com/gin-gonic/gin"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
	server.POST("/contact", controllers.SendContactMessage)
}
