package routes

import (
	"camerahive/controllers"
	"camerahive/middlewares"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine) {
	server.GET("/orders/my", middlewares.RequireSession(), controllers.GetMyOrders)
	server.GET("/orders", middlewares.RequireSession(), middlewares.RequireAdmin(), controllers.GetAllOrders)
}
