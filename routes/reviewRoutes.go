package routes

import (
	"camerahive/controllers"
	"camerahive/middlewares"

	"github.com/gin-gonic/gin"
)

func ReviewRoutes(server *gin.Engine) {
	server.POST("/reviews", middlewares.RequireSession(), controllers.CreateReview)
	server.GET("/reviews/rental/:rentalId", controllers.GetRentalReviews)
	server.GET("/reviews", middlewares.RequireSession(), middlewares.RequireAdmin(), controllers.GetAllReviews)
}
