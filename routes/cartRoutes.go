package routes

import (
	"camerahive/controllers"
	"camerahive/middlewares"

	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine) {
	cart := server.Group("/cart", middlewares.RequireSession())
	{
		cart.GET("", controllers.GetCart)
		cart.POST("", controllers.AddToCart)
		cart.PATCH("/:cameraId", controllers.ChangeRentalDays)
		cart.DELETE("/:cameraId", controllers.RemoveFromCart)
	}

	wishlist := server.Group("/wishlist", middlewares.RequireSession())
	{
		wishlist.GET("", controllers.GetWishlist)
		wishlist.POST("", controllers.AddToWishlist)
		wishlist.DELETE("/:cameraId", controllers.RemoveFromWishlist)
		wishlist.POST("/:cameraId/cart", controllers.MoveWishlistItemToCart)
	}

	checkout := server.Group("/checkout", middlewares.RequireSession())
	{
		checkout.POST("", controllers.StartCheckout)
		checkout.POST("/callback", controllers.GatewayCallback)
	}
}
