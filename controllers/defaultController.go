package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the CameraHive storefront API.

The following are the endpoints for this API:

AUTH
- POST "/auth/login" - Open a session
- POST "/auth/register" - Create an account and open a session
- POST "/auth/logout" - Close the session
- GET "/auth/profile" - Session identity

CAMERAS
- GET "/cameras" - Browse the catalog (optional ?category=)
- GET "/cameras/sample" - Featured cameras
- GET "/cameras/:id" - Camera details
- POST "/cameras" - Add a camera (admin)
- PUT "/cameras/:id" - Update a camera (admin)
- DELETE "/cameras/:id" - Remove a camera (admin)
- POST "/cameras/images" - Upload camera images (admin)

CART & WISHLIST
- GET "/cart" - Current cart
- POST "/cart" - Add a camera to the cart
- PATCH "/cart/:cameraId" - Adjust rental days
- DELETE "/cart/:cameraId?type=" - Remove a cart line
- GET "/wishlist" - Current wishlist
- POST "/wishlist" - Save a camera for later
- DELETE "/wishlist/:cameraId" - Remove a saved camera
- POST "/wishlist/:cameraId/cart" - Add a saved camera to the cart

CHECKOUT
- POST "/checkout" - Validate the cart and open a payment session
- POST "/checkout/callback" - Deliver the gateway result

ORDERS & REVIEWS
- GET "/orders/my" - Order history
- GET "/orders" - All orders (admin)
- POST "/reviews" - Review a rental
- GET "/reviews/rental/:rentalId" - Reviews for a rental
- GET "/reviews" - All reviews (admin)

CONTACT
- POST "/contact" - Send us a message`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
