package controllers

import (
	"net/http"

	"camerahive/models"

	"github.com/gin-gonic/gin"
)

type addToWishlistInput struct {
	CameraID string `json:"cameraId" binding:"required"`
}

type moveToCartInput struct {
	Type string `json:"type" binding:"required,oneof=buy rent"`
}

func GetWishlist(ctx *gin.Context) {
	sess := currentSession(ctx)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"items": sess.Cart.Wishlist()})
}

func AddToWishlist(ctx *gin.Context) {
	var input addToWishlistInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	sess := currentSession(ctx)
	camera, err := remote(sess).GetCamera(ctx.Request.Context(), input.CameraID)
	if err != nil {
		handleRemoteError(ctx, sess, err)
		return
	}

	added, notice := sess.Cart.AddToWishlist(camera)
	status := http.StatusCreated
	if !added {
		status = http.StatusOK
	}
	sendJSONResponse(ctx, status, gin.H{"message": notice})
}

func RemoveFromWishlist(ctx *gin.Context) {
	sess := currentSession(ctx)
	sess.Cart.RemoveFromWishlist(ctx.Param("cameraId"))
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Item removed from wishlist"})
}

// MoveWishlistItemToCart adds a saved camera to the cart in the requested
// mode. The wishlist entry stays, mirroring how saving for later and
// intending to buy are independent.
func MoveWishlistItemToCart(ctx *gin.Context) {
	var input moveToCartInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	sess := currentSession(ctx)
	cameraID := ctx.Param("cameraId")
	for _, entry := range sess.Cart.Wishlist() {
		if entry.Camera.ID == cameraID {
			if input.Type == models.TypeRent && entry.Camera.RentalPrice <= 0 {
				sendErrorResponse(ctx, http.StatusBadRequest, entry.Camera.Name+" is not available for rent")
				return
			}
			notice := sess.Cart.AddToCart(entry.Camera, input.Type)
			sendJSONResponse(ctx, http.StatusOK, gin.H{"message": notice})
			return
		}
	}

	sendErrorResponse(ctx, http.StatusNotFound, "Camera not found in wishlist")
}
