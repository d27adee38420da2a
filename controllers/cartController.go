package controllers

import (
	"net/http"

	"camerahive/models"

	"github.com/gin-gonic/gin"
)

type addToCartInput struct {
	CameraID string `json:"cameraId" binding:"required"`
	Type     string `json:"type" binding:"required,oneof=buy rent"`
}

type rentalDaysInput struct {
	Type  string `json:"type" binding:"required,oneof=buy rent"`
	Delta int    `json:"delta" binding:"required"`
}

func cartPayload(ctx *gin.Context) gin.H {
	sess := currentSession(ctx)
	return gin.H{
		"items": sess.Cart.Lines(),
		"total": sess.Cart.Total(),
		"count": sess.Cart.Len(),
	}
}

func GetCart(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, cartPayload(ctx))
}

// AddToCart fetches the camera from the catalog so the cart line carries a
// fresh snapshot, then adds it under the (camera, type) key.
func AddToCart(ctx *gin.Context) {
	var input addToCartInput
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
	if input.Type == models.TypeRent && camera.RentalPrice <= 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, camera.Name+" is not available for rent")
		return
	}

	notice := sess.Cart.AddToCart(camera, input.Type)
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": notice})
}

func ChangeRentalDays(ctx *gin.Context) {
	var input rentalDaysInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	sess := currentSession(ctx)
	sess.Cart.ChangeRentalDays(ctx.Param("cameraId"), input.Type, input.Delta)
	sendJSONResponse(ctx, http.StatusOK, cartPayload(ctx))
}

func RemoveFromCart(ctx *gin.Context) {
	lineType := ctx.Query("type")
	if lineType != models.TypeBuy && lineType != models.TypeRent {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	sess := currentSession(ctx)
	sess.Cart.RemoveFromCart(ctx.Param("cameraId"), lineType)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Item removed from cart"})
}
