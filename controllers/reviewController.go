package controllers

import (
	"net/http"

	"camerahive/models"

	"github.com/gin-gonic/gin"
)

func CreateReview(ctx *gin.Context) {
	var review models.Review
	if err := ctx.ShouldBindJSON(&review); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	sess := currentSession(ctx)
	created, err := remote(sess).CreateReview(ctx.Request.Context(), review)
	if err != nil {
		handleRemoteError(ctx, sess, err)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"review": created})
}

func GetRentalReviews(ctx *gin.Context) {
	reviews, err := public().RentalReviews(ctx.Request.Context(), ctx.Param("rentalId"))
	if err != nil {
		handleRemoteError(ctx, nil, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"reviews": reviews})
}

// GetAllReviews feeds the admin dashboard's review moderation table.
func GetAllReviews(ctx *gin.Context) {
	sess := currentSession(ctx)
	reviews, err := remote(sess).AllReviews(ctx.Request.Context())
	if err != nil {
		handleRemoteError(ctx, sess, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"reviews": reviews})
}
