package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetMyOrders returns the calling user's order history from the catalog API.
func GetMyOrders(ctx *gin.Context) {
	sess := currentSession(ctx)
	orders, err := remote(sess).UserOrders(ctx.Request.Context())
	if err != nil {
		handleRemoteError(ctx, sess, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

// GetAllOrders returns every order for the admin dashboard.
func GetAllOrders(ctx *gin.Context) {
	sess := currentSession(ctx)
	orders, err := remote(sess).AllOrders(ctx.Request.Context())
	if err != nil {
		handleRemoteError(ctx, sess, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}
