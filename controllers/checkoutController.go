package controllers

import (
	"errors"
	"net/http"
	"os"

	"camerahive/checkout"
	"camerahive/initializers"
	"camerahive/models"
	"camerahive/session"

	"github.com/gin-gonic/gin"
)

// StartCheckout validates the cart and opens a payment session with the
// gateway. The response carries everything the hosted payment modal needs;
// the cart is not touched until verification succeeds.
func StartCheckout(ctx *gin.Context) {
	sess := currentSession(ctx)

	paymentSession, err := sess.Checkout.Start(ctx.Request.Context())
	if err != nil {
		respondCheckoutError(ctx, sess, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"orderId":   paymentSession.GatewayOrderID,
		"dbOrderId": paymentSession.LocalOrderID,
		"amount":    paymentSession.Amount,
		"currency":  paymentSession.Currency,
		"key":       os.Getenv("RAZORPAY_KEY_ID"),
		"name":      "CameraHive",
		"prefill": gin.H{
			"name":  sess.Identity.Username,
			"email": sess.Identity.Email,
		},
	})
}

// GatewayCallback consumes the hosted gateway's result for the in-flight
// checkout: verified success clears the cart and returns the confirmed
// order, everything else leaves the cart for a retry.
func GatewayCallback(ctx *gin.Context) {
	var result models.GatewayResult
	if err := ctx.ShouldBindJSON(&result); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	sess := currentSession(ctx)
	order, err := sess.Checkout.HandleGatewayResult(ctx.Request.Context(), result)
	if err != nil {
		respondCheckoutError(ctx, sess, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Payment successful!",
		"order":   order,
	})
}

func respondCheckoutError(ctx *gin.Context, sess *session.Session, err error) {
	if errors.Is(err, checkout.ErrInFlight) || errors.Is(err, checkout.ErrNoCheckout) {
		sendErrorResponse(ctx, http.StatusConflict, err.Error())
		return
	}

	var cerr *checkout.Error
	if !errors.As(err, &cerr) {
		sendErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	switch cerr.Kind {
	case checkout.KindValidation:
		sendErrorResponse(ctx, http.StatusBadRequest, cerr.Message)
	case checkout.KindSessionExpired:
		initializers.Sessions.Destroy(sess.ID)
		sendErrorResponse(ctx, http.StatusUnauthorized, msgSessionExpired)
	case checkout.KindCancelled:
		// a dismissed gateway is a neutral outcome, not an error
		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": cerr.Message, "cancelled": true})
	default:
		sendErrorResponse(ctx, http.StatusBadGateway, cerr.Message)
	}
}
