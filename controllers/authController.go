package controllers

import (
	"errors"
	"log"
	"net/http"

	"camerahive/client"
	"camerahive/initializers"
	"camerahive/middlewares"
	"camerahive/models"
	"camerahive/session"

	"github.com/gin-gonic/gin"
)

const (
	// Standard response messages
	msgInvalidInput   = "invalid input"
	msgSessionExpired = "session expired, please log in again"
	msgLoggedOut      = "Logged out successfully"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// currentSession returns the session RequireSession parked on the context.
func currentSession(ctx *gin.Context) *session.Session {
	return ctx.MustGet(middlewares.SessionKey).(*session.Session)
}

// remote returns a catalog API caller bound to the session's bearer token.
func remote(sess *session.Session) *client.Session {
	return initializers.API.WithToken(sess.Identity.Token)
}

// public returns an unauthenticated catalog API caller for open reads.
func public() *client.Session {
	return initializers.API.WithToken("")
}

// handleRemoteError maps a normalized catalog API failure onto an HTTP
// response. A rejected bearer token destroys the session so the user is
// sent back through login.
func handleRemoteError(ctx *gin.Context, sess *session.Session, err error) {
	if errors.Is(err, client.ErrSessionExpired) {
		if sess != nil {
			initializers.Sessions.Destroy(sess.ID)
		}
		sendErrorResponse(ctx, http.StatusUnauthorized, msgSessionExpired)
		return
	}
	sendErrorResponse(ctx, http.StatusBadGateway, err.Error())
}

// Login authenticates against the catalog API and opens a storefront
// session around the returned bearer token.
func Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	token, user, err := public().Login(ctx.Request.Context(), loginData)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	identity := session.Identity{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
	sess, signed, err := initializers.Sessions.Create(identity, initializers.API.WithToken(token))
	if err != nil {
		log.Println("Session creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "failed to create session")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"token": signed,
		"user": gin.H{
			"username": sess.Identity.Username,
			"email":    sess.Identity.Email,
			"role":     sess.Identity.Role,
		},
	})
}

// Register creates an account with the catalog API and logs it straight in.
func Register(ctx *gin.Context) {
	var registerData models.RegisterData
	if err := ctx.ShouldBindJSON(&registerData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if registerData.Role == "" {
		registerData.Role = "user"
	}

	token, user, err := public().Register(ctx.Request.Context(), registerData)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	identity := session.Identity{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
	sess, signed, err := initializers.Sessions.Create(identity, initializers.API.WithToken(token))
	if err != nil {
		log.Println("Session creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "failed to create session")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"token": signed,
		"user": gin.H{
			"username": sess.Identity.Username,
			"email":    sess.Identity.Email,
			"role":     sess.Identity.Role,
		},
	})
}

// Logout destroys the session; the cart and wishlist die with it.
func Logout(ctx *gin.Context) {
	sess := currentSession(ctx)
	initializers.Sessions.Destroy(sess.ID)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgLoggedOut})
}

// Profile returns the cached identity fields for the session.
func Profile(ctx *gin.Context) {
	sess := currentSession(ctx)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"user": sess.Identity})
}
