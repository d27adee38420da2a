package middlewares

import (
	"net/http"
	"strings"

	"camerahive/initializers"

	"github.com/gin-gonic/gin"
)

// SessionKey is where RequireSession parks the resolved *session.Session on
// the gin context.
const SessionKey = "session"

func RequireSession() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token format"})
			return
		}

		sess, err := initializers.Sessions.Get(token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		ctx.Set(SessionKey, sess)
		ctx.Next()
	}
}
