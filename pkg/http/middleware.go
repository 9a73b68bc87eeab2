package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"liyu1981.xyz/aquarium-service/pkg/aqua"
)

const (
	ContextKeyUsername = "aqua.username"
	ContextKeyToken    = "aqua.token"

	bearerPrefix = "Bearer "
)

func bearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}

// AuthGate admits a request only when its bearer token maps to a live session.
func (rs *RestfulServer) AuthGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		username, err := rs.Aqua.Auth.ResolveToken(token)
		if errors.Is(err, aqua.ErrUnauthorized) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		if err != nil {
			rs.respondError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextKeyToken, token)
		c.Set(ContextKeyUsername, username)
		c.Next()
	}
}
