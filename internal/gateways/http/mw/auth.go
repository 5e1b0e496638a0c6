package mw

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-openapi/strfmt"

	"subs_dashboard/internal/usecase"
)

const (
	userIDKey = "user_id"
	tokenKey  = "session_token"
)

// Authenticator resolves a bearer token to its owner
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (strfmt.UUID, error)
}

// BearerToken extracts the token from "Authorization: Bearer <token>"
func BearerToken(c *gin.Context) string {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// RequireSession aborts with 401 unless the request carries a live session
func RequireSession(a Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		uid, err := a.Authenticate(c, token)
		switch {
		case errors.Is(err, usecase.ErrUnauthorized):
			c.Header("WWW-Authenticate", `Bearer realm="api"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		case err != nil:
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.Set(userIDKey, uid)
		c.Set(tokenKey, token)
		c.Next()
	}
}

// UserID returns the owner stored by RequireSession
func UserID(c *gin.Context) strfmt.UUID {
	v, ok := c.Get(userIDKey)
	if !ok {
		return ""
	}
	uid, _ := v.(strfmt.UUID)
	return uid
}

// SessionToken returns the token accepted by RequireSession
func SessionToken(c *gin.Context) string {
	return c.GetString(tokenKey)
}
