package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"subs_dashboard/internal/gateways/http/mw"
	"subs_dashboard/internal/usecase"
)

const dateLayout = "2006-01-02"

func setupRouter(r *gin.Engine, u UseCases) {
	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	{
		v1 := r.Group("api/v1/")
		setupOptions(v1)
		setupAuth(v1, u)

		private := v1.Group("", mw.RequireSession(u.Auth))
		setupLogout(private, u)
		setupCategories(private, u)
		setupSubscriptions(private, u)
		setupSubscriptionsID(private, u)
		setupDashboard(private, u)
	}
}

// setupOptions answers OPTIONS without a session so clients can discover methods
func setupOptions(r *gin.RouterGroup) {
	allow := map[string]string{
		"/auth/signup":       "POST,OPTIONS",
		"/auth/login":        "POST,OPTIONS",
		"/auth/logout":       "POST,OPTIONS",
		"/categories":        "GET,POST,OPTIONS",
		"/categories/:id":    "DELETE,OPTIONS",
		"/subscriptions":     "GET,POST,OPTIONS",
		"/subscriptions/:id": "GET,PUT,DELETE,OPTIONS",
		"/dashboard/stats":   "GET,OPTIONS",
	}
	for path, methods := range allow {
		r.OPTIONS(path, func(c *gin.Context) {
			c.Writer.Header().Set("Allow", methods)
			c.Status(http.StatusNoContent)
		})
	}
}

func acceptsJSON(h string) bool {
	if h == "" || h == "*/*" {
		return true
	}
	parts := strings.Split(h, ",")
	for _, p := range parts {
		mt := strings.TrimSpace(strings.SplitN(p, ";", 2)[0])
		if mt == "application/json" || mt == "application/*" || mt == "*/*" {
			return true
		}
	}
	return false
}

func requireAcceptJSON(c *gin.Context) bool {
	if acceptsJSON(c.GetHeader("Accept")) {
		return true
	}
	c.JSON(http.StatusNotAcceptable, gin.H{"error": "Accept application/json only"})
	return false
}

func requireJSONBody(c *gin.Context) bool {
	if c.ContentType() != "" && c.ContentType() != "application/json" {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "Use application/json"})
		return false
	}
	return true
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, strings.TrimSpace(s), time.UTC)
}

// respondUseCaseErr maps errors shared by every protected handler; it reports whether it wrote a response
func respondUseCaseErr(c *gin.Context, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, usecase.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case errors.Is(err, usecase.ErrInvalidID):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid id"})
	case errors.Is(err, usecase.ErrInvalidPagination):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid pagination"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
	return true
}
