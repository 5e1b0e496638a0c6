package mw

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// GinSlog writes one access record per request at a level picked from the response status
func GinSlog(l *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []slog.Attr{
			slog.Int("status", status),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("route", c.FullPath()),
			slog.String("query", c.Request.URL.RawQuery),
			slog.String("ip", c.ClientIP()),
			slog.String("ua", c.Request.UserAgent()),
			slog.Float64("latency_ms", float64(time.Since(start).Microseconds())/1000.0),
			slog.Int("size", c.Writer.Size()),
			slog.String("request_id", c.Writer.Header().Get(RequestIDHeader)),
		}
		if uid := UserID(c); uid != "" {
			attrs = append(attrs, slog.String("user_id", uid.String()))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.ByType(gin.ErrorTypeAny).String()))
		}

		l.LogAttrs(c.Request.Context(), levelFor(status), "http request", attrs...)
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	}
	return slog.LevelInfo
}
