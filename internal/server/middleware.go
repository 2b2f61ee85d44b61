package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// requestLogger はリクエストごとに slog で1行出力するミドルウェアなのだ。
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"status", status,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"latency", time.Since(start),
		}
		if msg := c.Errors.ByType(gin.ErrorTypePrivate).String(); msg != "" {
			attrs = append(attrs, "error", msg)
		}

		switch {
		case status >= http.StatusInternalServerError:
			slog.Error("Request handled", attrs...)
		case status >= http.StatusBadRequest:
			slog.Warn("Request handled", attrs...)
		default:
			slog.Info("Request handled", attrs...)
		}
	}
}
