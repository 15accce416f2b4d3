package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
)

// requestLogger logs one line per request once the handler chain finishes.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()
	if h.log == nil {
		return
	}

	kv := []interface{}{
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", c.Writer.Status(),
		"latency", time.Since(start),
		"client_ip", c.ClientIP(),
	}
	switch {
	case c.Writer.Status() >= 500:
		h.log.Errorw("http_request", kv...)
	case c.Writer.Status() >= 400:
		h.log.Infow("http_request", kv...)
	default:
		h.log.Debugw("http_request", kv...)
	}
}
