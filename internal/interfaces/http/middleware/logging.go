package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"raffle/internal/shared/authorization"
	"raffle/internal/shared/logger"
)

// Logger writes one access log line per request. Successful reads log at
// debug; successful writes (approvals, draws, submissions) log at info so
// operator actions stay visible at the default level.
func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"route", c.FullPath(),
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if q := c.Request.URL.RawQuery; q != "" {
			args = append(args, "query", q)
		}
		if requestID := c.GetString(ContextKeyRequestID); requestID != "" {
			args = append(args, "request_id", requestID)
		}
		if userID := authorization.CurrentUserID(c); userID != "" {
			args = append(args, "user_id", userID)
		}
		if len(c.Errors) > 0 {
			args = append(args, "error", c.Errors.String())
		}

		switch {
		case status >= http.StatusInternalServerError:
			log.Errorw("request failed", args...)
		case status >= http.StatusBadRequest:
			log.Warnw("request rejected", args...)
		case isWrite(c.Request.Method):
			log.Infow("request completed", args...)
		default:
			log.Debugw("request completed", args...)
		}
	}
}

func isWrite(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
