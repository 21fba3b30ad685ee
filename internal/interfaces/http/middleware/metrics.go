package middleware

import (
	"github.com/gin-gonic/gin"
)

// RequestTracker is satisfied by *metrics.Recorder.
type RequestTracker interface {
	TrackRequest(method, route string) func(status int)
}

// Metrics records request count, latency and in-flight requests per
// matched route template.
func Metrics(tracker RequestTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		done := tracker.TrackRequest(c.Request.Method, c.FullPath())
		c.Next()
		done(c.Writer.Status())
	}
}
