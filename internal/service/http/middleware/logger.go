package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handlers record what a request did under these keys so it shows up in the
// request log line.
const (
	ExampleKey       = "example_key"
	SubjectStateKey  = "subject_state"
	DeliveryErrorKey = "delivery_error"
)

func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		event := logger.Info()
		if c.Writer.Status() >= 500 {
			event = logger.Error()
		}
		event = event.Str("method", c.Request.Method).
			Str("route", c.FullPath()).
			Str("path", c.Request.URL.Path).
			Str("client_ip", c.ClientIP()).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start))
		if key := c.GetString(ExampleKey); key != "" {
			event = event.Str("example", key)
		}
		if state, ok := c.Get(SubjectStateKey); ok {
			event = event.Interface("state", state)
		}
		if msg := c.GetString(DeliveryErrorKey); msg != "" {
			event = event.Str("delivery_error", msg)
		}
		event.Msg("request log")
	}
}
