// Package middleware provides HTTP middleware components.
package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"taskdeck/internal/core/apperror"
	appctx "taskdeck/internal/core/context"
	"taskdeck/pkg/logger"
)

// Recovery converts panics into a 500 response. The stack trace goes
// to the log only; the client sees the generic error envelope.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				ctx := c.Request.Context()
				logger.Error(ctx, "panic recovered",
					"error", r,
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()),
				)

				err := apperror.NewInternal(fmt.Errorf("panic: %v", r))
				if reqID := appctx.RequestID(ctx); reqID != "" {
					err = err.WithDetail("request_id", reqID)
				}
				_ = c.Error(err)
				c.Abort()
			}
		}()
		c.Next()
	}
}
