package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskdeck/internal/core/apperror"
	"taskdeck/pkg/logger"
)

// ErrorHandler middleware transforms errors into the {"errors": [...]}
// envelope. Hides internal errors from clients while logging full details.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		// If response already written by handler, do not override it.
		if c.Writer.Written() {
			return
		}

		if appErr, ok := apperror.AsAppError(err); ok {
			if appErr.Err != nil {
				logger.Error(c.Request.Context(), "request error",
					"code", appErr.Code,
					"cause", appErr.Err,
				)
			}
			c.JSON(appErr.HTTPStatus, errorBody(appErr.Message, appErr.Help))
			return
		}

		logger.Error(c.Request.Context(), "unhandled error",
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, errorBody("Internal server error", ""))
	}
}

func errorBody(message, help string) gin.H {
	item := gin.H{"message": message}
	if help != "" {
		item["help"] = help
	}
	return gin.H{"errors": []gin.H{item}}
}
