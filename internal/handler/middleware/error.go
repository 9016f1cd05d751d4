package middleware

import (
	"log/slog"
	"net/http"

	"sendero-web/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "Internal server error"

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if len(c.Errors) == 0 {
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, internalErrorMessage, nil))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path, "request_id", GetRequestID(c))

				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, internalErrorMessage, nil))
			}
		}()
		c.Next()
	}
}

// MethodNotAllowed answers a known path hit with the wrong verb.
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, httperr.NewResponse(http.StatusMethodNotAllowed, "Method not allowed", nil))
}
