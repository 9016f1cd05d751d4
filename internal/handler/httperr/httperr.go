package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the failure body every endpoint shares.
type Response struct {
	Status  int    `json:"-"`
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func NewResponse(status int, msg string, details any) Response {
	return Response{Status: status, Error: msg, Details: details}
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, details any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg, details)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
