package api

import (
	"errors"
	"net/http"

	"sendero-web/internal/handler/httperr"
	"sendero-web/internal/pkg/errs"
	"sendero-web/internal/pkg/validation"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidBody     = "Invalid request body"
	msgSubmissionError = "Something went wrong. Please try again later."
)

// abortWithSubmissionError maps a use case error to 400, 409 or 500. Store
// details never reach the client.
func abortWithSubmissionError(c *gin.Context, err error, duplicateMsg string) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		httperr.AbortWithError(c, http.StatusBadRequest, err, verrs.Error(), verrs)
	case errs.Is(err, errs.ErrDuplicateSubmission):
		httperr.AbortWithError(c, http.StatusConflict, err, duplicateMsg, nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgSubmissionError, nil)
	}
}
