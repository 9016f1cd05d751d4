package api

import (
	"net/http"

	"sendero-web/internal/domain/locale"
	reqdto "sendero-web/internal/handler/dto/request"
	resdto "sendero-web/internal/handler/dto/response"
	"sendero-web/internal/handler/httperr"
	"sendero-web/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	feedback      commands.FeedbackCommands
	defaultLocale locale.Locale
}

func NewFeedbackHandler(feedback commands.FeedbackCommands, defaultLocale locale.Locale) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback, defaultLocale: defaultLocale}
}

// @Summary Leave feedback from the in-page widget
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body reqdto.FeedbackRequest true "Feedback"
// @Success 201 {object} resdto.SubmissionResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/feedback [post]
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req reqdto.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidBody, nil)
		return
	}

	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidBody, nil)
		return
	}

	if err := h.feedback.Submit(c.Request.Context(), in, h.defaultLocale, c.Request.UserAgent()); err != nil {
		abortWithSubmissionError(c, err, "Feedback already received")
		return
	}

	c.JSON(http.StatusCreated, resdto.Submitted("Thanks for your feedback"))
}
