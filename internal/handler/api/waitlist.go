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

type WaitlistHandler struct {
	waitlist      commands.WaitlistCommands
	defaultLocale locale.Locale
}

func NewWaitlistHandler(waitlist commands.WaitlistCommands, defaultLocale locale.Locale) *WaitlistHandler {
	return &WaitlistHandler{waitlist: waitlist, defaultLocale: defaultLocale}
}

// @Summary Join the waitlist
// @Description The locale comes from Accept-Language; unsupported languages fall back to the site default.
// @Tags waitlist
// @Accept json
// @Produce json
// @Param request body reqdto.WaitlistRequest true "Waitlist signup"
// @Success 201 {object} resdto.SubmissionResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/waitlist [post]
func (h *WaitlistHandler) Join(c *gin.Context) {
	var req reqdto.WaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidBody, nil)
		return
	}

	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidBody, nil)
		return
	}

	loc := locale.Resolve(c.GetHeader("Accept-Language"), h.defaultLocale)
	if err := h.waitlist.Join(c.Request.Context(), in, loc); err != nil {
		abortWithSubmissionError(c, err, "This email is already on the waitlist")
		return
	}

	c.JSON(http.StatusCreated, resdto.Submitted("Successfully joined the waitlist"))
}
