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

type ContactHandler struct {
	contact       commands.ContactCommands
	defaultLocale locale.Locale
}

func NewContactHandler(contact commands.ContactCommands, defaultLocale locale.Locale) *ContactHandler {
	return &ContactHandler{contact: contact, defaultLocale: defaultLocale}
}

// @Summary Send a contact message
// @Description The locale segment is optional; unknown locales fall back to the site default.
// @Tags contact
// @Accept json
// @Produce json
// @Param locale path string false "Page locale (en, es)"
// @Param request body reqdto.ContactRequest true "Contact message"
// @Success 201 {object} resdto.SubmissionResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/contact/{locale} [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req reqdto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidBody, nil)
		return
	}

	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidBody, nil)
		return
	}

	loc := locale.Resolve(c.Param("locale"), h.defaultLocale)
	if err := h.contact.Submit(c.Request.Context(), in, loc); err != nil {
		abortWithSubmissionError(c, err, "This message was already received")
		return
	}

	c.JSON(http.StatusCreated, resdto.Submitted("Message sent successfully"))
}
