package api

import (
	"net/http"

	reqdto "sendero-web/internal/handler/dto/request"
	resdto "sendero-web/internal/handler/dto/response"
	"sendero-web/internal/handler/httperr"
	"sendero-web/internal/handler/middleware"
	"sendero-web/internal/pkg/clock"
	"sendero-web/internal/pkg/errs"
	"sendero-web/internal/pkg/session"
	"sendero-web/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	sessions    *session.Manager
	clock       clock.Clock
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, sessions *session.Manager, clk clock.Clock) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		sessions:    sessions,
		clock:       clk,
	}
}

// @Summary Preview login
// @Description Exchange the shared site password for a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Password is required", nil)
		return
	}
	if req.Password == nil || *req.Password == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("password missing"), "Password is required", nil)
		return
	}

	if err := h.authUseCase.Authenticate(c.Request.Context(), *req.Password); err != nil {
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid password", nil)
		return
	}

	// A stale or tampered cookie is replaced, not rejected.
	sess, _ := h.sessions.Load(c.Request)
	sess.MarkAuthenticated(h.clock.Now())
	if err := sess.Save(c.Request, c.Writer); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{
		Success:   true,
		ReturnURL: middleware.SafeReturnURL(req.ReturnURL),
	})
}

// @Summary Preview logout
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.LogoutResponse
// @Failure 500 {object} httperr.Response
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sess, _ := h.sessions.Load(c.Request)
	sess.Clear()
	if err := sess.Save(c.Request, c.Writer); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.LogoutResponse{Success: true})
}
