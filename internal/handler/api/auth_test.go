//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"sendero-web/internal/handler/api"
	resdto "sendero-web/internal/handler/dto/response"
	"sendero-web/internal/pkg/clock"
	"sendero-web/internal/pkg/config"
	"sendero-web/internal/pkg/errs"
	"sendero-web/internal/pkg/session"
	"sendero-web/tests/common/builder"
	"sendero-web/tests/common/httptest"
	"sendero-web/tests/common/testutil"
	usecasemock "sendero-web/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockAuthUseCase
	sessions    *session.Manager
	handler     *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	cfg := config.NewTestConfig()
	var err error
	s.sessions, err = session.NewManager(cfg.Session.Secret, session.Options{CookieName: cfg.Session.CookieName})
	s.Require().NoError(err)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	clk := clock.NewFixedClock(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC))
	s.handler = api.NewAuthHandler(s.mockUseCase, s.sessions, clk)

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/whoami", func(c *gin.Context) {
		sess, _ := s.sessions.Load(c.Request)
		st := sess.State()
		c.JSON(http.StatusOK, gin.H{"authenticated": st.Authenticated, "at": st.AuthenticatedAt.UnixMilli()})
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name         string
	mutate       func(m map[string]any)
	setupMock    func()
	expectCode   int
	expectReturn string
	expectInBody string
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := builder.NewAuthBuilder().BuildDTO()

	tests := []testCaseAuth{
		{
			name: "success keeps a safe return URL",
			setupMock: func() {
				s.mockUseCase.EXPECT().Authenticate(gomock.Any(), "trail-preview").Return(nil)
			},
			expectCode:   http.StatusOK,
			expectReturn: "/es/tours",
		},
		{
			name:   "absolute return URL is replaced",
			mutate: testutil.Field("returnUrl", "https://evil.example/x"),
			setupMock: func() {
				s.mockUseCase.EXPECT().Authenticate(gomock.Any(), "trail-preview").Return(nil)
			},
			expectCode:   http.StatusOK,
			expectReturn: "/",
		},
		{
			name:   "missing return URL defaults to root",
			mutate: testutil.Field("returnUrl", nil),
			setupMock: func() {
				s.mockUseCase.EXPECT().Authenticate(gomock.Any(), "trail-preview").Return(nil)
			},
			expectCode:   http.StatusOK,
			expectReturn: "/",
		},
		{
			name: "rejected password",
			setupMock: func() {
				s.mockUseCase.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(errs.ErrInvalidPassword)
			},
			expectCode:   http.StatusUnauthorized,
			expectInBody: "Invalid password",
		},
		{
			name:         "missing password never reaches the use case",
			mutate:       testutil.Field("password", nil),
			setupMock:    func() {},
			expectCode:   http.StatusBadRequest,
			expectInBody: "Password is required",
		},
		{
			name:         "empty password never reaches the use case",
			mutate:       testutil.Field("password", ""),
			setupMock:    func() {},
			expectCode:   http.StatusBadRequest,
			expectInBody: "Password is required",
		},
		{
			name:   "whitespace password is checked, not rejected as missing",
			mutate: testutil.Field("password", "   "),
			setupMock: func() {
				s.mockUseCase.EXPECT().Authenticate(gomock.Any(), "   ").Return(errs.ErrInvalidPassword)
			},
			expectCode:   http.StatusUnauthorized,
			expectInBody: "Invalid password",
		},
		{
			name:         "password of the wrong type",
			mutate:       testutil.Field("password", true),
			setupMock:    func() {},
			expectCode:   http.StatusBadRequest,
			expectInBody: "Password is required",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			tc.setupMock()

			var body map[string]any
			if tc.mutate != nil {
				body = testutil.DtoMap(s.T(), reqBody, tc.mutate)
			} else {
				body = testutil.DtoMap(s.T(), reqBody)
			}
			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

			if tc.expectCode != http.StatusOK {
				httptest.AssertErrorResponse(s.T(), w, tc.expectCode, tc.expectInBody)
				s.Nil(httptest.ExtractCookie(w, s.sessions.CookieName()))
				return
			}

			var resp resdto.LoginResponse
			httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
			s.True(resp.Success)
			s.Equal(tc.expectReturn, resp.ReturnURL)
			s.NotNil(httptest.ExtractCookie(w, s.sessions.CookieName()))
		})
	}
}

func (s *AuthHandlerTestSuite) TestLoginThenLogoutRoundTrip() {
	s.mockUseCase.EXPECT().Authenticate(gomock.Any(), "trail-preview").Return(nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", builder.NewAuthBuilder().BuildDTO())
	s.Require().Equal(http.StatusOK, w.Code)
	loggedIn := httptest.ExtractCookie(w, s.sessions.CookieName())
	s.Require().NotNil(loggedIn)

	var state struct {
		Authenticated bool  `json:"authenticated"`
		At            int64 `json:"at"`
	}
	w = httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/whoami", nil, []*http.Cookie{loggedIn})
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &state)
	s.True(state.Authenticated)
	s.Equal(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC).UnixMilli(), state.At)

	w = httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/auth/logout", nil, []*http.Cookie{loggedIn})
	var logout resdto.LogoutResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &logout)
	s.True(logout.Success)
	loggedOut := httptest.ExtractCookie(w, s.sessions.CookieName())
	s.Require().NotNil(loggedOut)

	w = httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/whoami", nil, []*http.Cookie{loggedOut})
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &state)
	s.False(state.Authenticated)
}
