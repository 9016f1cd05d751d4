//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"sendero-web/internal/handler/dto/request"
	"sendero-web/tests/common/httptest"

	"github.com/stretchr/testify/require"
)

const SessionCookieName = "sendero_auth_session"

// Login signs in with the shared password and returns the sealed session
// cookie for follow-up requests.
func Login(t *testing.T, router http.Handler, password string) *http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Password: &password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	cookie := httptest.ExtractCookie(w, SessionCookieName)
	require.NotNil(t, cookie, "session cookie not found")
	require.NotEmpty(t, cookie.Value, "session cookie is empty")

	return cookie
}
