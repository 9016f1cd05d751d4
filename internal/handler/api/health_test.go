//go:build unit

package api_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"sendero-web/internal/handler/api"
	"sendero-web/internal/pkg/errs"
	"sendero-web/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubChecker struct{ err error }

func (s stubChecker) Ping(context.Context) error { return s.err }

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "database reachable", expectCode: http.StatusOK},
		{name: "database down", err: errs.New("dial tcp: refused"), expectCode: http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/health", api.NewHealthHandler(stubChecker{err: tc.err}, logger).Check)

			w := httptest.PerformRequest(t, r, http.MethodGet, "/health", nil)

			assert.Equal(t, tc.expectCode, w.Code)
			assert.NotContains(t, w.Body.String(), "refused")
		})
	}
}
