//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"sendero-web/internal/handler/middleware"
	"sendero-web/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name            string
		origins         []string
		requestOrigin   string
		expectAllow     string
		expectCredsFlag string
		expectCode      int
	}{
		{name: "listed origin", origins: []string{"https://sendero.travel"}, requestOrigin: "https://sendero.travel", expectAllow: "https://sendero.travel", expectCredsFlag: "true", expectCode: http.StatusOK},
		{name: "unlisted origin", origins: []string{"https://sendero.travel"}, requestOrigin: "https://evil.example", expectAllow: "", expectCredsFlag: "", expectCode: http.StatusForbidden},
		{name: "no origins configured", origins: nil, requestOrigin: "https://sendero.travel", expectAllow: "", expectCredsFlag: "", expectCode: http.StatusOK},
		{name: "only blank origins configured", origins: []string{"", "  "}, requestOrigin: "https://sendero.travel", expectAllow: "", expectCredsFlag: "", expectCode: http.StatusOK},
		{name: "wildcard drops credentials", origins: []string{"*"}, requestOrigin: "https://any.example", expectAllow: "*", expectCredsFlag: "", expectCode: http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.NewTestConfig().CORS
			cfg.AllowOrigins = tc.origins
			cfg.AllowMethods = []string{"GET", "POST"}
			cfg.AllowCredentials = true

			var mw gin.HandlerFunc
			assert.NotPanics(t, func() { mw = middleware.NewCORSMiddleware(cfg) })

			r := gin.New()
			r.Use(mw)
			r.GET("/api/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
			req.Header.Set("Origin", tc.requestOrigin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.expectCode, w.Code)
			assert.Equal(t, tc.expectAllow, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tc.expectCredsFlag, w.Header().Get("Access-Control-Allow-Credentials"))
		})
	}
}
