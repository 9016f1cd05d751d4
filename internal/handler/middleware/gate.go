package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"sendero-web/internal/pkg/config"
	"sendero-web/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

var (
	publicPrefixes = []string{"/api/", "/assets/", "/static/"}
	publicPaths    = map[string]bool{
		"/api":            true,
		"/favicon.ico":    true,
		"/icon.png":       true,
		"/icon.svg":       true,
		"/apple-icon.png": true,
		"/robots.txt":     true,
		"/health":         true,
		"/metrics":        true,
	}
)

func IsPublicPath(path string) bool {
	if publicPaths[path] {
		return true
	}
	for _, p := range publicPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// SessionGate redirects visitors without an authenticated session to the
// login page. It never fails a request: an unreadable cookie counts as
// logged out.
type SessionGate struct {
	sessions  *session.Manager
	enabled   bool
	loginPath string
	logger    *slog.Logger
}

func NewSessionGate(sessions *session.Manager, cfg config.AuthConfig, logger *slog.Logger) *SessionGate {
	loginPath := cfg.LoginPath
	if loginPath == "" {
		loginPath = "/login"
	}
	return &SessionGate{
		sessions:  sessions,
		enabled:   cfg.GateEnabled,
		loginPath: loginPath,
		logger:    logger,
	}
}

func (g *SessionGate) LoginPath() string {
	return g.loginPath
}

func (g *SessionGate) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if !g.enabled || IsPublicPath(path) || path == g.loginPath {
			c.Next()
			return
		}

		sess, err := g.sessions.Load(c.Request)
		if err != nil {
			g.logger.DebugContext(c.Request.Context(), "session cookie rejected", "error", err.Error())
		}
		if err != nil || !sess.IsAuthenticated() {
			c.Redirect(http.StatusTemporaryRedirect, g.loginPath+"?return="+url.QueryEscape(path))
			c.Abort()
			return
		}

		c.Next()
	}
}

// SafeReturnURL keeps redirects on this site: only absolute paths are
// allowed, and protocol-relative or backslash tricks fall back to "/".
func SafeReturnURL(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return "/"
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return raw
}
