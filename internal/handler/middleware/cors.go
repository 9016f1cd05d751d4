package middleware

import (
	"log/slog"
	"strings"

	"sendero-web/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware lets the marketing site call the form API from another
// origin. A "*" entry opens every origin but then drops credentials, since
// browsers refuse a wildcard origin on credentialed requests. With no origins
// configured the site is same-origin only and no CORS headers are written.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	for _, origin := range cfg.AllowOrigins {
		origin = strings.TrimSpace(origin)
		switch origin {
		case "":
		case "*":
			corsCfg.AllowAllOrigins = true
		default:
			corsCfg.AllowOrigins = append(corsCfg.AllowOrigins, origin)
		}
	}
	if !corsCfg.AllowAllOrigins && len(corsCfg.AllowOrigins) == 0 {
		slog.Warn("CORS disabled: no allowed origins configured")
		return func(c *gin.Context) { c.Next() }
	}
	if corsCfg.AllowAllOrigins {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowCredentials = false
	}

	slog.Info("CORS middleware initialized", "allow_origins", corsCfg.AllowOrigins, "allow_all", corsCfg.AllowAllOrigins)
	return cors.New(corsCfg)
}
