package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"sendero-web/internal/handler/api"
	"sendero-web/internal/handler/middleware"
	"sendero-web/internal/pkg/config"
	"sendero-web/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Waitlist *api.WaitlistHandler
	Contact  *api.ContactHandler
	Feedback *api.FeedbackHandler
	Health   *api.HealthHandler
	Site     *api.SiteHandler
}

type Middlewares struct {
	Logger      *middleware.Logger
	Gate        *middleware.SessionGate
	RateLimiter *middleware.RateLimiter
	Metrics     metrics.Recorder
	Gatherer    prometheus.Gatherer
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	engine.HandleMethodNotAllowed = true
	setupMiddleware(engine, cfg, mw)
	setupRoutes(engine, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.SecurityHeaders())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(mw.Logger.LoggingMiddleware())
	engine.Use(middleware.Metrics(mw.Metrics))
	engine.Use(middleware.ErrorHandler())
	// The gate sits last so that redirects are still logged and counted.
	engine.Use(mw.Gate.Middleware())
}

func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares) {
	engine.GET("/health", h.Health.Check)
	engine.GET("/metrics", gin.WrapH(metrics.Handler(mw.Gatherer)))
	engine.GET(mw.Gate.LoginPath(), h.Site.Login)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limited := []gin.HandlerFunc{mw.RateLimiter.Middleware()}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: limited},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/waitlist", Handler: h.Waitlist.Join, Mw: limited},
			{Method: http.MethodPost, Path: "/contact", Handler: h.Contact.Submit, Mw: limited},
			{Method: http.MethodPost, Path: "/contact/:locale", Handler: h.Contact.Submit, Mw: limited},
			{Method: http.MethodPost, Path: "/feedback", Handler: h.Feedback.Submit, Mw: limited},
		})
	}

	engine.NoMethod(middleware.MethodNotAllowed)
	engine.NoRoute(h.Site.NotFound)
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
