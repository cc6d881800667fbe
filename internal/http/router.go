package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/codecpt/portfolio-api/internal/config"
	"github.com/codecpt/portfolio-api/internal/http/handlers"
	"github.com/codecpt/portfolio-api/internal/http/middlewares"
	"github.com/codecpt/portfolio-api/internal/observability"
	"github.com/codecpt/portfolio-api/internal/session"
	"github.com/codecpt/portfolio-api/internal/store"
)

// Deps is everything the router needs; main wires the concrete backends.
type Deps struct {
	Log      *slog.Logger
	Store    store.Store
	Sessions *session.Manager
	Prom     *observability.Prom
	Cfg      config.Config

	// Ping checks the storage backend for /readyz; nil means always ready.
	Ping func() error
}

func NewRouter(deps Deps) *gin.Engine {
	if deps.Cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// middleware

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(otelgin.Middleware("portfolio-api"))
	r.Use(middlewares.RequestLogger(deps.Log))
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(deps.Cfg.AllowedOrigins))
	r.Use(middlewares.RequireJSON())
	r.Use(middlewares.MaxBodyBytes(deps.Cfg.MaxBodyBytes))

	if deps.Prom != nil {
		r.Use(deps.Prom.GinHandleMiddleware())
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// health
	h := handlers.NewHealthHandler(deps.Ping)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)

	// anonymous endpoints get a fixed-window limiter per client IP
	limiter := middlewares.NewRateLimiter(deps.Cfg.RateLimit, deps.Cfg.RateLimitWindow)

	secureCookies := deps.Cfg.Env == "prod"

	authHandler := handlers.NewAuthHandler(deps.Store, deps.Sessions, deps.Log, deps.Prom, secureCookies)
	blogHandler := handlers.NewBlogPostsHandler(deps.Store, deps.Log)
	projectsHandler := handlers.NewProjectsHandler(deps.Store, deps.Log)
	stacksHandler := handlers.NewTechStacksHandler(deps.Store, deps.Log)
	contactHandler := handlers.NewContactHandler(deps.Store, deps.Log)

	api := r.Group("/api")

	api.POST("/auth/login", limiter.Middleware(), authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/auth/status", authHandler.Status)

	api.GET("/blog-posts", blogHandler.ListBlogPosts)
	api.GET("/blog-posts/:slug", blogHandler.GetBlogPostBySlug)

	api.GET("/projects", projectsHandler.ListProjects)
	api.GET("/projects/:id", projectsHandler.GetProjectById)

	api.GET("/tech-stacks", stacksHandler.ListTechStacks)
	api.GET("/tech-stacks/:id", stacksHandler.GetTechStackById)

	api.POST("/contact", limiter.Middleware(), contactHandler.SubmitMessage)

	// everything below requires a live admin session
	gate := middlewares.NewSessionGate(deps.Sessions)
	admin := api.Group("", gate.RequireAdmin())

	admin.POST("/blog-posts", blogHandler.CreateBlogPost)
	admin.PUT("/blog-posts/:id", blogHandler.UpdateBlogPost)
	admin.DELETE("/blog-posts/:id", blogHandler.DeleteBlogPost)

	admin.POST("/projects", projectsHandler.CreateProject)
	admin.PUT("/projects/:id", projectsHandler.UpdateProject)
	admin.DELETE("/projects/:id", projectsHandler.DeleteProject)

	admin.POST("/tech-stacks", stacksHandler.CreateTechStack)
	admin.PUT("/tech-stacks/:id", stacksHandler.UpdateTechStack)
	admin.DELETE("/tech-stacks/:id", stacksHandler.DeleteTechStack)

	admin.GET("/contact-messages", contactHandler.ListMessages)
	admin.DELETE("/contact-messages/:id", contactHandler.DeleteMessage)

	return r
}
