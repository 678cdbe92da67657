package router

import (
	"path/filepath"
	"yanews/internal/config"
	"yanews/internal/handlers"
	"yanews/internal/middleware"
	"yanews/internal/render"
	"yanews/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

// New wires services, middleware and routes into a gin engine.
func New(cfg *config.Config, gdb *gorm.DB) *gin.Engine {
	// Services
	newsService := services.NewNewsService(gdb, cfg.News.PageSize, cfg.News.CacheTTL)
	filter := services.NewContentFilter(cfg.Comments.ForbiddenWords, cfg.Comments.Warning)
	commentService := services.NewCommentService(gdb, newsService, filter)
	authService := services.NewAuthService(gdb)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(reg)
	middleware.RegisterCommentsGauge(reg, newsService.CountComments)

	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(metrics.Middleware())

	// Setup Sessions
	store := cookie.NewStore([]byte(cfg.Session.Secret))
	store.Options(sessions.Options{Path: "/", HttpOnly: true, MaxAge: 14 * 24 * 3600})
	r.Use(sessions.Sessions(cfg.Session.Name, store))

	r.HTMLRender = render.Templates(cfg.Templates.Dir)
	r.Static("/static", filepath.Join(filepath.Dir(cfg.Templates.Dir), "static"))

	r.Use(middleware.LoadUser(authService))

	RegisterRoutes(r, Handlers{
		News:    handlers.NewNewsHandler(newsService, commentService, metrics),
		Comment: handlers.NewCommentHandler(commentService, metrics),
		Auth:    handlers.NewAuthHandler(authService),
		SEO:     handlers.NewSEOHandler(newsService, cfg.Site),
		Health:  handlers.NewHealthHandler(gdb),
	})
	r.GET("/metrics", middleware.Handler(reg))

	return r
}

type Handlers struct {
	News    *handlers.NewsHandler
	Comment *handlers.CommentHandler
	Auth    *handlers.AuthHandler
	SEO     *handlers.SEOHandler
	Health  *handlers.HealthHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	// Public Routes
	r.GET("/", h.News.Home)                    // home page, newest news
	r.GET("/news/:id/", h.News.Detail)         // news detail with comments
	r.POST("/news/:id/", h.News.CreateComment) // post a comment, anonymous is ignored
	r.GET("/robots.txt", h.SEO.RobotsTxt)      // robots.txt
	r.GET("/sitemap.xml", h.SEO.SitemapXML)    // sitemap
	r.GET("/feed.xml", h.SEO.RSSFeed)          // RSS of latest news
	r.GET("/healthz", h.Health.Healthz)        // DB ping

	auth := r.Group("/auth")
	{
		auth.GET("/login/", h.Auth.ShowLogin)
		auth.POST("/login/", h.Auth.Login)
		auth.GET("/signup/", h.Auth.ShowSignup)
		auth.POST("/signup/", h.Auth.Signup)
		auth.GET("/logout/", h.Auth.Logout)
		auth.POST("/logout/", h.Auth.Logout)
	}

	// Protected Routes
	comments := r.Group("/comments")
	comments.Use(middleware.LoginRequired(handlers.LoginURL))
	{
		comments.GET("/:id/edit/", h.Comment.ShowEdit)     // edit form, author only
		comments.POST("/:id/edit/", h.Comment.Edit)        // save edit
		comments.GET("/:id/delete/", h.Comment.ShowDelete) // delete confirmation
		comments.POST("/:id/delete/", h.Comment.Delete)    // delete
		comments.DELETE("/:id/delete/", h.Comment.Delete)
	}
}
