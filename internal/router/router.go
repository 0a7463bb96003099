package router

import (
	"time"

	"github.com/devshelf/devshelf/internal/auth"
	"github.com/devshelf/devshelf/internal/catalog"
	"github.com/devshelf/devshelf/internal/config"
	"github.com/devshelf/devshelf/internal/handlers"
	"github.com/devshelf/devshelf/internal/identity"
	"github.com/devshelf/devshelf/internal/metrics"
	"github.com/devshelf/devshelf/internal/middleware"
	"github.com/devshelf/devshelf/internal/repository"
	"github.com/devshelf/devshelf/web"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires repositories, services and handlers onto a gin engine. All state is
// constructed here and passed by reference; nothing is initialized lazily per
// request.
func New(cfg config.Config, handle *gorm.DB) *gin.Engine {
	users := repository.NewUserRepository(handle)
	projects := repository.NewProjectRepository(handle)

	identities := identity.NewService(users)
	sessions := auth.NewSessionManager(cfg.SessionSecret, config.DefaultSessionTTL)

	authHandler := handlers.NewAuthHandler(identities, sessions)
	projectHandler := handlers.NewProjectHandler(catalog.NewService(projects))

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(metrics.Middleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.SetHTMLTemplate(web.Templates())

	r.GET("/healthz", handlers.Healthz(handle))
	r.GET("/metrics", metrics.Handler())

	r.GET("/", authHandler.Index)
	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)

	authed := r.Group("/", middleware.RequireAuth(sessions, identities))
	{
		authed.GET("/logout", authHandler.Logout)
		authed.GET("/dashboard", projectHandler.Dashboard)
		authed.GET("/profile", authHandler.ShowProfile)
		authed.POST("/profile", authHandler.UpdateProfile)

		authed.GET("/projects", projectHandler.List)
		authed.POST("/projects/create", projectHandler.Create)
		authed.GET("/projects/:id/edit", projectHandler.ShowEdit)
		authed.POST("/projects/:id/edit", projectHandler.Update)
		authed.POST("/projects/:id/delete", projectHandler.Delete)
	}

	return r
}
