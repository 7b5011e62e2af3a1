package api

import (
	"html/template"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/mesa-app/mesa/internal/handler"
	"github.com/mesa-app/mesa/internal/middleware"
	"github.com/mesa-app/mesa/internal/session"
)

func SetupRouter(
	authHandler *handler.AuthHandler,
	healthHandler *handler.HealthHandler,
	sessions *session.Manager,
	metrics *middleware.Metrics,
	pages *template.Template,
	logger *slog.Logger,
) *gin.Engine {
	r := gin.New()
	r.SetTrustedProxies(nil)
	r.SetHTMLTemplate(pages)

	r.Use(
		gin.Recovery(),
		middleware.RequestID(logger),
		middleware.AccessLog(logger),
		metrics.Middleware(),
	)

	// Operational routes
	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Site routes
	site := r.Group("/")
	site.Use(sessions.Middleware())
	{
		site.GET("/", authHandler.ShowHome)
		site.GET("/login", authHandler.ShowHome)
		site.POST("/login", authHandler.Login)
		site.GET("/register", authHandler.ShowHome)
		site.POST("/register", authHandler.Register)
		site.GET("/logout", authHandler.Logout)
	}

	return r
}
