package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/fproduction/studio-backend/internal/auditlog"
	"github.com/fproduction/studio-backend/internal/auth"
	"github.com/fproduction/studio-backend/internal/catalog"
	"github.com/fproduction/studio-backend/internal/contact"
	"github.com/fproduction/studio-backend/internal/dashboard"
	"github.com/fproduction/studio-backend/internal/event"
	"github.com/fproduction/studio-backend/internal/image"
	"github.com/fproduction/studio-backend/internal/landing"
	"github.com/fproduction/studio-backend/internal/reports"
	"github.com/fproduction/studio-backend/internal/video"
	"github.com/fproduction/studio-backend/middleware"
)

// Deps carries the wired handlers and the pieces middleware needs.
type Deps struct {
	Sessions  *auth.Service
	Redis     *redis.Client
	Auth      *auth.Handler
	Landing   *landing.Handler
	Contact   *contact.Handler
	Event     *event.Handler
	Image     *image.Handler
	Video     *video.Handler
	Catalog   *catalog.Handler
	Dashboard *dashboard.Handler
	AuditLog  *auditlog.Handler
	Reports   *reports.Handler
}

// Setup registers every route on the engine.
func Setup(r *gin.Engine, d Deps) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit("300-M", d.Redis))

	// public surface
	api.GET("/landing/images", d.Landing.Images)
	api.POST("/contact", middleware.RateLimit("5-H", d.Redis), d.Contact.Submit)

	// login sits under /admin but outside the session guard
	api.POST("/admin/login", middleware.RateLimit("10-M", d.Redis), d.Auth.Login)
	api.DELETE("/admin/login", d.Auth.Logout)

	// back office
	admin := api.Group("/admin")
	admin.Use(middleware.RequireAdmin(d.Sessions))
	{
		admin.GET("/session", d.Auth.Me)
		admin.GET("/dashboard", d.Dashboard.Summary)

		events := admin.Group("/events")
		{
			events.GET("", d.Event.List)
			events.POST("", d.Event.Create)
			events.GET("/:id", d.Event.Get)
			events.PATCH("/:id", d.Event.Update)
			events.DELETE("/:id", d.Event.Delete)
		}

		media := admin.Group("/media")
		{
			media.GET("", d.Image.List)
			media.POST("/presigned-urls", d.Image.PresignUploads)
			media.POST("/batch", d.Image.SaveBatch)
			media.PATCH("/:id", d.Image.Update)
			media.DELETE("/:id", d.Image.Delete)

			media.GET("/videos", d.Video.List)
			media.POST("/videos", d.Video.Create)
			media.PATCH("/videos/:id", d.Video.Update)
			media.DELETE("/videos/:id", d.Video.Delete)
		}

		services := admin.Group("/services")
		{
			services.GET("", d.Catalog.List)
			services.POST("", d.Catalog.Create)
			services.GET("/:id", d.Catalog.Get)
			services.PATCH("/:id", d.Catalog.Update)
			services.DELETE("/:id", d.Catalog.Delete)
		}

		contacts := admin.Group("/contacts")
		{
			contacts.GET("", d.Contact.List)
			contacts.GET("/:id", d.Contact.Get)
			contacts.PATCH("/:id", d.Contact.Update)
		}

		admin.GET("/logs", d.AuditLog.GetLogs)

		reportsGroup := admin.Group("/reports")
		{
			reportsGroup.GET("/contacts", d.Reports.ExportContacts)
			reportsGroup.GET("/events", d.Reports.ExportEvents)
		}
	}

	// debug surface, session-guarded like the rest of the back office
	debug := api.Group("/debug")
	debug.Use(middleware.RequireAdmin(d.Sessions))
	{
		debug.GET("/images", d.Image.ListRecent)
	}
}
