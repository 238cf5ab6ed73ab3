package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/fproduction/studio-backend/config"
	"github.com/fproduction/studio-backend/database"
	_ "github.com/fproduction/studio-backend/docs"
	"github.com/fproduction/studio-backend/internal/auditlog"
	"github.com/fproduction/studio-backend/internal/auth"
	"github.com/fproduction/studio-backend/internal/catalog"
	"github.com/fproduction/studio-backend/internal/contact"
	"github.com/fproduction/studio-backend/internal/dashboard"
	"github.com/fproduction/studio-backend/internal/event"
	"github.com/fproduction/studio-backend/internal/image"
	"github.com/fproduction/studio-backend/internal/landing"
	"github.com/fproduction/studio-backend/internal/notification"
	"github.com/fproduction/studio-backend/internal/reports"
	"github.com/fproduction/studio-backend/internal/revalidate"
	"github.com/fproduction/studio-backend/internal/storage"
	"github.com/fproduction/studio-backend/internal/video"
	"github.com/fproduction/studio-backend/routes"
)

// @title           F Production Studio API
// @version         1.0
// @description     Backend for the F Production studio website: public landing feed and contact form, plus the admin back office.
// @BasePath        /api/v1
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	if err := cfg.ValidateAdmin(); err != nil {
		log.Fatalf("config: %v", err)
	}

	db := database.Connect(cfg)
	err := db.AutoMigrate(
		&catalog.Service{},
		&event.Event{},
		&image.Image{},
		&video.Video{},
		&contact.Contact{},
		&auditlog.AdminActionLog{},
	)
	if err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	store, err := storage.NewS3Store(ctx, cfg)
	if err != nil {
		log.Fatalf("object store: %v", err)
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	}

	var notifier revalidate.Notifier = revalidate.NopNotifier{}
	var worker *revalidate.Worker
	if len(cfg.KafkaBrokers) > 0 {
		notifier = revalidate.NewKafkaNotifier(cfg.KafkaBrokers, cfg.RevalidateTopic)
		worker = revalidate.NewWorker(cfg.KafkaBrokers, cfg.RevalidateTopic, cfg.FrontendURL, cfg.RevalidateSecret)
		go worker.Start(ctx)
	}

	filterOverrides := map[string]string{}
	if cfg.LandingFilterMap != "" {
		if err := json.Unmarshal([]byte(cfg.LandingFilterMap), &filterOverrides); err != nil {
			log.Fatalf("LANDING_FILTER_MAP is not valid JSON: %v", err)
		}
	}

	auditRepo := auditlog.NewRepository(db)
	audit := auditlog.NewService(auditRepo)

	sessions := auth.NewService(cfg.AdminUsername, cfg.AdminPassword, cfg.AdminPasswordHash, cfg.SessionSecret)

	catalogRepo := catalog.NewRepository(db)
	cat := catalog.NewCatalog(catalogRepo, notifier)

	imageRepo := image.NewRepository(db)
	imageSvc := image.NewService(imageRepo, store, notifier)

	videoRepo := video.NewRepository(db)
	videoSvc := video.NewService(videoRepo, notifier)

	eventRepo := event.NewRepository(db)
	eventSvc := event.NewService(eventRepo, cat, notifier)

	contactRepo := contact.NewRepository(db)
	notify := notification.NewService(notification.NewEmailSender(cfg), cfg.ContactEmail)
	contactSvc := contact.NewService(contactRepo, notify, notifier)

	landingRepo := landing.NewRepository(db, catalogRepo)
	landingSvc := landing.NewService(landingRepo, landing.NewFilterMap(filterOverrides), store.PublicURL)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Setup(r, routes.Deps{
		Sessions:  sessions,
		Redis:     rdb,
		Auth:      auth.NewHandler(sessions, audit, cfg.SessionMaxAge, cfg.IsProduction()),
		Landing:   landing.NewHandler(landingSvc),
		Contact:   contact.NewHandler(contactSvc, audit),
		Event:     event.NewHandler(eventSvc, audit),
		Image:     image.NewHandler(imageSvc, audit, cfg.MaxUploadSizeMB),
		Video:     video.NewHandler(videoSvc, audit),
		Catalog:   catalog.NewHandler(cat, audit),
		Dashboard: dashboard.NewHandler(dashboard.NewService(db)),
		AuditLog:  auditlog.NewHandler(audit),
		Reports:   reports.NewHandler(contactRepo, eventRepo, audit),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	if worker != nil {
		if err := worker.Close(); err != nil {
			log.Printf("close revalidate worker: %v", err)
		}
	}
}
