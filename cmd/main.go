package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mavrin/citizen-report-portal/internal/config"
	"github.com/mavrin/citizen-report-portal/internal/draft"
	v1 "github.com/mavrin/citizen-report-portal/internal/handler/http/v1"
	"github.com/mavrin/citizen-report-portal/internal/models"
	"github.com/mavrin/citizen-report-portal/internal/realtime"
	"github.com/mavrin/citizen-report-portal/internal/reconcile"
	"github.com/mavrin/citizen-report-portal/internal/service"
	"github.com/mavrin/citizen-report-portal/internal/upstream"
	"github.com/mavrin/citizen-report-portal/pkg/logger"
	redisclient "github.com/mavrin/citizen-report-portal/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/mavrin/citizen-report-portal/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Citizen Report Portal API
// @version 1.0
// @description Citizen-facing gateway for drafting and submitting crime and incident reports.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis holds the wizard drafts
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	draftStore := draft.NewStore(draft.NewRedisKV(redisClient), log)

	// Records system client and the reconciled in-memory collections
	records := upstream.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamAPIKey, cfg.UpstreamTimeout, log)
	collections := reconcile.NewCollections(log)

	seedCollections(ctx, records, collections, log)

	// Realtime subscriptions feed pushed events into the collections
	streamClient := realtime.NewClient(
		cfg.UpstreamBaseURL,
		func() string { return cfg.RealtimeToken },
		realtime.RetryPolicy{
			MaxRetries: cfg.RealtimeMaxRetries,
			BaseDelay:  cfg.RealtimeBaseDelay,
			MaxDelay:   cfg.RealtimeMaxDelay,
		},
		log,
	)
	crimeSub := streamClient.Subscribe(ctx, "crimes", func(ev reconcile.Event) {
		collections.Apply(models.KindCrime, ev)
	})
	incidentSub := streamClient.Subscribe(ctx, "incidents", func(ev reconcile.Event) {
		collections.Apply(models.KindIncident, ev)
	})

	portalService := service.NewPortalService(
		records,
		draftStore,
		collections,
		service.ParseEvidencePolicy(cfg.EvidenceUploadPolicy),
		log,
	)

	handler := v1.NewHandler(portalService, log, cfg)

	router := gin.Default()
	router.Use(corsMiddleware(cfg))

	api := router.Group("/api/v1")
	handler.RegisterSystemRoutes(api)

	protected := api.Group("")
	protected.Use(v1.CitizenAuthMiddleware(cfg, log))
	handler.RegisterRoutes(protected)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	cancel()
	crimeSub.Cancel()
	incidentSub.Cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}

// seedCollections fills the in-memory collections from the records system.
// A failed fetch is not fatal; pushed events rebuild the view over time.
func seedCollections(ctx context.Context, records *upstream.Client, collections *reconcile.Collections, log *logrus.Logger) {
	crimes, err := records.ListCrimes(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to fetch initial crime reports")
	} else {
		collections.SeedCrimes(crimes)
	}

	incidents, err := records.ListIncidents(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to fetch initial incident reports")
	} else {
		collections.SeedIncidents(incidents)
	}
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	return cors.New(corsCfg)
}
