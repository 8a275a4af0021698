package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/richxcame/partner-showcase/internal/partners"
	"github.com/richxcame/partner-showcase/pkg/common"
	"github.com/richxcame/partner-showcase/pkg/config"
	"github.com/richxcame/partner-showcase/pkg/health"
	"github.com/richxcame/partner-showcase/pkg/httpclient"
	"github.com/richxcame/partner-showcase/pkg/logger"
	"github.com/richxcame/partner-showcase/pkg/middleware"
	"github.com/richxcame/partner-showcase/pkg/tracing"
	"go.uber.org/zap"
)

const serviceName = "partner-web"

func main() {
	cfg, err := config.Load(serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Server.Environment, cfg.Observability.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp, err := tracing.Init(ctx, serviceName, cfg.Server.Version, cfg.Observability.OTLPEndpoint)
	if err != nil {
		logger.Fatal("Failed to init tracing", zap.Error(err))
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Failed to flush traces", zap.Error(err))
		}
	}()

	if cfg.Observability.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Observability.SentryDSN,
			Environment: cfg.Server.Environment,
			Release:     serviceName + "@" + cfg.Server.Version,
		}); err != nil {
			logger.Fatal("Failed to init sentry", zap.Error(err))
		}
		defer sentry.Flush(2 * time.Second)
		logger.Info("Sentry error reporting enabled")
	}

	client := httpclient.NewClient(cfg.Backend.APIURL, time.Duration(cfg.Backend.Timeout)*time.Second)
	media := partners.NewMediaResolver(cfg.Backend.APIURL)
	service := partners.NewService(partners.NewRepository(client), media)

	handler, err := partners.NewHandler(service, cfg.Server.SiteURL)
	if err != nil {
		logger.Fatal("Failed to parse templates", zap.Error(err))
	}

	router, err := setupRouter(cfg, handler, media)
	if err != nil {
		logger.Fatal("Failed to set up routes", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Partner web starting",
			zap.String("port", cfg.Server.Port),
			zap.String("backend", cfg.Backend.APIURL),
			zap.String("media", media.BaseURL()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
}

// setupRouter builds the gin engine with the full middleware chain
func setupRouter(cfg *config.Config, handler *partners.Handler, media *partners.MediaResolver) (*gin.Engine, error) {
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.CorrelationID())
	router.Use(middleware.Tracing(cfg.Server.ServiceName))
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics(cfg.Server.ServiceName))
	var imgSources []string
	if origin := mediaOrigin(media.BaseURL()); origin != "" {
		imgSources = append(imgSources, origin)
	}
	router.Use(middleware.SecurityHeaders(imgSources...))
	router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))

	if origins := cfg.Server.AllowedOrigins(); len(origins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = origins
		corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept-Language", middleware.CorrelationIDHeader}
		router.Use(cors.New(corsConfig))
	}

	// Health check and metrics
	backendHealthURL := strings.TrimRight(cfg.Backend.APIURL, "/") + partners.PartnersPath
	router.GET("/healthz", common.HealthCheckWithDeps(cfg.Server.ServiceName, cfg.Server.Version, map[string]func() error{
		"backend": health.CompositeChecker("backend", map[string]health.Checker{
			"partners": health.HTTPEndpointChecker(backendHealthURL),
		}),
	}))
	router.GET("/health/live", common.HealthCheck(cfg.Server.ServiceName, cfg.Server.Version))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Pages
	if err := handler.RegisterPages(router); err != nil {
		return nil, err
	}

	return router, nil
}

// mediaOrigin returns scheme://host of the media base, for the CSP img-src list
func mediaOrigin(base string) string {
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
