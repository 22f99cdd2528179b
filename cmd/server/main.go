package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/handsigned/handsigned/backend/internal/api/handlers"
	"github.com/handsigned/handsigned/backend/internal/config"
	"github.com/handsigned/handsigned/backend/internal/database"
	"github.com/handsigned/handsigned/backend/internal/metrics"
	"github.com/handsigned/handsigned/backend/internal/middleware"
	"github.com/handsigned/handsigned/backend/internal/scoring"
)

// Exit codes to provide meaningful status to the operating system or service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return exitConfig, err
	}

	if err := database.Initialize(cfg.DBPath); err != nil {
		return exitRuntime, fmt.Errorf("database init failed: %w", err)
	}
	if err := database.Seed(database.GetDB()); err != nil {
		return exitRuntime, fmt.Errorf("database seed failed: %w", err)
	}
	metrics.UpdateMarketplaceMetrics(database.GetDB())

	svc := scoring.NewService(cfg)
	router := buildRouter(cfg, svc)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Score API listening on http://localhost:%d (provider=%s)", cfg.Port, cfg.Provider)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return exitRuntime, err
	case <-ctx.Done():
	}

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return exitRuntime, fmt.Errorf("shutdown: %w", err)
	}

	return exitOK, nil
}

func buildRouter(cfg *config.Config, svc *scoring.Service) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(newCORS(cfg))
	router.Use(metrics.HTTPMetrics())

	scoreHandler := handlers.NewScoreHandler(svc, cfg)
	catalogHandler := handlers.NewCatalogHandler(svc, cfg.ScoreTimeout)
	limiter := middleware.NewFixedWindowLimiter(cfg.RateLimitWindow, cfg.RateLimitMax)

	router.GET("/health", scoreHandler.Health)
	router.POST("/score", middleware.RateLimit(limiter), scoreHandler.Score)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/listings", catalogHandler.ListListings)
		api.GET("/listings/:id", catalogHandler.GetListing)
		api.POST("/listings", catalogHandler.CreateListing)
		api.PATCH("/listings/:id", catalogHandler.UpdateListing)
		api.DELETE("/listings/:id", catalogHandler.DeleteListing)

		api.GET("/users/:id", catalogHandler.GetUser)
		api.GET("/reviews", catalogHandler.ListReviews)
		api.POST("/reviews", catalogHandler.CreateReview)
		api.GET("/purchases", catalogHandler.ListPurchases)
		api.POST("/purchases", catalogHandler.CreatePurchase)

		api.GET("/auth/status", middleware.AuthStatus(cfg.AdminKey))

		admin := api.Group("/admin", middleware.AdminKeyAuth(cfg.AdminKey))
		admin.POST("/seed", catalogHandler.ReseedDemoData)
	}

	return router
}

func newCORS(cfg *config.Config) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSOrigin == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSOrigin}
	}
	return cors.New(corsCfg)
}
