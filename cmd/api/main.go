package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/priyanshuKshk/dealer-info-api/internal/config"
	"github.com/priyanshuKshk/dealer-info-api/internal/database"
	"github.com/priyanshuKshk/dealer-info-api/internal/handler"
	"github.com/priyanshuKshk/dealer-info-api/internal/middleware"
	"github.com/priyanshuKshk/dealer-info-api/internal/repository"
	"github.com/priyanshuKshk/dealer-info-api/internal/service"
	"github.com/priyanshuKshk/dealer-info-api/internal/utils"
	"github.com/priyanshuKshk/dealer-info-api/internal/web"
)

// main is the application entrypoint for the dealer-info API and panel.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting dealer-info api")

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 4. Initialize repositories
	dealerRepo := repository.NewDealerRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// 5. Initialize services
	tokens := utils.NewTokenIssuer(cfg.JWTSecret, cfg.SessionTTL)
	dealerSvc := service.NewDealerService(dealerRepo)
	authSvc := service.NewAuthService(adminRepo, tokens)

	// 6. Initialize handlers
	dealerHandler := handler.NewDealerHandler(dealerSvc)
	authHandler := handler.NewAuthHandler(authSvc)
	locationHandler := handler.NewLocationHandler()
	healthHandler := handler.NewHealthHandler(db)

	// 7. Initialize middleware
	jwtMw := middleware.NewJWTMiddleware(tokens)

	// 8. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, dealerHandler, authHandler, locationHandler, healthHandler, jwtMw)

	// 8a. Mount the server-rendered panel
	panel := web.New(dealerSvc, authSvc, tokens, cfg.SessionTTL, cfg.Env == "production")
	panel.Register(router)

	// 9. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 10. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 11. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// setupRoutes registers all JSON API routes.
func setupRoutes(
	router *gin.Engine,
	dealers *handler.DealerHandler,
	auth *handler.AuthHandler,
	locs *handler.LocationHandler,
	health *handler.HealthHandler,
	jwtMiddleware *middleware.JWTMiddleware,
) {
	router.GET("/health", health.GetHealth)

	// Auth routes
	router.POST("/auth/admin/signup", auth.Signup)
	router.POST("/auth/admin/login", auth.Login)

	// Location lookup (public, read-only)
	locations := router.Group("/locations")
	{
		locations.GET("/states", locs.GetStates)
		locations.GET("/states/:state/districts", locs.GetDistricts)
		locations.GET("/states/:state/districts/:district/cities", locs.GetCities)
	}

	// Dealer routes: reads are public, mutations need an admin session.
	router.GET("/dealers", dealers.ListDealers)
	protected := router.Group("/dealers")
	protected.Use(jwtMiddleware.Handle())
	{
		protected.POST("", dealers.CreateDealer)
		protected.PUT("/:id", dealers.UpdateDealer)
		protected.DELETE("/:id", dealers.DeleteDealer)
	}
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
