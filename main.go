package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quizhub/config"
	"quizhub/handlers"
	"quizhub/logging"
	"quizhub/middleware"
	"quizhub/migrations"
	"quizhub/repository"
	"quizhub/routes"
	"quizhub/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, log := loadConfig(".env")
	gin.SetMode(cfg.GinMode)

	// Apply schema migrations
	if cfg.MigrateOnStart {
		if err := migrations.Up(cfg.DSN()); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate database")
		}
	}

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Redis is optional; without it join codes rely on the unique index alone
	var reserver services.CodeReserver
	if redisClient := config.InitRedis(cfg); redisClient != nil {
		defer redisClient.Close()
		reserver = services.NewRedisCodeReserver(redisClient, services.DefaultReservationTTL)
		log.Info().Str("addr", cfg.RedisAddr).Msg("join code reservation enabled")
	}

	// Initialize repositories and services
	userRepo := repository.NewUserRepository(db)
	gameRepo := repository.NewGameRepository(db)

	authService := services.NewAuthService(userRepo, services.NewPasswordHasher(cfg.BcryptCost), log)
	userService := services.NewUserService(userRepo)
	gameService := services.NewGameService(gameRepo, reserver, log)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, log)
	userHandler := handlers.NewUserHandler(userService, log)
	gameHandler := handlers.NewGameHandler(gameService, log)

	// Setup Gin router
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.CORSOrigins...))

	routes.SetupRoutes(router, authHandler, gameHandler, userHandler)

	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	// signal.Notify requires the channel to be buffered
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
	}()

	log.Info().Str("addr", cfg.Addr()).Msg("server starting")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server failed")
	}
	log.Info().Msg("server stopped")
}

// loadConfig reads the optional dotenv file, then the environment. A dotenv
// failure is logged and the environment alone is used.
func loadConfig(dotenvPath string) (*config.Config, zerolog.Logger) {
	dotenvErr := config.LoadDotEnv(dotenvPath)
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogPretty)
	if dotenvErr != nil {
		log.Warn().Err(dotenvErr).Str("path", dotenvPath).Msg("failed to load .env")
	}
	return cfg, log
}
