package main

import (
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/rogerio-castellano/ims-backend/internal/auth"
	"github.com/rogerio-castellano/ims-backend/internal/cache"
	"github.com/rogerio-castellano/ims-backend/internal/config"
	"github.com/rogerio-castellano/ims-backend/internal/db"
	api "github.com/rogerio-castellano/ims-backend/internal/http"
	"github.com/rogerio-castellano/ims-backend/internal/http/handlers"
	rl "github.com/rogerio-castellano/ims-backend/internal/http/rate_limiter"
	"github.com/rogerio-castellano/ims-backend/internal/logging"
	"github.com/rogerio-castellano/ims-backend/internal/repo"
)

// @title IMS Backend API
// @version 1.0
// @description REST API for product inventory, stock movement auditing, low-stock alerts and dashboard statistics.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load configuration")
	}

	logging.Setup(cfg.Env, cfg.LogLevel)
	auth.Configure(cfg.JWTSecret, cfg.TokenTTL)

	go rl.StartVisitorCleanupLoop()

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("could not connect to database")
		}
		defer database.Close()

		productRepo := repo.NewPostgresProductRepository(database)
		handlers.SetProductRepo(productRepo)
		handlers.SetMovementRepo(repo.NewPostgresMovementRepository(database))
		handlers.SetNotificationRepo(repo.NewPostgresNotificationRepository(database))
		handlers.SetUserRepo(repo.NewPostgresUserRepository(database))
	} else {
		// In-memory stores for local development.
		log.Warn().Msg("DATABASE_URL not set, using in-memory stores")
		productRepo := repo.NewInMemoryProductRepository()
		handlers.SetProductRepo(productRepo)
		handlers.SetMovementRepo(repo.NewInMemoryMovementRepository(productRepo))
		handlers.SetNotificationRepo(repo.NewInMemoryNotificationRepository())
		handlers.SetUserRepo(repo.NewInMemoryUserRepository())
	}

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		handlers.SetStatsCache(cache.NewStatsCache(rdb, cfg.StatsTTL))
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.NewRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info().Str("addr", cfg.Addr).Msg("server running")
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
