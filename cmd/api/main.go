package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"escolaapi/docs"
	"escolaapi/internal/cache"
	"escolaapi/internal/config"
	"escolaapi/internal/database"
	"escolaapi/internal/database/migration"
	handlers "escolaapi/internal/http/handler"
	"escolaapi/internal/http/middleware"
	"escolaapi/internal/logger"
	"escolaapi/internal/otel"
	"escolaapi/internal/repository"
	"escolaapi/internal/repository/cached"
	"escolaapi/internal/repository/sqlstore"
	"escolaapi/internal/service"
	"escolaapi/internal/storage"
)

const (
	bodyLimit       = 8 * 1024 * 1024
	shutdownTimeout = 10 * time.Second
)

// @title Escola API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logger.New(os.Stdout, cfg.LogLevel, logger.Location(cfg.Timezone))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	db, dialect, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := migration.EnsureMigrated(ctx, db, dialect, log); err != nil {
		db.Close()
		log.Fatal().Err(err).Msg("failed to prepare schema")
	}

	var alunoRepo repository.AlunoRepository = sqlstore.NewAlunoSQL(db)
	if cfg.Redis.Addr != "" {
		rdb, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Str("component", "cache").Msg("redis unavailable, list cache disabled")
		} else {
			defer rdb.Close()
			ttl := time.Duration(cfg.Redis.CacheTTLSec) * time.Second
			alunoRepo = cached.NewAlunoRepository(alunoRepo, cache.NewRedisAlunoCache(rdb, ttl), log)
			log.Info().Str("component", "cache").Str("addr", cfg.Redis.Addr).Dur("ttl", ttl).Msg("list cache enabled")
		}
	}

	// Object storage is optional; without it imports are not archived
	var objStore storage.Storage
	if cfg.MinIO.Endpoint != "" {
		objStore, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			db.Close()
			log.Fatal().Err(err).Msg("failed to initialize object storage")
		}
	}

	alunoSvc := service.NewAlunoService(alunoRepo, objStore)

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		BodyLimit:             bodyLimit,
		DisableStartupMessage: true,
	})

	prom, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		db.Close()
		log.Fatal().Err(err).Msg("failed to register metrics")
	}

	// RequestID runs first so every later middleware and error response can see it
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(log))
	app.Use(prom.Handler())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, " + middleware.RequestIDHeader,
	}))

	handlers.RegisterRoutes(app, db, alunoSvc)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Str("db_driver", string(dialect)).Msg("server_starting")
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("server stopped")
		}
	case <-ctx.Done():
		log.Info().Msg("shutdown_requested")
	}

	shutdown(app, db, shutdownTracing, log)
}

func shutdown(app *fiber.App, db *sql.DB, shutdownTracing otel.ShutdownFunc, log zerolog.Logger) {
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownTracing(ctx); err != nil {
		log.Error().Err(err).Msg("tracer shutdown failed")
	}

	if err := db.Close(); err != nil {
		log.Error().Err(err).Msg("database close failed")
	}
	log.Info().Msg("shutdown_complete")
}
