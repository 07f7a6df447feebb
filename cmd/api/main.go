package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"

	_ "github.com/johnquangdev/meeting-recap/docs"
	"github.com/johnquangdev/meeting-recap/internal/adapter/handler"
	"github.com/johnquangdev/meeting-recap/internal/adapter/repository"
	domainrepo "github.com/johnquangdev/meeting-recap/internal/domain/repositories"
	"github.com/johnquangdev/meeting-recap/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-recap/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-recap/internal/infrastructure/metrics"
	"github.com/johnquangdev/meeting-recap/internal/infrastructure/storage"
	"github.com/johnquangdev/meeting-recap/internal/usecase/extraction"
	"github.com/johnquangdev/meeting-recap/internal/usecase/followup"
	"github.com/johnquangdev/meeting-recap/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-recap/pkg/config"
	pkglogger "github.com/johnquangdev/meeting-recap/pkg/logger"
	pkgvalidator "github.com/johnquangdev/meeting-recap/pkg/validator"
)

// @title           Meeting Recap API
// @version         1.0
// @description     Turns meeting transcripts into structured meeting records with participants, decisions, action items and a summary.

// @host      localhost:8080
// @BasePath  /v1

// requestBodySlack leaves room for multipart framing around an upload of
// the maximum size
const requestBodySlack = 64 << 10

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := pkglogger.New(cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	// Reject oversized bodies before they are buffered
	e.Use(middleware.BodyLimit(bodyLimit(cfg.Server.MaxUploadBytes + requestBodySlack)))

	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: cfg.Server.RequestTimeout,
		Skipper: func(c echo.Context) bool {
			return c.Path() == cfg.Metrics.Path
		},
	}))

	logger.Info("🔧 Initializing dependencies...")

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	pipelineMetrics := metrics.NewPipelineMetrics(registry)

	// Result store
	records, closeStore, err := openRecordStore(cfg, logger, pipelineMetrics)
	if err != nil {
		logger.Fatal("❌ Failed to open result store", zap.String("store", cfg.Store.Type), zap.Error(err))
	}
	defer closeStore()

	// Transcript archive (optional)
	var archive domainrepo.TranscriptArchive
	if cfg.Storage.Enabled {
		logger.Info("🗄️  Connecting to object storage...", zap.String("endpoint", cfg.Storage.Endpoint))
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		minioClient, err := storage.NewMinIOClient(ctx, &cfg.Storage)
		cancel()
		if err != nil {
			logger.Fatal("❌ Failed to connect to object storage", zap.Error(err))
		}
		archive = minioClient
		logger.Info("✅ Transcript archive enabled", zap.String("bucket", minioClient.Bucket()))
	} else {
		logger.Info("⚠️  Transcript archive disabled")
	}

	// Pipeline and services
	logger.Info("🧠 Initializing extraction pipeline...",
		zap.Bool("concurrent", cfg.Pipeline.Concurrent),
		zap.Strings("extra_stop_verbs", cfg.Pipeline.ExtraStopVerbs),
	)
	pipeline := meeting.NewPipeline(logger, meeting.Options{
		Concurrent:   cfg.Pipeline.Concurrent,
		Participants: extraction.NewParticipantExtractor().WithExtraVerbs(cfg.Pipeline.ExtraStopVerbs...),
	})

	var observer meeting.Observer
	var gatherer prometheus.Gatherer
	if cfg.Metrics.Enabled {
		observer = pipelineMetrics
		gatherer = registry
	}

	meetingService := meeting.NewService(pipeline, records, archive, observer, meeting.ServiceConfig{
		ResultTTL:          cfg.Store.ResultTTL,
		MaxTranscriptBytes: cfg.Server.MaxUploadBytes,
		JobTimeout:         cfg.Pipeline.JobTimeout,
	}, logger)

	transcriptHandler := handler.NewTranscriptHandler(meetingService, followup.NewComposer(""), cfg.Server.MaxUploadBytes, logger)

	// Setup router with handlers
	logger.Info("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, transcriptHandler, gatherer)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.GetServerAddr()
		logger.Info("🚀 Starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
			zap.String("store", cfg.Store.Type),
		)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("❌ Server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("✅ Server stopped gracefully")
}

// openRecordStore builds the configured record repository wrapped with
// store metrics. The returned func releases the backend.
func openRecordStore(cfg *config.Config, logger *zap.Logger, observer repository.StoreObserver) (domainrepo.RecordRepository, func(), error) {
	switch cfg.Store.Type {
	case config.StoreRedis:
		logger.Info("📦 Connecting to Redis...", zap.String("addr", cfg.GetRedisAddr()))
		client, err := cache.NewRedisClient(cfg)
		if err != nil {
			return nil, nil, err
		}
		repo := repository.NewRedisRecordRepository(client, cfg.Store.KeyPrefix)
		return repository.NewInstrumentedRecordRepository(repo, config.StoreRedis, observer), func() { client.Close() }, nil

	case config.StorePostgres:
		logger.Info("📦 Connecting to database...")
		db, err := database.NewPostgresDB(cfg, logger)
		if err != nil {
			return nil, nil, err
		}

		// Schema is owned by sql-migrate; AutoMigrate only applies pending
		// migrations outside production.
		if cfg.Database.AutoMigrate {
			if cfg.IsProduction() {
				return nil, nil, errAutoMigrateInProduction
			}
			n, err := database.Migrate(db, migrate.Up, 0)
			if err != nil {
				return nil, nil, err
			}
			logger.Info("🔄 Applied migrations", zap.Int("count", n))
		}

		repo := repository.NewPostgresRecordRepository(db)
		stop := make(chan struct{})
		go purgeExpired(repo, cfg.Store.CleanupInterval, stop, logger)

		return repository.NewInstrumentedRecordRepository(repo, config.StorePostgres, observer), func() {
			close(stop)
			database.CloseDB(db)
		}, nil

	case config.StoreSQLite:
		logger.Info("📦 Opening SQLite store...", zap.String("path", cfg.Store.SQLitePath))
		db, err := database.NewSQLiteDB(cfg.Store.SQLitePath, logger)
		if err != nil {
			return nil, nil, err
		}

		repo := repository.NewSQLiteRecordRepository(db)
		stop := make(chan struct{})
		go purgeExpired(repo, cfg.Store.CleanupInterval, stop, logger)

		return repository.NewInstrumentedRecordRepository(repo, config.StoreSQLite, observer), func() {
			close(stop)
			db.Close()
		}, nil

	default:
		logger.Info("📦 Using in-memory result store", zap.Duration("ttl", cfg.Store.ResultTTL))
		store := cache.NewMemoryStore(cfg.Store.CleanupInterval)
		repo := repository.NewMemoryRecordRepository(store)
		return repository.NewInstrumentedRecordRepository(repo, config.StoreMemory, observer), store.Close, nil
	}
}

type expiredPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// purgeExpired deletes expired rows until stop is closed
func purgeExpired(repo expiredPurger, interval time.Duration, stop <-chan struct{}, logger *zap.Logger) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			n, err := repo.PurgeExpired(ctx)
			cancel()
			if err != nil {
				logger.Warn("⚠️  Failed to purge expired records", zap.Error(err))
				continue
			}
			if n > 0 {
				logger.Info("🧹 Purged expired records", zap.Int64("count", n))
			}
		}
	}
}
