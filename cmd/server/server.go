package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scentmatch/server/internal/cache"
	"github.com/scentmatch/server/internal/config"
	"github.com/scentmatch/server/internal/logger"
	"github.com/scentmatch/server/scentmatch/brands"
	"github.com/scentmatch/server/scentmatch/collections"
	"github.com/scentmatch/server/scentmatch/fragrances"
	"github.com/scentmatch/server/scentmatch/quiz"
	"github.com/scentmatch/server/scentmatch/users"
)

const (
	// how often the flusher writes buffered answers to Postgres
	bufferFlushInterval = 5 * time.Second

	// how often the cleanup service checks for stale quiz sessions
	cleanupCheckInterval = 15 * time.Minute

	// unclaimed quiz sessions inactive for longer than this are removed
	quizInactivityThreshold = 24 * time.Hour
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// configure connection pool for supabase free tier pooler compatibility
	// free tier has ~10-15 pooler connections, so keep our pool small
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// use simple protocol for supabase pooler (PgBouncer) compatibility:
	// transaction mode doesn't support prepared statements, which causes
	// connections to hang on subsequent queries
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	userRepo := users.NewRepository(db)
	brandRepo := brands.NewRepository(db)
	fragranceRepo := fragrances.NewRepository(db)
	collectionRepo := collections.NewRepository(db)
	quizRepo := quiz.NewRepository(db)

	// initialize Redis buffer for quiz answers and recommendation caching
	// the server runs without it, just slower and without write-behind
	var (
		quizBuffer *cache.QuizBuffer
		flusher    *cache.Flusher
	)

	if cfg.RedisURL == "" {
		logger.Info("REDIS_URL not set, quiz answers write straight to postgres")
	} else {
		quizBuffer, err = cache.NewQuizBuffer(cfg.RedisURL)
		if err != nil {
			logger.Warn("redis unavailable, quiz answers write straight to postgres", "error", err)
			quizBuffer = nil
		} else {
			flusher = cache.NewFlusher(quizBuffer, quizRepo, bufferFlushInterval)
		}
	}

	services, err := InitializeServices(cfg, db, fragranceRepo)
	if err != nil {
		if quizBuffer != nil {
			quizBuffer.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		}

		db.Close()
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	router := gin.Default()

	// cleanup service removes abandoned anonymous quiz sessions
	cleanupService := quiz.NewCleanupService(
		quizRepo,
		cleanupCheckInterval,
		quizInactivityThreshold,
	)

	server := &Server{
		db:             db,
		config:         cfg,
		userRepo:       userRepo,
		brandRepo:      brandRepo,
		fragranceRepo:  fragranceRepo,
		collectionRepo: collectionRepo,
		quizRepo:       quizRepo,
		services:       services,
		router:         router,
		buffer:         quizBuffer,
		flusher:        flusher,
		cleanupService: cleanupService,
	}

	RegisterRoutes(router, server)

	return server, nil
}
