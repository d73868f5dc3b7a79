package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/darji-master/orders-service/internal/config"
	"github.com/darji-master/orders-service/internal/kafka"
	"github.com/darji-master/orders-service/internal/logger"
	"github.com/darji-master/orders-service/internal/migrate"
	"github.com/darji-master/orders-service/internal/presentation"
	"github.com/darji-master/orders-service/internal/repository"
	"github.com/darji-master/orders-service/internal/store"
	"github.com/darji-master/orders-service/internal/stylist"
)

func main() {
	logger.Init()
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warn("config load failed", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Persistence. A missing or unreachable database degrades to an in-memory
	// blob store instead of refusing to start; orders then live only for the
	// process lifetime.
	var blobs repository.BlobStore = repository.NewMemoryBlobStore()
	if cfg.DB_STRING != "" {
		pool, perr := pgxpool.New(ctx, cfg.DB_STRING)
		if perr == nil {
			perr = pool.Ping(ctx)
		}
		if perr != nil {
			logger.Warn("db unavailable, running in-memory", "err", perr)
		} else {
			if merr := migrate.Up(cfg.DB_STRING); merr != nil {
				logger.Warn("migrations failed", "err", merr)
			}
			blobs = repository.NewPostgresBlobStore(pool)
			defer pool.Close()
			logger.Info("db connected")
		}
	} else {
		logger.Warn("DB_STRING not set, running in-memory")
	}

	svc := store.New(blobs, cfg.BLOB_KEY)
	svc.Load(ctx)

	var prod *kafka.Producer
	if cfg.KAFKA_BROKERS != "" {
		prod = kafka.NewProducer(cfg.KAFKA_BROKERS, cfg.KAFKA_TOPIC)
		defer prod.Close()
	}

	styles := stylist.NewClient(cfg.GEMINI_KEY, cfg.GEMINI_MODEL)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	h := presentation.NewOrdersHandler(svc, styles, prod)
	h.Register(r)

	presentation.MountStatic(r)

	addr := ":" + cfg.HTTP_PORT
	logger.Info("starting http", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Warn("http server crashed", "err", err)
		os.Exit(1)
	}
}
