package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/vetbook/vet-scheduler/internal/config"
	dbpkg "github.com/vetbook/vet-scheduler/internal/db"
	"github.com/vetbook/vet-scheduler/internal/middleware"
	"github.com/vetbook/vet-scheduler/internal/routes"
	"github.com/vetbook/vet-scheduler/internal/snapshot"
	"github.com/vetbook/vet-scheduler/internal/store"
)

func main() {

	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	snap := newSnapshotStore(cfg)

	db, err := dbpkg.Open(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("failed to connect audit database", zap.Error(err))
	}

	st := store.New(snap, logger,
		store.WithStatusPolicy(cfg.StatusPolicy),
		store.WithSlotRelease(cfg.ReleaseSlotOnCancel),
	)
	if err := st.Hydrate(context.Background()); err != nil {
		logger.Fatal("failed to hydrate state from snapshot", zap.Error(err))
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, st, snap, db, cfg, logger)

	logger.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

func newSnapshotStore(cfg *config.Config) snapshot.Store {
	switch cfg.SnapshotBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return snapshot.NewRedisStore(client, cfg.SnapshotPrefix)
	case "s3":
		return snapshot.NewS3Store(snapshot.S3Config{
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			Prefix:    cfg.SnapshotPrefix,
		})
	default:
		return snapshot.NewFileStore(cfg.SnapshotDir)
	}
}
