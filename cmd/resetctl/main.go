package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/vetbook/vet-scheduler/internal/config"
	"github.com/vetbook/vet-scheduler/internal/reset"
	"github.com/vetbook/vet-scheduler/internal/snapshot"
)

// resetctl wipes the persisted snapshot without a running server. Point it at
// the same configuration the server uses and pick a mode.
func main() {
	mode := flag.String("mode", string(reset.ModeQuick), "reset mode: quick, soft or nuclear")
	flag.Parse()

	if !reset.IsValidMode(reset.Mode(*mode)) {
		fmt.Fprintf(os.Stderr, "unknown reset mode %q (want quick, soft or nuclear)\n", *mode)
		os.Exit(2)
	}

	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	snap := newSnapshotStore(cfg)

	// No store here: only the persisted side is touched.
	result := reset.Run(context.Background(), reset.Mode(*mode), nil, snap, logger)
	if !result.Success {
		fmt.Fprintln(os.Stderr, result.Message)
		os.Exit(1)
	}
	fmt.Println(result.Message)
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
