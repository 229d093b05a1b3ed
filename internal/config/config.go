package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	domain "github.com/vetbook/vet-scheduler/internal/domain/appointment"
)

type Config struct {
	ServerPort string
	JWTSecret  string

	// Snapshot backend: "file" (default), "redis" or "s3".
	SnapshotBackend string
	SnapshotDir     string
	SnapshotPrefix  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string

	// Optional postgres URL for the audit trail. Empty disables it.
	DatabaseURL string

	// Domain policies, see DESIGN.md.
	StatusPolicy        domain.Policy
	ReleaseSlotOnCancel bool

	// Exposes POST /api/dev/reset. Never enable in production.
	EnableDevReset bool
}

func Load() *Config {
	// Missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		JWTSecret:  getEnv("JWT_SECRET", "changeme"),

		SnapshotBackend: getEnv("SNAPSHOT_BACKEND", "file"),
		SnapshotDir:     getEnv("SNAPSHOT_DIR", "./data"),
		SnapshotPrefix:  getEnv("SNAPSHOT_PREFIX", "vetbook:"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		S3Region:    getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:  getEnv("S3_ENDPOINT", ""),
		S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("S3_SECRET_KEY", ""),
		S3Bucket:    getEnv("S3_BUCKET", ""),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		StatusPolicy:        domain.Policy(getEnv("STATUS_POLICY", string(domain.PolicyPermissive))),
		ReleaseSlotOnCancel: getEnvBool("RELEASE_SLOT_ON_CANCEL", false),

		EnableDevReset: getEnvBool("ENABLE_DEV_RESET", false),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
