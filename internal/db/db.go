package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/vetbook/vet-scheduler/internal/models"
)

// Open connects to postgres for the audit trail. The domain state itself
// never touches SQL; only AuditLog rows live here. Returns nil when no URL is
// configured, which disables database auditing.
func Open(url string, logger *zap.Logger) (*gorm.DB, error) {
	if url == "" {
		return nil, nil
	}

	gdb, err := gorm.Open(postgres.Open(url), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := gdb.AutoMigrate(&models.AuditLog{}); err != nil {
		return nil, err
	}

	logger.Info("audit database connected")
	return gdb, nil
}
