package database

import (
	"context"
	"fmt"
	"time"

	"github.com/RigelNana/acervo/config"
	"github.com/RigelNana/acervo/models"
	"github.com/RigelNana/acervo/pkg/metrics"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the postgres connection and applies the pool settings.
func InitDB(cfg *config.DatabaseConfig, log *logrus.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: newGormLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate creates or updates the tables, including the partial unique
// indexes declared on the models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Book{},
		&models.Paper{},
		&models.FinalProject{},
	)
}

// Ping checks the connection within ctx.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// ReportPoolStats publishes the pool gauges every interval until ctx ends.
func ReportPoolStats(ctx context.Context, db *gorm.DB, service string, interval time.Duration) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		stats := sqlDB.Stats()
		metrics.RecordConnections(service, stats.OpenConnections, stats.InUse, stats.Idle)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// newGormLogger writes gorm's SQL and slow-query lines through log.
func newGormLogger(log *logrus.Logger) logger.Interface {
	if log == nil {
		return logger.Default.LogMode(gormLogLevel(nil))
	}
	return logger.New(log, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormLogLevel(log),
		IgnoreRecordNotFoundError: true,
	})
}

func gormLogLevel(log *logrus.Logger) logger.LogLevel {
	if log != nil && log.IsLevelEnabled(logrus.DebugLevel) {
		return logger.Info
	}
	return logger.Warn
}
