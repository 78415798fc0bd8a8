package main

import (
	"fmt"

	"github.com/RigelNana/acervo/config"
	"github.com/RigelNana/acervo/database"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const version = "0.1.0"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "acervo",
		Short: "Acervo - digital collection of books, papers and final projects",
		Long: `Acervo catalogues books, papers and final projects owned by registered users
and serves them over a JWT-protected REST API.

Configuration is read from the environment (and .env when present):
  JWT_SECRET   signing secret, required
  DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME
  HTTP_PORT, METRICS_ENABLED, METRICS_PORT, LOG_LEVEL, LOG_FORMAT`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newCreateUserCmd())
	return root
}

// bootstrap loads the configuration and opens the migrated database.
func bootstrap() (*config.Config, *logrus.Logger, *gorm.DB, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("加载配置失败: %w", err)
	}
	logger, err := cfg.Log.NewLogger()
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := database.InitDB(&cfg.Database, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	logger.WithFields(logrus.Fields{
		"host":   cfg.Database.Host,
		"dbname": cfg.Database.DBName,
	}).Info("数据库连接成功")
	return cfg, logger, db, nil
}
