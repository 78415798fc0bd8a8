package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	HTTP     HTTPConfig     `mapstructure:"http"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Log      LogConfig      `mapstructure:"log"`
}

type HTTPConfig struct {
	Port    string `mapstructure:"port"`
	GinMode string `mapstructure:"gin_mode"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	TimeZone        string        `mapstructure:"timezone"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type JWTConfig struct {
	Secret        string `mapstructure:"secret"`
	ExpireMinutes int    `mapstructure:"expire_minutes"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    string `mapstructure:"port"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var ErrMissingJWTSecret = errors.New("JWT_SECRET is required")

// LoadConfig reads the environment, after loading .env when one exists.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("unable to load .env: %w", err)
	}

	v := viper.New()

	// 设置默认值
	v.SetDefault("http.port", "8080")
	v.SetDefault("http.gin_mode", "release")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.timezone", "UTC")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("jwt.expire_minutes", 60)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.port", "2112")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// 绑定环境变量
	bindings := map[string]string{
		"http.port":                  "HTTP_PORT",
		"http.gin_mode":              "GIN_MODE",
		"database.host":              "DB_HOST",
		"database.port":              "DB_PORT",
		"database.user":              "DB_USER",
		"database.password":          "DB_PASSWORD",
		"database.dbname":            "DB_NAME",
		"database.sslmode":           "DB_SSLMODE",
		"database.timezone":          "DB_TIMEZONE",
		"database.max_open_conns":    "DB_MAX_OPEN_CONNS",
		"database.max_idle_conns":    "DB_MAX_IDLE_CONNS",
		"database.conn_max_lifetime": "DB_CONN_MAX_LIFETIME",
		"jwt.secret":                 "JWT_SECRET",
		"jwt.expire_minutes":         "JWT_EXPIRE_MINUTES",
		"metrics.enabled":            "METRICS_ENABLED",
		"metrics.port":               "METRICS_PORT",
		"log.level":                  "LOG_LEVEL",
		"log.format":                 "LOG_FORMAT",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("unable to bind %s: %w", env, err)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// 验证必需的配置
	if config.JWT.Secret == "" {
		return nil, ErrMissingJWTSecret
	}
	return config, nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode, c.TimeZone)
}

func (c *JWTConfig) TTL() time.Duration {
	return time.Duration(c.ExpireMinutes) * time.Minute
}

// NewLogger builds the process logger from the log settings.
func (c *LogConfig) NewLogger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.Level, err)
	}
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetLevel(level)
	if c.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger, nil
}
