package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gorm.io/gorm/logger"
)

type (
	Config struct {
		HTTP
		Audit
		Global
		Database
		Catalog
		Loader
	}

	HTTP struct {
		Port     int32
		Host     string
		ReadOnly bool // Reject write requests
	}
	Audit struct {
		Dir string // Empty disables request auditing
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		DSN      string
		LogLevel logger.LogLevel
	}
	Catalog struct {
		BookTitlesPerPublisher bool // Scope the book title check to one publisher
	}
	Loader struct {
		DataFile string
	}
)

// NewConfig loads DefaultEnvFile, if present, and reads the configuration
// from the environment.
func NewConfig() *Config {
	if err := LoadEnvFile(DefaultEnvFile); err != nil {
		log.Printf("Warning: %v", err)
	}
	return newConfig(viper.New())
}

// LoadEnvFile copies the variables of an env file into the process
// environment. Variables that are already set win. A missing file is not
// an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}

func newConfig(v *viper.Viper) *Config {
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("read_only", false)
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("audit_dir", "./audit")
	v.SetDefault("dsn", DefaultDSN)
	v.SetDefault("db_log_level", "warn")
	v.SetDefault("book_titles_per_publisher", false)
	v.SetDefault("data_file", DefaultDataFile)

	return &Config{
		HTTP: HTTP{
			Port:     v.GetInt32("PORT"),
			Host:     v.GetString("HOST"),
			ReadOnly: v.GetBool("READ_ONLY"),
		},
		Audit: Audit{
			Dir: v.GetString("AUDIT_DIR"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			DSN:      v.GetString("DSN"),
			LogLevel: ParseLogLevel(v.GetString("DB_LOG_LEVEL")),
		},
		Catalog: Catalog{
			BookTitlesPerPublisher: v.GetBool("BOOK_TITLES_PER_PUBLISHER"),
		},
		Loader: Loader{
			DataFile: v.GetString("DATA_FILE"),
		},
	}
}

// ParseLogLevel maps silent, error, warn and info to gorm log levels.
// Anything else falls back to warn.
func ParseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
