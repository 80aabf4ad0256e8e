package config

import (
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application's configuration values.
type Config struct {
	RepoListPath string
	ReportDir    string
	LogLevel     slog.Level
	LogFormat    string
}

// LoadConfig reads configuration from environment variables and a .env
// file and sets sensible defaults. It uses the Viper library to handle
// configuration loading and precedence.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")

	viper.SetDefault("REPO_LIST_PATH", "reposcope.yml")
	viper.SetDefault("REPORT_DIR", "reposcope-report")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Error("failed to read config file", "error", err)
		}
	}

	// Parse the log level string into a slog.Level type.
	var logLevel slog.Level
	logLevelStr := strings.ToLower(viper.GetString("LOG_LEVEL"))
	switch logLevelStr {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	case "info":
		logLevel = slog.LevelInfo
	default:
		slog.Warn("unrecognized log level, defaulting to info", "provided", logLevelStr)
		logLevel = slog.LevelInfo
	}

	return &Config{
		RepoListPath: viper.GetString("REPO_LIST_PATH"),
		ReportDir:    viper.GetString("REPORT_DIR"),
		LogLevel:     logLevel,
		LogFormat:    viper.GetString("LOG_FORMAT"),
	}, nil
}
