package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sevigo/reposcope/internal/config"
	"github.com/sevigo/reposcope/internal/logger"
)

var repoListPath string

var rootCmd = &cobra.Command{
	Use:   "reposcope",
	Short: "reposcope resolves repository locations and aggregates contribution reports.",
	Long: `A CLI for resolving raw repository locations (local paths or hosted git
URLs) into unique display names and for aggregating per-author line
attribution into contribution summaries.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&repoListPath, "repo-list", "r", "", "Path to the YAML repo list file")

	if err := viper.BindPFlag("REPO_LIST_PATH", rootCmd.PersistentFlags().Lookup("repo-list")); err != nil {
		slog.Error("Error binding flag", "error", err)
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set, and wires
// the process logger from the loaded settings.
func initConfig() {
	viper.SetEnvPrefix("RS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logger.New(cfg.LogLevel, cfg.LogFormat, nil))
}
