package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "tunectl",
	Short: "Inspect and finalize tunable parameter sets",
	Long: `Tunectl inspects the tunable parameters of a modeling pipeline.

A pipeline spec (YAML) lists preprocessing steps and a model; any argument
written as tune or tune(<identifier>) is marked for optimization. Tunectl
collects those markers into a parameter set and, given a CSV sample of the
data, resolves bounds that depend on data dimensions.

Examples:
  tunectl describe -f pipeline.yaml
  tunectl finalize -f pipeline.yaml -d sample.csv
  tunectl finalize -f pipeline.yaml -d sample.csv --log-level debug`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("pipeline", "f", "", "pipeline spec file (YAML)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")

	_ = rootCmd.MarkPersistentFlagRequired("pipeline")

	_ = viper.BindPFlag("pipeline", rootCmd.PersistentFlags().Lookup("pipeline"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig enables environment variable overrides (TUNECTL_LOG_LEVEL etc).
func initConfig() {
	viper.SetEnvPrefix("TUNECTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
}

// newLogger builds the CLI logger on stderr at the configured level.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "tunectl",
	}), nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
