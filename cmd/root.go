/*
	Copyright 2023 Markus Papenbrock
*/

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	otlpruntime "go.opentelemetry.io/contrib/instrumentation/runtime"

	"github.com/mpapenbr/trackdelta/log"
	analyzeCmd "github.com/mpapenbr/trackdelta/pkg/cmd/analyze"
	checkCmd "github.com/mpapenbr/trackdelta/pkg/cmd/check"
	"github.com/mpapenbr/trackdelta/pkg/config"
	"github.com/mpapenbr/trackdelta/version"
)

const envPrefix = "TDA"

var (
	cfgFile   string
	telemetry *config.Telemetry
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "trackdelta",
	Short:   "Telemetry transforms for lap comparisons",
	Long:    ``,
	Version: version.FullVersion,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, err := setupLogger(os.Stderr)
		if err != nil {
			return err
		}
		log.ResetDefault(logger)
		cmd.SetContext(log.AddToContext(cmd.Context(), logger))
		setupTelemetry(cmd)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if telemetry != nil {
			telemetry.Shutdown()
		}
		_ = log.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.trackdelta.yml)")

	rootCmd.PersistentFlags().StringVar(&config.LogLevel,
		"log-level",
		"info",
		"controls the log level (debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().StringVar(&config.LogFormat,
		"log-format",
		"text",
		"controls the log output format (json, text)")
	rootCmd.PersistentFlags().StringVar(&config.LogFilter,
		"log-filter",
		"",
		"zapfilter rules, e.g. 'info+:* debug+:processing*' (replaces --log-level)")
	rootCmd.PersistentFlags().BoolVar(&config.EnableTelemetry,
		"enable-telemetry",
		false,
		"enables telemetry")
	rootCmd.PersistentFlags().StringVar(&config.TelemetryEndpoint,
		"telemetry-endpoint",
		"",
		"Endpoint that receives open telemetry data (stderr if empty)")

	// add commands here
	rootCmd.AddCommand(analyzeCmd.NewAnalyzeCmd())
	rootCmd.AddCommand(checkCmd.NewCheckCmd())
}

func parseLogLevel(l string, defaultVal log.Level) log.Level {
	level, err := log.ParseLevel(l)
	if err != nil {
		return defaultVal
	}
	return level
}

// setupLogger creates the logger from the log flags. With filter rules the
// core accepts every level and the rules alone select the output.
func setupLogger(w io.Writer) (*log.Logger, error) {
	opts := []log.Option{log.WithCaller(true), log.AddCallerSkip(1)}
	jsonLevel := parseLogLevel(config.LogLevel, log.InfoLevel)
	devLevel := parseLogLevel(config.LogLevel, log.DebugLevel)
	if config.LogFilter != "" {
		filter, err := log.WithFilterRules(config.LogFilter)
		if err != nil {
			return nil, fmt.Errorf("invalid log filter: %w", err)
		}
		opts = append(opts, filter)
		jsonLevel, devLevel = log.DebugLevel, log.DebugLevel
	}
	switch config.LogFormat {
	case "json":
		return log.New(w, jsonLevel, opts...), nil
	default:
		return log.DevLogger(w, devLevel, opts...), nil
	}
}

func setupTelemetry(cmd *cobra.Command) {
	if !config.EnableTelemetry {
		return
	}
	log.Info("Enabling telemetry")
	var err error
	if telemetry, err = config.SetupTelemetry(cmd.Context()); err != nil {
		log.Warn("Could not setup telemetry", log.ErrorField(err))
		return
	}
	err = otlpruntime.Start(otlpruntime.WithMinimumReadMemStatsInterval(time.Second))
	if err != nil {
		log.Warn("Could not start runtime metrics", log.ErrorField(err))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".trackdelta" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".trackdelta")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	bindFlags(rootCmd, viper.GetViper())
	for _, cmd := range rootCmd.Commands() {
		bindFlags(cmd, viper.GetViper())
		for _, sub := range cmd.Commands() {
			bindFlags(sub, viper.GetViper())
		}
	}
}

// Bind each cobra flag to its associated viper configuration
// (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	visit := func(f *pflag.Flag) {
		// Environment variables can't have dashes in them, so bind them to their
		// equivalent keys with underscores, e.g. --log-level to TDA_LOG_LEVEL
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name,
				fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not bind env var %s: %v", f.Name, err)
			}
		}
		// Apply the viper config value to the flag when the flag is not set and viper
		// has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := f.Value.Set(fmt.Sprintf("%v", val)); err != nil {
				fmt.Fprintf(os.Stderr, "Could set flag value for %s: %v", f.Name, err)
			}
		}
	}
	cmd.Flags().VisitAll(visit)
	cmd.PersistentFlags().VisitAll(visit)
}
