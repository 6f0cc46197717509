package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dalemyers/libtvdb/config"
	"github.com/dalemyers/libtvdb/tvdb"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *tvdb.Client
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "libtvdb",
	Short: "A client for TheTVDB television metadata API",
	Long: `libtvdb is a CLI for TheTVDB v4 API. It can search for shows and
fetch show and episode metadata.

Credentials come from a config file (tvdb.api_key, tvdb.pin) or from the
TVDB_API_KEY and TVDB_PIN environment variables.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// initializeApp initializes the configuration and the TVDB client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create TVDB client
	client, err = tvdb.NewClient(cfg.TVDB.APIKey, cfg.TVDB.PIN, logger)
	if err != nil {
		return fmt.Errorf("failed to create TVDB client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only when writing to a real terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
