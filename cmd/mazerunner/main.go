// mazerunner is a terminal maze game built on seeded maze generation.
//
// Usage:
//
//	mazerunner               - Open the level menu and play
//	mazerunner render        - Print a maze without starting the game
//	mazerunner levels        - List the level catalogue
//	mazerunner times [level] - Show the best times
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.mazerunner/config.yaml)
//	--db <path>         - Run database (default: <data_dir>/runs.db)
//	--seed <value>      - Seed for random levels
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/samdwyer/mazerunner/internal/config"
	"github.com/samdwyer/mazerunner/internal/gamedata"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagSeed     string
	flagLogLevel string

	// Set up by loadSettings before any command runs.
	settings config.Config
	logger   *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazerunner",
	Short: "MazeRunner - find the exit as fast as possible",
	Long: `MazeRunner generates a maze for every level and times how fast you
reach the exit. Fixed levels always build the same maze from their seed;
random levels draw a new seed, shown in the HUD so a good maze can be
replayed with --seed.

Available commands:
  play     - Open the level menu (default)
  render   - Print a maze as text
  levels   - List the level catalogue
  times    - Show the best times

Examples:
  mazerunner
  mazerunner play --seed 0.7281
  mazerunner render --level 3 --color
  mazerunner times 1 --limit 5`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
	RunE:              runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagSeed, "seed", "", "Seed for random levels (empty = new seed each time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(timesCmd)
}

// loadSettings reads .env and the config file (which applies the
// environment), then applies command-line flags on top.
func loadSettings(cmd *cobra.Command, args []string) error {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "mazerunner",
	})

	// Load .env file for local development.
	// This makes HONEYCOMB_MAZERUNNER_API_KEY available.
	if loaded, err := config.LoadDotEnv(); err != nil {
		logger.Warn(".env file not loaded", "error", err)
	} else if loaded {
		logger.Debug("loaded .env file")
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	level, err := log.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logger.SetLevel(level)

	settings = cfg
	return nil
}

// loadLevels returns the embedded catalogue with the config's levels merged in.
func loadLevels() (*gamedata.LevelRegistry, error) {
	registry, err := gamedata.LoadLevelRegistry()
	if err != nil {
		return nil, err
	}
	if err := registry.Merge(settings.Levels); err != nil {
		return nil, fmt.Errorf("config levels: %w", err)
	}
	return registry, nil
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_MAZERUNNER_API_KEY")
	if apiKey == "" {
		// Leave any OTEL_* variables set directly untouched.
		return
	}

	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	dataset := os.Getenv("HONEYCOMB_MAZERUNNER_DATASET")
	if dataset == "" {
		dataset = "mazerunner" // default dataset name
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
