package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/samdwyer/mazerunner/internal/game"
	"github.com/samdwyer/mazerunner/internal/storage"
	"github.com/samdwyer/mazerunner/internal/telemetry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the level menu and play",
	Long: `Open the level menu and play.

Controls:
  Up/Down, W/S   - Choose a level
  Enter/Space    - Start the level
  Arrows, WASD   - Move
  Esc            - Back to the menu
  R              - Replay the same maze (after finishing)
  Q/Ctrl+C       - Quit

Examples:
  mazerunner play
  mazerunner play --seed 0.7281`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The screen owns the terminal while playing; log to a file instead.
	gameLog, closeLog, err := openGameLog()
	if err != nil {
		logger.Warn("cannot open log file, game events will not be logged", "error", err)
		gameLog = log.New(io.Discard)
		closeLog = func() {}
	}
	defer closeLog()

	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Warn("telemetry setup failed, game will run without observability", "error", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Error("error shutting down telemetry", "error", err)
				}
			}()
		}
	}

	levels, err := loadLevels()
	if err != nil {
		return err
	}

	cfg := game.Config{
		Levels: levels,
		Seed:   flagSeed,
		Tick:   settings.TickInterval(),
		Logger: gameLog,
	}

	// Open run storage (optional, game still works without it)
	if store, err := openStore(); err != nil {
		logger.Warn("could not open run database, times will not be saved", "error", err)
	} else {
		defer store.Close()
		cfg.Store = store
	}

	g, err := game.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}
	return g.Run(ctx)
}

func openStore() (*storage.Store, error) {
	path, err := settings.ResolvedDBPath()
	if err != nil {
		return nil, err
	}
	return storage.Open(path)
}

// openGameLog opens <data dir>/mazerunner.log for appending.
func openGameLog() (*log.Logger, func(), error) {
	dir, err := settings.ResolvedDataDir()
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, "mazerunner.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "game",
		Level:           logger.GetLevel(),
	})
	return l, func() { f.Close() }, nil
}
