package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rooftops/internal/config"
	"github.com/vovakirdan/rooftops/internal/core"
	"github.com/vovakirdan/rooftops/internal/games/rooftops"
	"github.com/vovakirdan/rooftops/internal/platform/tui"
	"github.com/vovakirdan/rooftops/internal/registry"
	"github.com/vovakirdan/rooftops/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a run directly, without the title menu.

Controls:
  Left/Right, A/D   - Run
  Space/Up/W        - Hold to charge a jump, release to leap
  P                 - Pause
  R                 - Restart
  Q/Ctrl+C          - Quit

Examples:
  rooftops play
  rooftops play --seed 42
  rooftops play --config ./my-rooftops.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	game, err := registry.Create(rooftops.GameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts := tui.OptionsFromConfig(gameCfg.Input, logger)
	if err := tui.Run(game, store, runtimeConfig(), opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// loadGameConfig validates --config up front and points the game at it.
func loadGameConfig() (config.RooftopsConfig, error) {
	cfg, err := config.LoadRooftops(flagConfig)
	if err != nil {
		return cfg, err
	}
	rooftops.SetConfigPath(flagConfig)
	return cfg, nil
}

// runtimeConfig sizes the run to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the runs database. The game still works without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		logger.Warn("runs database unavailable", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
