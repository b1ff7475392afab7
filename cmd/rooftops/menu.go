package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rooftops/internal/games/rooftops"
	"github.com/vovakirdan/rooftops/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a run ends, press Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  rooftops menu
  rooftops menu --fps 30
  rooftops menu --db ./runs.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts := tui.OptionsFromConfig(gameCfg.Input, logger)
	if err := tui.RunSession(store, rooftops.GameID, runtimeConfig(), opts); err != nil {
		return fmt.Errorf("error running menu: %w", err)
	}
	return nil
}
