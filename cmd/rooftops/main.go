// rooftops is an endless rooftop runner for the terminal.
//
// Usage:
//
//	rooftops play            - Start a run directly
//	rooftops menu            - Title menu with play and high scores
//	rooftops scores          - Show the leaderboard
//	rooftops config          - Print the default game config
//	rooftops serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for a reproducible skyline
//	--db <path>          - Set database path (default: ~/.rooftops/runs.db)
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/rooftops/internal/games/rooftops"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rooftops",
	Short: "Endless Rooftops - run and jump across the skyline in your terminal",
	Long: `Endless Rooftops is a side-scrolling runner. Sprint across an endless
skyline, charge your jumps over the gaps, and dodge the blades and
creatures waiting on the roofs. Falling or touching a hazard ends the run.

Available commands:
  play     - Start a run directly
  menu     - Title menu with play and high scores
  scores   - View the leaderboard
  config   - Print the default game config
  serve    - Start SSH server for remote play

Examples:
  rooftops play
  rooftops play --config ./my-rooftops.yaml
  rooftops menu --log-file /tmp/rooftops.log
  rooftops scores --limit 20
  rooftops serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rooftops/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the logger for interactive commands. The TUI owns the
// terminal, so logs go to --log-file or nowhere.
// The returned close function releases the log file.
func newLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	if flagLogFile == "" {
		logger := log.New(io.Discard)
		logger.SetLevel(level)
		return logger, func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "rooftops",
	})
	return logger, func() { f.Close() }, nil
}
