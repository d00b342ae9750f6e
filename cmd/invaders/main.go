// invaders plays Space Invaders in the terminal or in a desktop window.
//
// Usage:
//
//	invaders                 - Title screen with the score table
//	invaders play            - Start a game right away
//	invaders play --window   - Play in a desktop window
//	invaders list            - List available games
//	invaders config          - Print the effective configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Load a YAML or TOML config file
//	--log-file <path>    - Write the log to a file
//	--log-level <level>  - debug, info, warn or error
//	--mute               - Disable sound
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/audio"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
	flagMute     bool
	flagVolume   float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders for your terminal",
	Long: `Defend the planet against a descending fleet of aliens.

Available commands:
  menu     - Title screen (default)
  play     - Start a game directly
  list     - Show all available games
  config   - Print the effective configuration

Examples:
  invaders
  invaders play --seed 42
  invaders play --window
  invaders config --format toml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume from 0 to 1")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
}

// session holds what every game command needs and must release on exit.
type session struct {
	logger  *log.Logger
	store   *storage.Store
	sound   core.SoundPlayer
	cfg     core.RuntimeConfig
	closers []func()
}

// openSession builds the logger, the run ledger and the audio output from
// the global flags. Failures of optional parts are logged and skipped.
func openSession() (*session, error) {
	s := &session{}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return nil, err
	}
	s.logger = logger
	s.closers = append(s.closers, closeLog)

	if _, err := invaders.LoadSettings(flagConfig); err != nil {
		logger.Error("bad configuration", "path", flagConfig, "error", err)
		s.Close()
		return nil, err
	}
	invaders.SetConfigPath(flagConfig)

	store, err := storage.Open()
	if err != nil {
		logger.Warn("run ledger unavailable", "error", err)
	} else {
		s.store = store
		s.closers = append(s.closers, func() { _ = store.Close() })
	}

	s.sound = core.NopSoundPlayer{}
	if !flagMute {
		sound, closeSound := audio.Open(logger, flagVolume)
		s.sound = sound
		s.closers = append(s.closers, closeSound)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	s.cfg = core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}
	return s, nil
}

// Close releases the session in reverse order of opening.
func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// newLogger writes to path, or nowhere when path is empty: the terminal
// belongs to the game while it runs.
func newLogger(path, level string) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)
	return logger, closeFn, nil
}
