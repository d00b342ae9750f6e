package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/platform/window"
)

var flagWindow bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start a game of Space Invaders right away.

Controls:
  Left/A, Right/D  - Move
  Space            - Fire
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Examples:
  invaders play
  invaders play --seed 42
  invaders play --window
  invaders play --config ./my-invaders.toml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
}

func runPlay(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if flagWindow {
		err = window.Run(invaders.New(), s.cfg, window.Options{
			Store:     s.store,
			Logger:    s.logger,
			Sound:     s.sound,
			FixedSeed: flagSeed != 0,
		})
	} else {
		err = tui.Run(invaders.New(), s.cfg, s.tuiOptions())
	}
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
