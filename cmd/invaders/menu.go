package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the title screen",
	Long: `Open the title screen with the score advance table.

Pick PLAY to start a game, SCORES for the runs of this session.
After a game ends you return to the title screen.

Controls:
  Up/Down/w/s  - Navigate
  Enter/Space  - Select
  Q            - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	cfg := s.cfg
	for {
		result, err := tui.RunMenu(s.store, cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = result.Config

		switch result.Choice {
		case tui.MenuChoicePlay:
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			s.logger.Debug("menu picked play", "seed", cfg.Seed)
			if err := tui.Run(invaders.New(), cfg, s.tuiOptions()); err != nil {
				s.logger.Error("game failed", "error", err)
				return fmt.Errorf("running game: %w", err)
			}

		case tui.MenuChoiceScores:
			goBack, err := tui.RunScoreboard(s.store, invaders.GameID, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("scoreboard: %w", err)
			}
			if !goBack {
				return nil
			}

		default:
			return nil
		}
	}
}

func (s *session) tuiOptions() tui.Options {
	return tui.Options{
		Store:     s.store,
		Logger:    s.logger,
		Sound:     s.sound,
		FixedSeed: flagSeed != 0,
	}
}
