package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Conner685/Comp2522TermProject/internal/audio"
	"github.com/Conner685/Comp2522TermProject/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game, or press a
game's letter to launch it. Backing out of a game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  W/N/V        - Launch a game directly
  Tab          - Scoreboard
  Q/Esc        - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --store flat`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Vortex difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStoreOrWarn()
	logger, closeLog := fileLogger()
	sound := audio.NewPlayer(flagSound, soundVolume, logger)
	s := session{store: store, sound: sound, logger: logger}

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		applyGameConfig(menuResult.GameID, flagConfig, flagDifficulty)

		// Each game gets a fresh seed unless one was given.
		gameCfg := cfg
		gameCfg.Seed = flagSeed
		outcome, err := s.play(menuResult.GameID, gameCfg, "")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			continue
		}
		if outcome.Quit {
			break
		}
	}

	sound.Close()
	closeLog()
	if store != nil {
		store.Close()
	}
}
