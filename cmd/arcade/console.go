package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Conner685/Comp2522TermProject/internal/audio"
	"github.com/Conner685/Comp2522TermProject/internal/dispatch"
	"github.com/Conner685/Comp2522TermProject/internal/platform/console"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Text menu that launches games by letter",
	Long: `Start the plain text launcher.

The menu is printed before every read:
  W - Word Game
  N - Number Game
  V - Vortex
  Q - Quit

Anything else prints "Invalid input! Please try again!" and asks again.
Games run one at a time; the menu returns when a game is left.`,
	Run: runConsole,
}

func init() {
	consoleCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	consoleCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Vortex difficulty preset: easy, normal, hard, fixed")
}

func runConsole(_ *cobra.Command, _ []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := openStoreOrWarn()
	logger, closeLog := fileLogger()
	sound := audio.NewPlayer(flagSound, soundVolume, logger)
	s := session{store: store, sound: sound, logger: logger}

	queue := dispatch.NewQueue()
	c := console.New(os.Stdin, os.Stdout, queue, logger)

	consoleDone := make(chan error, 1)
	go func() { consoleDone <- c.Run(ctx) }()

	// Games own the terminal, so they run here and never on the reader.
	runErr := queue.Run(ctx, func(_ context.Context, cmd dispatch.Command) error {
		launch, ok := cmd.(dispatch.LaunchGame)
		if !ok {
			return fmt.Errorf("unexpected command %T", cmd)
		}
		applyGameConfig(launch.GameID, flagConfig, flagDifficulty)
		_, err := s.play(launch.GameID, runtimeConfig(), "")
		return err
	})

	sound.Close()
	closeLog()
	if store != nil {
		store.Close()
	}

	if runErr != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
	select {
	case err := <-consoleDone:
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		// Interrupted while the reader was blocked on stdin.
	}
}
