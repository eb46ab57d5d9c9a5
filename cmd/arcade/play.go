package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Conner685/Comp2522TermProject/internal/audio"
	"github.com/Conner685/Comp2522TermProject/internal/core"
	"github.com/Conner685/Comp2522TermProject/internal/games/numbers"
	"github.com/Conner685/Comp2522TermProject/internal/games/trivia"
	"github.com/Conner685/Comp2522TermProject/internal/games/vortex"
	"github.com/Conner685/Comp2522TermProject/internal/platform/tui"
	"github.com/Conner685/Comp2522TermProject/internal/registry"
	"github.com/Conner685/Comp2522TermProject/internal/replay"
	"github.com/Conner685/Comp2522TermProject/internal/storage"
)

// soundVolume is the cue volume in beep's log2 steps.
const soundVolume = 0.5

var (
	flagConfig     string
	flagDifficulty string
	flagRecord     string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Vortex controls:
  WASD/Arrows        - Move
  Shift+dir / Space  - Boost
  Enter              - Start / retry
  B/Esc              - Back to the title screen
  P                  - Pause
  Q/Ctrl+C           - Quit

Difficulty options (vortex only):
  easy   - Slower spawn ramp
  normal - Default curve
  hard   - Faster spawn ramp
  fixed  - No progression, stays at the initial spawn rate

Examples:
  arcade play vortex
  arcade play vortex --difficulty hard
  arcade play vortex --record ./run.replay
  arcade play numbers --config ./my-numbers.yaml
  arcade play trivia`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Write a replay of the session to this file")
}

// applyGameConfig points the chosen game at its config file and preset
// before it is created.
func applyGameConfig(gameID, configPath, difficulty string) {
	switch gameID {
	case "vortex":
		vortex.SetConfigPath(configPath)
		vortex.SetDifficultyPreset(difficulty)
	case "numbers":
		numbers.SetConfigPath(configPath)
	case "trivia":
		trivia.SetConfigPath(configPath)
	}
}

// session bundles what every launched game shares.
type session struct {
	store  storage.Store
	sound  *audio.Player
	logger *log.Logger
}

// play runs gameID in the terminal. A non-empty recordPath saves a replay
// of the whole run.
func (s session) play(gameID string, cfg core.RuntimeConfig, recordPath string) (tui.Outcome, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return tui.Outcome{}, err
	}

	// Fix the seed now so a recording can reproduce it.
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	var rec *replay.Recorder
	if recordPath != "" {
		rec = replay.NewRecorder(gameID, cfg, flagConfig, flagDifficulty)
	}

	outcome, err := tui.Run(game, cfg, tui.Options{
		Store:    s.store,
		Sound:    s.sound,
		Recorder: rec,
		Logger:   s.logger,
	})
	if err != nil {
		return outcome, err
	}

	if rec != nil {
		if err := replay.Save(recordPath, rec.Recording()); err != nil {
			return outcome, err
		}
		s.logger.Info("replay saved", "path", recordPath, "ticks", rec.Recording().Ticks())
	}
	return outcome, nil
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	applyGameConfig(gameID, flagConfig, flagDifficulty)

	// Continue without storage if it cannot be opened - the game still works
	store := openStoreOrWarn()

	logger, closeLog := fileLogger()
	sound := audio.NewPlayer(flagSound, soundVolume, logger)

	s := session{store: store, sound: sound, logger: logger}
	outcome, runErr := s.play(gameID, runtimeConfig(), flagRecord)

	sound.Close()
	closeLog()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	if flagRecord != "" {
		fmt.Printf("Replay written to %s (score %d)\n", flagRecord, outcome.Score)
	}
}
