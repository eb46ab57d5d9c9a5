package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Conner685/Comp2522TermProject/internal/replay"
)

var flagExpectHash uint64

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-run a recorded session without a terminal",
	Long: `Load a replay written by 'arcade play --record' and feed its input
back into a fresh game with the recorded seed, screen size and config.

The final score and, for Vortex, a hash of the arena are printed. Two runs
of the same file always agree.

Examples:
  arcade play vortex --record run.replay
  arcade replay run.replay
  arcade replay run.replay --expect 0x1f2e3d4c5b6a7988`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().Uint64Var(&flagExpectHash, "expect", 0, "Fail unless the final state hash matches")
}

func runReplay(_ *cobra.Command, args []string) {
	rec, err := replay.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	applyGameConfig(rec.GameID, rec.ConfigPath, rec.Difficulty)

	res, err := replay.PlayID(rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Game:      %s\n", rec.GameID)
	fmt.Printf("Recorded:  %s\n", rec.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("Seed:      %d\n", rec.Seed)
	fmt.Printf("Ticks:     %d\n", res.Ticks)
	fmt.Printf("Score:     %d\n", res.Score)
	fmt.Printf("Game over: %t\n", res.GameOver)
	if res.Hashed {
		fmt.Printf("Hash:      %#016x\n", res.Hash)
	}

	if flagExpectHash != 0 && (!res.Hashed || res.Hash != flagExpectHash) {
		fmt.Fprintln(os.Stderr, "Error: final state does not match the expected hash")
		os.Exit(1)
	}
}
