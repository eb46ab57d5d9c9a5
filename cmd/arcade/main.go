// arcade is a terminal arcade with a word game, a number game and Vortex.
//
// Usage:
//
//	arcade                   - Text menu: press W, N or V to play, Q to quit
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//	arcade replay <file>     - Re-run a recorded session headlessly
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.termproject/scores.db)
//	--store <backend>     - Score backend: sqlite or flat
//	--log-level <level>   - debug, info, warn or error
//	--sound               - Play sound cues
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Conner685/Comp2522TermProject/internal/config"
	"github.com/Conner685/Comp2522TermProject/internal/core"
	"github.com/Conner685/Comp2522TermProject/internal/logging"
	"github.com/Conner685/Comp2522TermProject/internal/storage"

	// Import games to register them
	_ "github.com/Conner685/Comp2522TermProject/internal/games/numbers"
	_ "github.com/Conner685/Comp2522TermProject/internal/games/trivia"
	_ "github.com/Conner685/Comp2522TermProject/internal/games/vortex"
)

// flatStoreName names the gdata application directory of the flat backend.
const flatStoreName = "termproject"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagStore    string
	flagLogLevel string
	flagSound    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Term Arcade - a word game, a number game and Vortex",
	Long: `Term Arcade bundles three games behind one launcher.

Run without a command for the text menu (same as 'arcade console').

Available commands:
  console  - Text menu: W word game, N number game, V Vortex, Q quit
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  replay   - Re-run a recorded session

Examples:
  arcade
  arcade play vortex --difficulty hard
  arcade menu --sound
  arcade scores vortex
  arcade serve --ssh :2222`,
	Run: runConsole,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/"+config.AppDir+"/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", storage.BackendSQLite, "Score backend: sqlite or flat")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play sound cues")

	// Add subcommands
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
}

// openStore opens the score backend chosen by --store.
func openStore() (storage.Store, error) {
	location := flagDBPath
	if flagStore == storage.BackendFlat {
		location = flatStoreName
	}
	return storage.Open(flagStore, location)
}

// openStoreOrWarn opens the store, or returns nil so games still run.
func openStoreOrWarn() storage.Store {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores store: %v\n", err)
		return nil
	}
	return store
}

// logLevel parses --log-level, warning on bad input.
func logLevel() log.Level {
	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using info\n", err)
	}
	return level
}

// fileLogger logs to ~/.termproject/arcade.log while a TUI owns the
// terminal. The returned func closes the file.
func fileLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return logging.Discard(), func() {}
	}
	logger, f, err := logging.OpenFile(filepath.Join(home, config.AppDir), "arcade", logLevel())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return logging.Discard(), func() {}
	}
	return logger, func() { f.Close() }
}

// runtimeConfig builds the runtime config from the terminal size and flags.
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
