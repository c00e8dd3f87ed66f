package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avoigt/kapellmeister/internal/config"
	"github.com/avoigt/kapellmeister/internal/game"
	"github.com/avoigt/kapellmeister/internal/platform/tui"
	"github.com/avoigt/kapellmeister/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start or resume a career",
	Long: `Start a new career, or resume the saved one if it exists.

Controls:
  Tab/Arrows   - Switch tabs, navigate lists
  Enter        - Select / work a week
  W            - Pass a week without composing
  Q/Ctrl+C     - Save and quit

Examples:
  kapellmeister play
  kapellmeister play --seed 42
  kapellmeister play --config ./my-balance.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom balance YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: play requires an interactive terminal")
		os.Exit(1)
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w < 70 {
		fmt.Fprintln(os.Stderr, "Warning: a terminal at least 70 columns wide is recommended")
	}

	bal, err := config.LoadBalance(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading balance config: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	engine := game.NewEngine(bal, rand.New(rand.NewSource(seed)))

	// A broken database degrades to an ephemeral session.
	var gameStore tui.GameStore
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open career database, progress will not be saved", "err", err)
	} else {
		gameStore = store
		defer store.Close()
	}

	if err := tui.Run(engine, gameStore); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
