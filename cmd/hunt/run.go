package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/treasure-hunt/internal/core"
	"github.com/vovakirdan/treasure-hunt/internal/hunt"
	"github.com/vovakirdan/treasure-hunt/internal/layout"
	"github.com/vovakirdan/treasure-hunt/internal/script"
	"github.com/vovakirdan/treasure-hunt/internal/storage"
)

var (
	flagStrict    bool
	flagNoSave    bool
	flagRunLayout string
)

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Run a session script headlessly",
	Long: `Execute a session script and print the final board.

A script is a list of commands, one per line:

  grid 5 5                  # optional, must come first
  place hunter at 0 0
  place treasure 5 at 0 1
  place obstacle at 2 2
  end setup
  move right                # up, down, left, right or w, a, s, d
  end play

Rejected commands are logged and skipped unless --strict is given.
Finished sessions are saved to the results history.

Examples:
  hunt run session.hunt
  hunt run moves.hunt --layout corridor --seed 42
  hunt run session.hunt --strict --no-save`,
	Args: cobra.ExactArgs(1),
	Run:  runScript,
}

func init() {
	runCmd.Flags().BoolVar(&flagStrict, "strict", false, "Stop at the first rejected command")
	runCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the result")
	runCmd.Flags().StringVar(&flagRunLayout, "layout", "", "Layout to apply before the script runs")
}

func runScript(_ *cobra.Command, args []string) {
	s, err := script.ParseFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rt := appConfig.Runtime()
	rt.Seed = sessionSeed()

	var g *hunt.Game
	var layoutID string
	if flagRunLayout != "" {
		lay, lerr := layout.Resolve(flagRunLayout, appConfig.LayoutsDir)
		if lerr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", lerr)
			os.Exit(1)
		}
		g, err = lay.NewGame(rt.Seed)
		layoutID = lay.ID
	} else {
		g, err = hunt.New(rt)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runner := script.Runner{
		Strict: flagStrict,
		OnStep: func(st script.Step) {
			switch {
			case st.Err != nil:
				logger.Warn("rejected", "line", st.Line, "command", st.Command, "error", st.Err)
			case st.Move != nil:
				logger.Debug("moved", "line", st.Line, "result", st.Move.String())
			default:
				logger.Debug("ok", "line", st.Line, "command", st.Command)
			}
		},
	}

	steps, runErr := runner.Run(s, g)
	logger.Debug("script finished", "steps", len(steps), "seed", g.Seed())

	printBoard(g)
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}

	if g.Stage() != hunt.StageEnd {
		fmt.Printf("\nSession stopped during %s; nothing recorded.\n", g.Stage())
		return
	}
	if flagNoSave {
		return
	}
	saveResult(g, layoutID)
}

// printBoard writes the plain-text board and status panel to stdout.
func printBoard(g *hunt.Game) {
	w, h := hunt.RequiredSize(g.Rows(), g.Cols())
	screen := core.NewScreen(w, h)
	g.Render(screen, nil)
	fmt.Println(screen.String())
}

// saveResult records the finished game. Failures are logged, not fatal.
func saveResult(g *hunt.Game, layoutID string) {
	store, err := storage.Open(appConfig.DBPath)
	if err != nil {
		logger.Warn("could not open results database", "path", appConfig.DBPath, "error", err)
		return
	}
	defer store.Close()

	r, err := store.SaveResult(storage.Result{
		Player:           "script",
		LayoutID:         layoutID,
		Rows:             g.Rows(),
		Cols:             g.Cols(),
		Score:            g.Score(),
		Rounds:           g.Rounds(),
		PerformanceIndex: g.PerformanceIndex(),
		EndReason:        g.EndReason().String(),
	})
	if err != nil {
		logger.Warn("could not save result", "error", err)
		return
	}
	logger.Info("result saved", "session", r.SessionID, "index", r.PerformanceIndex.StringFixed(2))
}
