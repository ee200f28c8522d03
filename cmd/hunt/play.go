package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/treasure-hunt/internal/config"
	"github.com/vovakirdan/treasure-hunt/internal/hunt"
	"github.com/vovakirdan/treasure-hunt/internal/layout"
	"github.com/vovakirdan/treasure-hunt/internal/platform/tui"
	"github.com/vovakirdan/treasure-hunt/internal/storage"
)

var (
	flagLayout     string
	flagRows       int
	flagCols       int
	flagRandom     bool
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play an interactive hunt",
	Long: `Start an interactive session in the terminal.

Setup controls:
  Arrows     - Move the cursor
  5-8        - Place a treasure of that value
  O          - Place an obstacle
  H          - Place the hunter
  Enter      - Start the hunt

Play controls:
  WASD/Arrows - Move the hunter
  E           - End the hunt

Any time:
  R          - Restart
  ?          - Show all keys
  Q/Ctrl+C   - Quit

Difficulty options (with --random):
  easy   - Many treasures, few obstacles
  normal - Balanced board
  hard   - Few treasures, many obstacles

Examples:
  hunt play
  hunt play --rows 8 --cols 12
  hunt play --layout vault
  hunt play --layout ./boards/spiral.yaml
  hunt play --random --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLayout, "layout", "", "Layout ID or YAML file to start from")
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Grid rows (default from config)")
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Grid columns (default from config)")
	playCmd.Flags().BoolVar(&flagRandom, "random", false, "Start from a randomly generated layout")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset for --random: easy, normal, hard")
}

func runPlay(_ *cobra.Command, _ []string) {
	rt := appConfig.Runtime()
	if flagRows > 0 {
		rt.Rows = flagRows
	}
	if flagCols > 0 {
		rt.Cols = flagCols
	}
	rt.Seed = sessionSeed()

	lay, err := pickLayout(rt.Rows, rt.Cols, rt.Seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rows, cols := rt.Rows, rt.Cols
	if lay != nil {
		rows, cols = lay.Rows, lay.Cols
	}
	needW, needH := hunt.RequiredSize(rows, cols)
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < needW || h < needH+2) {
		logger.Warn("terminal may be too small for this board", "have", fmt.Sprintf("%dx%d", w, h), "need", fmt.Sprintf("%dx%d", needW, needH+2))
	}

	store, err := storage.Open(appConfig.DBPath)
	if err != nil {
		logger.Warn("could not open results database", "path", appConfig.DBPath, "error", err)
		// Continue without storage - the hunt still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Debug("starting session", "rows", rows, "cols", cols, "seed", rt.Seed)
	if err := tui.Run(rt, tui.Options{Store: store, Layout: lay, Logger: logger}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// pickLayout resolves --layout or --random. It returns nil for an empty board.
func pickLayout(rows, cols int, seed int64) (*layout.Layout, error) {
	switch {
	case flagRandom && flagLayout != "":
		return nil, fmt.Errorf("--random and --layout are mutually exclusive")

	case flagRandom:
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return nil, err
		}
		lay, err := layout.Generate(rows, cols, config.DensityForPreset(preset), hunt.NewSource(seed))
		if err != nil {
			return nil, err
		}
		return &lay, nil

	case flagLayout != "":
		lay, err := layout.Resolve(flagLayout, appConfig.LayoutsDir)
		if err != nil {
			return nil, err
		}
		return &lay, nil
	}

	if flagDifficulty != "" {
		logger.Warn("--difficulty only applies with --random")
	}
	return nil, nil
}
