package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/treasure-hunt/internal/config"
	"github.com/vovakirdan/treasure-hunt/internal/hunt"
	"github.com/vovakirdan/treasure-hunt/internal/layout"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List available layouts",
	Long: `Shows the built-in layouts and any found in the configured layouts_dir.

Examples:
  hunt layouts
  hunt layouts show vault
  hunt layouts generate --rows 8 --cols 8 --difficulty hard > hard.yaml`,
	Args: cobra.NoArgs,
	Run:  runLayouts,
}

var layoutsShowCmd = &cobra.Command{
	Use:   "show <id|file>",
	Short: "Print a layout as YAML with a board preview",
	Args:  cobra.ExactArgs(1),
	Run:   runLayoutsShow,
}

var (
	flagGenRows       int
	flagGenCols       int
	flagGenDifficulty string
)

var layoutsGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random layout as YAML",
	Args:  cobra.NoArgs,
	Run:   runLayoutsGenerate,
}

func init() {
	layoutsGenerateCmd.Flags().IntVar(&flagGenRows, "rows", 0, "Grid rows (default from config)")
	layoutsGenerateCmd.Flags().IntVar(&flagGenCols, "cols", 0, "Grid columns (default from config)")
	layoutsGenerateCmd.Flags().StringVar(&flagGenDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")

	layoutsCmd.AddCommand(layoutsShowCmd)
	layoutsCmd.AddCommand(layoutsGenerateCmd)
}

func runLayouts(_ *cobra.Command, _ []string) {
	layouts := layout.List()
	if appConfig.LayoutsDir != "" {
		custom, err := layout.NewLoader(appConfig.LayoutsDir).LoadAll()
		if err != nil {
			logger.Warn("could not read layouts directory", "dir", appConfig.LayoutsDir, "error", err)
		}
		layouts = append(layouts, custom...)
	}

	if len(layouts) == 0 {
		fmt.Println("No layouts available.")
		return
	}

	fmt.Println("Available layouts:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, l := range layouts {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-*s  %-5s  %-9s  %-9s  %s\n", maxIDLen, "ID", "Size", "Treasures", "Obstacles", "Name")
	fmt.Printf("  %-*s  %-5s  %-9s  %-9s  %s\n", maxIDLen, "--", "----", "---------", "---------", "----")
	for _, l := range layouts {
		treasures, obstacles, value := l.Summary()
		name := l.Name
		if l.FilePath != "" {
			name += " (" + l.FilePath + ")"
		}
		fmt.Printf("  %-*s  %-5s  %-9s  %-9d  %s\n", maxIDLen, l.ID,
			fmt.Sprintf("%dx%d", l.Rows, l.Cols),
			fmt.Sprintf("%d (%d)", treasures, value),
			obstacles, name)
	}

	fmt.Println()
	fmt.Println("Run 'hunt play --layout <id>' to play one.")
}

func runLayoutsShow(_ *cobra.Command, args []string) {
	lay, err := layout.Resolve(args[0], appConfig.LayoutsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := layout.Encode(lay)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
	fmt.Println()

	g, err := lay.NewGame(1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printBoard(g)
}

func runLayoutsGenerate(_ *cobra.Command, _ []string) {
	preset, err := config.ParseDifficulty(flagGenDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rows, cols := appConfig.Grid.Rows, appConfig.Grid.Cols
	if flagGenRows > 0 {
		rows = flagGenRows
	}
	if flagGenCols > 0 {
		cols = flagGenCols
	}

	seed := sessionSeed()
	lay, err := layout.Generate(rows, cols, config.DensityForPreset(preset), hunt.NewSource(seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	lay.ID = fmt.Sprintf("random-%s-%d", preset, seed)
	lay.Name = fmt.Sprintf("Random %s", preset)

	data, err := layout.Encode(lay)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}
