// hunt is a turn-based treasure hunt played on a grid in the terminal.
//
// Usage:
//
//	hunt play                - Set up a board and hunt interactively
//	hunt run <script>        - Execute a session script headlessly
//	hunt layouts             - List built-in and custom layouts
//	hunt results             - Show the results history
//	hunt serve               - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.hunt/config.yaml, ./configs/hunt.yaml)
//	--seed <value>      - Set RNG seed for reproducible obstacle spawns
//	--db <path>         - Set database path
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/treasure-hunt/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// Resolved before every command runs.
	appConfig config.HuntConfig
	logger    *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hunt",
	Short: "Treasure Hunt - a turn-based grid hunt in your terminal",
	Long: `Treasure Hunt is played in two stages. During setup you place
treasures worth 5 to 8 points, obstacles and a single hunter on the grid.
During play the hunter moves one cell per turn; every treasure collected
adds to the score and makes a new obstacle appear somewhere on the board.
The hunt ends when all treasures are collected, the hunter is boxed in,
or you stop. Your performance index is score per round.

Available commands:
  play     - Interactive session
  run      - Headless session from a script
  layouts  - List and export board layouts
  results  - Results history
  serve    - Start SSH server for remote play

Examples:
  hunt play
  hunt play --layout classic
  hunt play --random --difficulty hard --rows 8 --cols 10
  hunt run session.hunt
  hunt serve --ssh :2323`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadSettings loads the config file and applies global flag overrides.
func loadSettings(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "hunt",
		Level:           level,
	})
	appConfig = cfg
	return nil
}

// sessionSeed returns the configured seed, or a time-based one when unset.
func sessionSeed() int64 {
	if appConfig.Seed != 0 {
		return appConfig.Seed
	}
	return time.Now().UnixNano()
}
