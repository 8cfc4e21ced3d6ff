// hopit is a vertically scrolling platform jumper for the terminal and the desktop.
//
// Usage:
//
//	hopit play      - Play in the terminal
//	hopit window    - Play in a desktop window
//	hopit serve     - Start SSH server for remote play
//	hopit scores    - Show the best height and recorded runs
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.hopit/hopit.db)
//	--store <backend>    - Best height backend: sqlite or file
//	--config <path>      - Custom game config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--log <path>         - Log file ("-" for stderr)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagStore      string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hopit",
	Short: "Hop.It - bounce up an endless tower of platforms",
	Long: `Hop.It is a vertically scrolling platform jumper. The hero bounces
automatically; steer left and right to land on the next platform, grab
power-ups for a boost, and climb as high as you can.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - Show the best height and recorded runs

Examples:
  hopit play
  hopit play --difficulty hard
  hopit window --seed 42
  hopit serve --ssh :2222
  hopit scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hopit/hopit.db", "Path to run database")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", storeSQLite, "Best height backend: sqlite or file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", `Log file path ("-" for stderr, empty to discard)`)
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
