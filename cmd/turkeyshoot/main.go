// turkeyshoot is a terminal top-down shooter where the Thanksgiving
// spread fights back.
//
// Usage:
//
//	turkeyshoot play          - Play in the current terminal
//	turkeyshoot serve         - Start SSH server for remote play
//	turkeyshoot scores        - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.turkeyshoot/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "turkeyshoot",
	Short: "Turkey Shoot - the feast fights back, in your terminal",
	Long: `Turkey Shoot is a terminal top-down shooter. Waves of rogue holiday
dishes descend from the top of the screen; shoot them down, catch
powerups, and survive the boss turkey every fifth level.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  turkeyshoot play
  turkeyshoot play --difficulty hard
  turkeyshoot serve --ssh :2222
  turkeyshoot scores --difficulty medium`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.turkeyshoot/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
