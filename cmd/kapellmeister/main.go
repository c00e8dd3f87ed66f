// kapellmeister is a terminal career simulation: guide a composer
// through 19th-century Vienna, one week at a time.
//
// Usage:
//
//	kapellmeister play      - Start or resume a career
//	kapellmeister career    - Show the premiere history
//	kapellmeister reset     - Abandon the saved career
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.kapellmeister/career.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
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
	Use:   "kapellmeister",
	Short: "Kapellmeister - A composer's career in your terminal",
	Long: `Kapellmeister is a terminal career simulation. You arrive in Vienna in
1820 as an unknown composer: allocate your weeks, premiere your works,
court patrons, and chase a reputation before time runs out.

Available commands:
  play     - Start or resume a career
  career   - Show the premiere history
  reset    - Abandon the saved career

Examples:
  kapellmeister play
  kapellmeister play --seed 42
  kapellmeister career
  kapellmeister reset`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.kapellmeister/career.db", "Path to career database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(careerCmd)
	rootCmd.AddCommand(resetCmd)
}
