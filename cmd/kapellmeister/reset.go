package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avoigt/kapellmeister/internal/storage"
)

var flagForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Abandon the saved career",
	Long: `Delete the save slot and start fresh on the next play. The premiere
history is kept.

Examples:
  kapellmeister reset
  kapellmeister reset --force`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagForce, "force", false, "Skip the confirmation prompt")
}

func runReset(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening career database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	has, err := store.HasSave()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error checking save: %v\n", err)
		os.Exit(1)
	}
	if !has {
		fmt.Println("No career to abandon.")
		return
	}

	if !flagForce {
		fmt.Print("Abandon the current career? The premiere history is kept. [y/N] ")
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Kept.")
			return
		}
	}

	if err := store.ClearSave(); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing save: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("The career has been abandoned. History remains in the annals.")
}
