package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avoigt/kapellmeister/internal/game"
	"github.com/avoigt/kapellmeister/internal/storage"
)

var flagTop int

var careerCmd = &cobra.Command{
	Use:   "career",
	Short: "Show the premiere history",
	Long: `Display the saved career summary and the finest premieres on record.
The premiere history is permanent: it survives a career reset.

Examples:
  kapellmeister career
  kapellmeister career --top 25`,
	Args: cobra.NoArgs,
	Run:  runCareer,
}

func init() {
	careerCmd.Flags().IntVar(&flagTop, "top", 10, "How many premieres to show")
}

func runCareer(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening career database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	saved, err := store.LoadGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading save: %v\n", err)
		os.Exit(1)
	}

	if saved != nil {
		fmt.Printf("%s — %s\n", saved.ComposerName, saved.CurrentDate)
		fmt.Printf("  Thalers %d, reputation %d, works premiered %d\n",
			saved.Stats.Money, saved.Stats.Reputation, len(saved.CompletedWorks))
		if len(saved.AchievedMilestones) > 0 {
			fmt.Println("  Milestones:")
			for _, id := range saved.AchievedMilestones {
				fmt.Printf("    - %s\n", game.MilestoneName(id))
			}
		}
		fmt.Println()
	} else {
		fmt.Println("No career in progress.")
		fmt.Println()
	}

	history, err := store.PremiereHistory(flagTop)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving premieres: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Finest Premieres")
	fmt.Println()

	if len(history) == 0 {
		fmt.Println("No premieres recorded yet.")
		fmt.Println()
		fmt.Println("Run 'kapellmeister play' to stage the first one.")
		return
	}

	fmt.Printf("  %-4s  %-36s  %-8s  %s\n", "Rank", "Work", "Quality", "Premiered")
	fmt.Printf("  %-4s  %-36s  %-8s  %s\n", "----", "----", "-------", "---------")

	for i, r := range history {
		title := r.Title
		if r.IsRevival {
			title += " (revival)"
		}
		fmt.Printf("  %-4d  %-36s  %-8d  %s\n", i+1, title, r.Quality, r.PremiereDate)
	}
}
