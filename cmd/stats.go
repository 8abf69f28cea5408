package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := openStore(cmd)
		if st == nil {
			return fmt.Errorf("could not open the event store")
		}
		defer st.Close()

		stats, err := st.Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("read stats: %w", err)
		}

		fmt.Printf("Quiz attempts:    %d\n", stats.Attempts)
		fmt.Printf("Completed:        %d\n", stats.Completed)
		if stats.Completed > 0 {
			fmt.Printf("Average score:    %.0f / 100\n", stats.AverageScore)
		}

		if len(stats.FailuresByWhy) > 0 {
			fmt.Println("\nFailed analyses:")
			for reason, n := range stats.FailuresByWhy {
				fmt.Printf("  %-20s %d\n", reason, n)
			}
		}

		if stats.ModelRequests > 0 {
			fmt.Printf("\nLLM requests:     %d (%d failed)\n", stats.ModelRequests, stats.ModelFailures)
			fmt.Printf("Tokens:           %d in / %d out\n", stats.TotalInTokens, stats.TotalOutTokens)
		}

		return nil
	},
}
