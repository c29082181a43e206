package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewScoresCmd prints the local high-score list.
func NewScoresCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "scores",
		Short: "Show the local high-score list",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			entries, err := a.scores.List()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No high scores yet.")
				return nil
			}
			for i, entry := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d. %-20s %5d  %s\n",
					i+1, entry.Name, entry.Score, entry.At.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}
