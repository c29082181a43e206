package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewCategoriesCmd prints the category listing offered by the source.
// A fetch failure is not fatal: the quiz works without a category filter.
func NewCategoriesCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the trivia categories offered by the source",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			categories, err := a.categories.Categories(cmd.Context())
			if err != nil {
				a.logger.Warn("category listing failed", zap.Error(err))
				fmt.Fprintln(cmd.OutOrStdout(), "Categories are unavailable right now; play works without a filter.")
				return nil
			}
			for _, category := range categories {
				fmt.Fprintf(cmd.OutOrStdout(), "%4d  %s\n", category.ID, category.Name)
			}
			return nil
		},
	}
}
