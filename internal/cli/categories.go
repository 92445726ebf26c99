package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCategoriesCommand(source *string) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the category filters available in the FAQ",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(*source)
			if err != nil {
				return err
			}
			categories, err := svc.Categories(cmd.Context())
			if err != nil {
				return describeError(err)
			}
			for _, c := range categories {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}
