package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yanqian/garden-faq/internal/domain/gardenfaq"
)

func newSearchCommand(source *string) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Show the best answer and up to three candidates for a query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(*source)
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")
			resp, err := svc.Search(cmd.Context(), gardenfaq.Request{Query: query, Category: category})
			if err != nil {
				return describeError(err)
			}
			printResponse(cmd.OutOrStdout(), resp)
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", gardenfaq.CategoryAll, "Restrict matches to one category")
	return cmd
}

func printResponse(w io.Writer, resp gardenfaq.Response) {
	fmt.Fprintf(w, "\nfaqcli search %q (category: %s)\n\n", resp.Query, resp.Category)
	if resp.Best == nil {
		fmt.Fprintln(w, "No matching answer found.")
		return
	}

	fmt.Fprintf(w, "● %s [%s]\n", resp.Best.Label, resp.Best.Category)
	if resp.Best.Question != "" {
		fmt.Fprintf(w, "  Q: %s\n", resp.Best.Question)
	}
	if resp.Best.Answer != "" {
		fmt.Fprintf(w, "  A: %s\n", resp.Best.Answer)
	}

	fmt.Fprintf(w, "\nCandidates (%d found):\n", len(resp.Candidates))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, c := range resp.Candidates {
		fmt.Fprintf(tw, "  %d.\t%s\t%s\tscore=%d\n", i+1, c.Label, c.Category, c.Score)
	}
	_ = tw.Flush()
}

// describeError turns loader failures into a message for the terminal.
func describeError(err error) error {
	switch {
	case gardenfaq.IsFormatError(err):
		return fmt.Errorf("the FAQ document is malformed and needs to be redeployed: %w", err)
	case gardenfaq.IsLoadError(err):
		return fmt.Errorf("could not load the FAQ document, try again: %w", err)
	default:
		return err
	}
}
