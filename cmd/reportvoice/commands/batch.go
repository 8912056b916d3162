package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type batchResult struct {
	Source   string `json:"source"`
	Strategy string `json:"strategy,omitempty"`
	Chars    int    `json:"chars"`
	Error    string `json:"error,omitempty"`
}

func (c *cli) batchCmd() *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "batch <file|s3://bucket/key>...",
		Short: "Extract many reports concurrently",
		Long:  "Extract many reports concurrently. One failing report does not stop the others.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if workers <= 0 {
				workers = c.cfg.BatchWorkers
			}
			ctx := cmd.Context()
			results := make([]batchResult, len(args))

			var g errgroup.Group
			g.SetLimit(max(workers, 1))
			for i, src := range args {
				g.Go(func() error {
					results[i] = batchResult{Source: src}
					in, err := c.app.Intake.Extract(ctx, src)
					if err != nil {
						results[i].Error = err.Error()
						return nil
					}
					results[i].Strategy = in.Result.Strategy
					results[i].Chars = len([]rune(in.Result.Text))
					return nil
				})
			}
			_ = g.Wait()

			failed := 0
			for _, r := range results {
				if r.Error != "" {
					failed++
				}
			}

			if c.jsonOut {
				if err := writeJSON(cmd.OutOrStdout(), results); err != nil {
					return err
				}
			} else {
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "SOURCE\tSTRATEGY\tCHARS\tERROR")
				for _, r := range results {
					fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", r.Source, r.Strategy, r.Chars, r.Error)
				}
				_ = tw.Flush()
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d reports failed", failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent extractions (default BATCH_WORKERS)")
	return cmd
}
