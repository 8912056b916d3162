package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/markdave123-py/reportvoice/internal/models"
)

func (c *cli) extractCmd() *cobra.Command {
	var showAttempts bool

	cmd := &cobra.Command{
		Use:   "extract <file|s3://bucket/key>",
		Short: "Extract the text of a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := c.app.Intake.Extract(cmd.Context(), args[0])
			if err != nil {
				return fail(cmd, err)
			}

			if c.jsonOut {
				return writeJSON(cmd.OutOrStdout(), in.Result)
			}
			fmt.Fprintln(cmd.OutOrStdout(), in.Result.Text)
			if showAttempts {
				printAttempts(cmd, in.Result.Attempts)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showAttempts, "attempts", false, "list every strategy tried on stderr")
	return cmd
}

func printAttempts(cmd *cobra.Command, attempts []models.ExtractionAttempt) {
	tw := tabwriter.NewWriter(cmd.ErrOrStderr(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STRATEGY\tOUTCOME\tCHARS\tTIME\tREASON")
	for _, a := range attempts {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", a.Strategy, a.Outcome, a.Chars, a.Duration.Round(time.Millisecond), a.Reason)
	}
	_ = tw.Flush()
}
