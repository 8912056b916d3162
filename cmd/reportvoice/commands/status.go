package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (c *cli) ocrStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ocr-status",
		Short: "Report whether scanned PDFs can be read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			capability := c.app.Pipeline.Capability()
			if c.jsonOut {
				return writeJSON(cmd.OutOrStdout(), capability)
			}
			if capability.Available {
				fmt.Fprintln(cmd.OutOrStdout(), "OCR available")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OCR unavailable, missing: %s\n", strings.Join(capability.Missing, ", "))
			return nil
		},
	}
}
