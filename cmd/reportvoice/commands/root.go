package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/markdave123-py/reportvoice/internal/app"
	"github.com/markdave123-py/reportvoice/internal/config"
	"github.com/markdave123-py/reportvoice/internal/observability"
	"github.com/markdave123-py/reportvoice/internal/services"
)

// cli holds state shared by the subcommands of one invocation.
type cli struct {
	verbose bool
	jsonOut bool

	cfg *config.Config
	app *app.App
}

// Execute runs the root command; ctx is canceled on SIGINT/SIGTERM.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "reportvoice",
		Short: "Extract, simplify and speak radiology reports",
		Long: `reportvoice reads radiology reports from .txt, .doc, .docx and .pdf files,
falling back to OCR for scanned PDFs, and rewrites them in plain language
with optional speech output.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.app != nil {
				c.app.Close()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&c.jsonOut, "json", false, "print results as JSON")

	root.AddCommand(
		c.extractCmd(),
		c.simplifyCmd(),
		c.findingsCmd(),
		c.ocrStatusCmd(),
		c.batchCmd(),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	c.cfg = config.LoadConfig()
	if c.verbose {
		c.cfg.LogLevel = "debug"
	}

	logger := observability.NewLogger(observability.LogConfig{
		Level:       c.cfg.LogLevel,
		Format:      c.cfg.LogFormat,
		Output:      cmd.ErrOrStderr(),
		ServiceName: "reportvoice",
	})

	a, err := app.NewApp(cmd.Context(), c.cfg, logger)
	if err != nil {
		return fmt.Errorf("startup failed: %w", err)
	}
	c.app = a
	return nil
}

// fail prints suggestions for err, if any, and returns it.
func fail(cmd *cobra.Command, err error) error {
	if tips := services.Guidance(err); len(tips) > 0 {
		w := cmd.ErrOrStderr()
		for _, tip := range tips {
			fmt.Fprintln(w, "  "+tip)
		}
	}
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
