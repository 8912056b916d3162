package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/markdave123-py/reportvoice/internal/models"
	"github.com/markdave123-py/reportvoice/internal/services"
)

func (c *cli) simplifyCmd() *cobra.Command {
	var req models.SimplifyRequest

	cmd := &cobra.Command{
		Use:   "simplify",
		Short: "Rewrite a report in plain language",
		Long: `Rewrite a report for a patient audience. --text takes precedence over --file.
With --speak the result is also synthesized to an MP3 in AUDIO_DIR.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reports, err := c.app.Reports()
			if err != nil {
				return err
			}
			if req.LanguageCode == "" {
				req.LanguageCode = c.cfg.TTSLanguage
			}

			report, err := reports.Simplify(cmd.Context(), req)
			if err != nil {
				return fail(cmd, err)
			}

			if c.jsonOut {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, report.SimplifiedText)
			if report.Audio != nil {
				fmt.Fprintf(out, "\naudio: %s\n", report.Audio.Path)
				if report.Audio.URL != "" {
					fmt.Fprintf(out, "url: %s\n", report.Audio.URL)
				}
			}
			if report.Warning != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", report.Warning)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Text, "text", "", "report text")
	f.StringVar(&req.FilePath, "file", "", "report file or s3://bucket/key")
	f.StringVar(&req.TargetAudience, "audience", services.DefaultAudience, "target audience")
	f.IntVar(&req.GradeLevel, "grade", services.DefaultGradeLevel, "target reading grade level")
	f.StringVar(&req.Language, "language", services.DefaultLanguage, "language of the simplified text")
	f.StringVar(&req.LanguageCode, "language-code", "", "speech language code (default TTS_LANGUAGE)")
	f.BoolVar(&req.Speak, "speak", false, "synthesize speech for the simplified text")
	return cmd
}

func (c *cli) findingsCmd() *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "findings [file|s3://bucket/key]",
		Short: "List the key findings of a report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := c.app.Reports()
			if err != nil {
				return err
			}
			var file string
			if len(args) == 1 {
				file = args[0]
			}

			findings, err := reports.KeyFindings(cmd.Context(), text, file)
			if err != nil {
				return fail(cmd, err)
			}
			if c.jsonOut {
				return writeJSON(cmd.OutOrStdout(), map[string]string{"key_findings": findings})
			}
			fmt.Fprintln(cmd.OutOrStdout(), findings)
			return nil
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "report text, used instead of a file")
	return cmd
}
