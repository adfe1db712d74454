package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/attribute/pkg/io"
)

// showCommand creates the show command.
func (c *CLI) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [report]",
		Short: "Summarize an existing attributions report",
		Long: `Show reads an attributions report and prints each dependency with its version.
Without an argument the project's configured report is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			} else {
				opts, err := c.pipelineOptions()
				if err != nil {
					return err
				}
				path = opts.OutputPath()
			}

			ds, err := pkgio.ImportReport(path)
			if err != nil {
				return fmt.Errorf("read report: %w", err)
			}

			if len(ds) == 0 {
				printInfo("No attributions in report")
				printFile(path)
				return nil
			}

			printSuccess("%d attributions", len(ds))
			printFile(path)
			for _, d := range ds {
				printKeyValue(d.Name, d.Version)
			}
			return nil
		},
	}
}
