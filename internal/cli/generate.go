package cli

import (
	"github.com/spf13/cobra"
)

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Write attributions.json from Podfile.lock and installed pod licenses",
		Long: `Generate reads Podfile.lock in the project directory, looks up Pods/<name>/LICENSE
for every top-level pod, and replaces attributions.json with the result.

Pods without a readable license file are left out of the report.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd)
		},
	}
}

func (c *CLI) runGenerate(cmd *cobra.Command) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	opts, err := c.pipelineOptions()
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	result, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		return err
	}
	prog.done("Generated attributions")

	printSuccess("Wrote %d attributions", len(result.Dependencies))
	printFile(result.Output)
	if n := len(result.Parse.Unlicensed); n > 0 {
		printWarning("Skipped %d pods without a license file", n)
		printDetail("Run with --verbose to list them")
	}
	return nil
}
