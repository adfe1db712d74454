package cli

import (
	"github.com/spf13/cobra"
)

// listCommand creates the list command.
func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the licensed pods without writing a report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.pipelineOptions()
			if err != nil {
				return err
			}

			result, err := c.newRunner().Collect(cmd.Context(), opts)
			if err != nil {
				return err
			}

			renderDependencyTable(cmd.OutOrStdout(), result.Dependencies)
			for _, name := range result.Parse.Unlicensed {
				printWarning("%s has no license file", name)
			}
			return nil
		},
	}
}
