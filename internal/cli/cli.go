// Package cli implements the attribute command-line interface.
//
// # Commands
//
//   - attribute (no subcommand) / generate: write attributions.json for the
//     project in the working directory
//   - list: print the licensed dependencies without writing a report
//   - show: summarize an existing report
//   - serve: serve a freshly generated report over HTTP
//   - completion: shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// attached to the command context and handed to the pipeline runner.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/attribute/pkg/buildinfo"
	"github.com/matzehuels/attribute/pkg/config"
	"github.com/matzehuels/attribute/pkg/pipeline"
)

// appName is the application name used for display.
const appName = "attribute"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger  *log.Logger
	project projectFlags
}

// projectFlags locate the project and override configured filenames.
type projectFlags struct {
	dir    string // project directory
	config string // explicit config file
	output string // report filename override
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Running the root command without a subcommand generates the report.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Attribute generates license attributions for CocoaPods projects",
		Long: `Attribute reads Podfile.lock, collects the LICENSE file of every installed pod,
and writes attributions.json for bundling into an application's credits screen.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVarP(&c.project.dir, "dir", "C", ".", "project directory containing Podfile.lock")
	flags.StringVar(&c.project.config, "config", "", "config file (default <dir>/"+config.FileName+" if present)")
	flags.StringVarP(&c.project.output, "output", "o", "", "report filename inside the project directory")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// pipelineOptions resolves the project configuration into runner options.
func (c *CLI) pipelineOptions() (pipeline.Options, error) {
	cfg, err := config.Resolve(c.project.dir, c.project.config)
	if err != nil {
		return pipeline.Options{}, err
	}
	if c.project.output != "" {
		cfg.Output = c.project.output
	}
	opts := pipeline.Options{Dir: c.project.dir, Config: cfg}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return pipeline.Options{}, err
	}
	return opts, nil
}

// newRunner creates a pipeline runner logging through the CLI logger.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}
