package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/attribute/pkg/deps/cocoapods"
	"github.com/matzehuels/attribute/pkg/io"
	"github.com/matzehuels/attribute/pkg/observability"
)

// Runner executes the pipeline and reports progress to its logger.
// It holds no per-run state and may be reused.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute reads and parses the lock file, then writes the report.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	result, err := r.Collect(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	path := opts.OutputPath()

	start := time.Now()
	err = io.ExportReport(result.Dependencies, path)
	result.Stats.WriteTime = time.Since(start)
	hooks.OnWriteComplete(ctx, path, len(result.Dependencies), result.Stats.WriteTime, err)
	if err != nil {
		return nil, err
	}
	result.Output = path

	r.Logger.Info("wrote attributions",
		"path", path,
		"dependencies", len(result.Dependencies),
		"duration", result.Stats.WriteTime)

	return result, nil
}

// Collect reads and parses the lock file without writing a report.
func (r *Runner) Collect(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	result := &Result{Lockfile: opts.LockfilePath()}

	start := time.Now()
	text, err := cocoapods.ReadLockfile(opts.Dir, opts.Config.Lockfile)
	result.Stats.ReadTime = time.Since(start)
	hooks.OnRead(ctx, result.Lockfile, len(text), err)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("read lock file", "path", result.Lockfile, "bytes", len(text))

	hooks.OnParseStart(ctx, result.Lockfile)
	start = time.Now()
	result.Dependencies, result.Parse = cocoapods.ParseDetailed(text, opts.Lookup)
	result.Stats.ParseTime = time.Since(start)

	for _, name := range result.Parse.Unlicensed {
		hooks.OnLicenseMissing(ctx, name)
		r.Logger.Debug("no license found, skipping", "dependency", name)
	}
	hooks.OnParseComplete(ctx, result.Lockfile, len(result.Dependencies), result.Stats.ParseTime)

	r.Logger.Info("parsed dependencies",
		"entries", result.Parse.Candidates,
		"licensed", len(result.Dependencies),
		"unlicensed", len(result.Parse.Unlicensed),
		"skipped", result.Parse.Skipped,
		"duration", result.Stats.ParseTime)

	return result, nil
}
