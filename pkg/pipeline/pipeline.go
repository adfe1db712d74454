// Package pipeline runs the attribution pipeline: read the lock file, parse
// it into licensed dependencies, and write the report.
//
// # Architecture
//
// The stages run strictly in sequence:
//
//  1. Read: load <dir>/Podfile.lock
//  2. Parse: extract entries and resolve each license through a lookup
//  3. Write: replace <dir>/attributions.json with the JSON report
//
// A failing read or write ends the run with a coded error from
// [github.com/matzehuels/attribute/pkg/errors]. Dependencies without a
// license are left out and only reported through logging and hooks.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Dir: "."})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(len(result.Dependencies), "dependencies written to", result.Output)
//
// Use [Runner.Collect] to stop after parsing without touching the report.
package pipeline

import (
	"path/filepath"
	"time"

	"github.com/matzehuels/attribute/pkg/config"
	"github.com/matzehuels/attribute/pkg/deps"
	"github.com/matzehuels/attribute/pkg/deps/cocoapods"
)

// Options configures a pipeline run.
type Options struct {
	Dir    string             // Project directory (default ".")
	Config config.Config      // File layout; zero fields take defaults
	Lookup deps.LicenseLookup // License source (default: pods directory from Config)
}

// ValidateAndSetDefaults fills in defaults and validates the configuration.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Dir == "" {
		o.Dir = "."
	}
	o.Config = o.Config.WithDefaults()
	if err := o.Config.Validate(); err != nil {
		return err
	}
	if o.Lookup == nil {
		o.Lookup = cocoapods.NewPodsDir(o.Dir, o.Config.PodsDir, o.Config.LicenseFiles...)
	}
	return nil
}

// LockfilePath returns the lock file location.
func (o Options) LockfilePath() string {
	return filepath.Join(o.Dir, o.Config.WithDefaults().Lockfile)
}

// OutputPath returns the report location.
func (o Options) OutputPath() string {
	return filepath.Join(o.Dir, o.Config.WithDefaults().Output)
}

// Result holds the outcome of a pipeline run.
type Result struct {
	Dependencies []deps.Dependency    // Licensed dependencies in lock-file order
	Lockfile     string               // Path of the lock file read
	Output       string               // Path of the report written, empty for Collect
	Parse        cocoapods.ParseStats // Skipped and unlicensed entries
	Stats        Stats
}

// Stats contains stage timings.
type Stats struct {
	ReadTime  time.Duration
	ParseTime time.Duration
	WriteTime time.Duration
}
