// Package observability provides hooks for reporting pipeline events.
//
// Libraries call the registered hooks; the application decides what they do.
// The defaults are no-ops, so the pipeline can be used as a library without
// any setup. The CLI installs hooks that turn events into debug log lines.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnParseStart(ctx, lockfile)
//	// ... parse ...
//	observability.Pipeline().OnParseComplete(ctx, lockfile, len(records), duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the attribution pipeline.
type PipelineHooks interface {
	// OnRead records the outcome of reading the lock file.
	OnRead(ctx context.Context, path string, size int, err error)

	// Parse events
	OnParseStart(ctx context.Context, lockfile string)
	OnParseComplete(ctx context.Context, lockfile string, records int, duration time.Duration)

	// OnLicenseMissing records a dependency left out for lack of a license.
	OnLicenseMissing(ctx context.Context, name string)

	// OnWriteComplete records the outcome of writing the report.
	OnWriteComplete(ctx context.Context, path string, records int, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnRead(context.Context, string, int, error)                  {}
func (NoopPipelineHooks) OnParseStart(context.Context, string)                        {}
func (NoopPipelineHooks) OnParseComplete(context.Context, string, int, time.Duration) {}
func (NoopPipelineHooks) OnLicenseMissing(context.Context, string)                    {}
func (NoopPipelineHooks) OnWriteComplete(context.Context, string, int, time.Duration, error) {
}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
