// Package logging builds the application logger.
package logging

import (
	"context"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// Name is the root logger name.
const Name = "tasklist"

// Options configures New.
type Options struct {
	// Debug lowers the level to debug. Otherwise only warnings and errors
	// are written.
	Debug bool

	// Output defaults to os.Stderr.
	Output io.Writer
}

// New creates a logger tagged with a fresh session id.
func New(opts Options) hclog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	level := hclog.Warn
	if opts.Debug {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   Name,
		Level:  level,
		Output: out,
	}).With("session", uuid.NewString())
}

// WithLogger returns a context carrying l.
func WithLogger(ctx context.Context, l hclog.Logger) context.Context {
	return hclog.WithContext(ctx, l)
}

// FromContext returns the logger stored in ctx, or a null logger.
func FromContext(ctx context.Context) hclog.Logger {
	if l := hclog.FromContext(ctx); l != nil && l != hclog.Default() {
		return l
	}
	return hclog.NewNullLogger()
}
