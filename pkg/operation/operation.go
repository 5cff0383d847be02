// Package operation implements the file rewriting operations behind the
// retouch commands.
package operation

import (
	"context"

	"github.com/rs/zerolog"
)

// Operation is a single runnable unit of work
type Operation interface {
	// Name returns the operation name for logging
	Name() string

	// Execute runs the operation
	Execute(ctx context.Context) error
}

// Run executes an operation with its name attached to the context logger
func Run(ctx context.Context, op Operation) error {
	logger := zerolog.Ctx(ctx).With().Str("operation", op.Name()).Logger()
	return op.Execute(logger.WithContext(ctx))
}
