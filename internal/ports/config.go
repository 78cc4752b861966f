package ports

import (
	"context"

	"github.com/alexisbeaulieu97/reszplay/internal/playground"
)

// ConfigLoader loads playground documents from an external source such as
// the filesystem. Implementations respect context cancellation and return
// the typed errors of pkg/errors (ParseError, ValidationError) wrapped with
// %w so callers can use errors.As.
type ConfigLoader interface {
	// Load parses and validates the document at path and returns the
	// configuration it describes on top of the defaults.
	Load(ctx context.Context, path string) (playground.Config, error)

	// Validate checks the document without building a configuration.
	Validate(ctx context.Context, path string) error
}
