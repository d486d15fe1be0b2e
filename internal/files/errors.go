package files

import (
	"context"
	"errors"
	"fmt"

	"github.com/JustJay7/court-viewer/internal/upstream"
)

var (
	// ErrNotFound means the provider answered but the file or appearance is absent.
	ErrNotFound = errors.New("not found")
	// ErrUpstream wraps any provider failure. It is never cached.
	ErrUpstream = errors.New("upstream provider failure")
	// ErrInvalidInput rejects requests before any provider call is made.
	ErrInvalidInput = errors.New("invalid input")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// classify maps a provider error onto the service's error taxonomy.
func (s *Service) classify(ctx context.Context, operation string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if upstream.IsNotFound(err) {
		return fmt.Errorf("%s: %w", operation, ErrNotFound)
	}
	s.logger.Error("Upstream call failed", "operation", operation, "error", err)
	return fmt.Errorf("%s: %w: %w", operation, ErrUpstream, err)
}
