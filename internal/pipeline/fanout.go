package pipeline

import (
	"context"

	"github.com/couchcryptid/synop-encoder/internal/domain"
)

// FanOut loads every batch into each loader in order and stops at the first failure.
// Put idempotent loaders first: a failed batch is retried against all of them.
type FanOut []BatchLoader

// NewFanOut skips nil loaders so optional sinks can be passed unconditionally.
func NewFanOut(loaders ...BatchLoader) FanOut {
	f := make(FanOut, 0, len(loaders))
	for _, l := range loaders {
		if l != nil {
			f = append(f, l)
		}
	}
	return f
}

func (f FanOut) LoadBatch(ctx context.Context, events []domain.OutputEvent) error {
	for _, l := range f {
		if err := l.LoadBatch(ctx, events); err != nil {
			return err
		}
	}
	return nil
}
