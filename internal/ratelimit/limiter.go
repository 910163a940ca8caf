package ratelimit

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidLimit is returned by constructors given a negative request
// budget or a non-positive window.
var ErrInvalidLimit = errors.New("invalid rate limit")

// Limiter decides whether a request from key at time now is admitted.
//
// Implementations must apply the prune-count-record sequence atomically
// per key. A non-nil error means no decision could be made.
type Limiter interface {
	Admit(ctx context.Context, key string, now time.Time) (bool, error)
}
