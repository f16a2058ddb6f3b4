package service

import "context"

// StandingCache caches account-standing lookups (Redis in production).
// A miss is not an error: ok=false means the caller must recompute.
type StandingCache interface {
	Get(ctx context.Context, userID string) (good bool, ok bool, err error)
	Set(ctx context.Context, userID string, good bool) error
	Invalidate(ctx context.Context, userID string) error
}
