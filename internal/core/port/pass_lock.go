package port

import "context"

// ReleaseFunc releases a held lock.
type ReleaseFunc func(ctx context.Context) error

// PassLock keeps overlapping runner invocations from processing the same
// rules. Acquire returns ok=false when another holder owns the lock.
type PassLock interface {
	Acquire(ctx context.Context) (release ReleaseFunc, ok bool, err error)
}

// NoopLock always grants the lock. It is used when a single runner is
// guaranteed by deployment.
type NoopLock struct{}

func (NoopLock) Acquire(context.Context) (ReleaseFunc, bool, error) {
	return func(context.Context) error { return nil }, true, nil
}
