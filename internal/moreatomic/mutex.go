package moreatomic

import (
	"context"
)

// CtxMutex is a mutex whose Lock respects context cancellation. The
// session package uses one to guard its shared command.Bundler so that a caller
// waiting to start a new bundle can give up instead of blocking forever
// behind a caller that never calls bundle_end.
type CtxMutex struct {
	mut chan struct{}
}

func NewCtxMutex() *CtxMutex {
	return &CtxMutex{
		mut: make(chan struct{}, 1),
	}
}

func (m *CtxMutex) Lock(ctx context.Context) error {
	select {
	case m.mut <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryUnlock returns true if the mutex has been unlocked.
func (m *CtxMutex) TryUnlock() bool {
	select {
	case <-m.mut:
		return true
	default:
		return false
	}
}

func (m *CtxMutex) Unlock() {
	select {
	case <-m.mut:
		// return
	default:
		panic("Unlock of already unlocked mutex.")
	}
}
