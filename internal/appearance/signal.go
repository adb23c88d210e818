package appearance

import (
	"context"
	"sync"
	"time"
)

// signal is a once-shot barrier: the pipeline registers it, a transport
// callback fires it, and the waiter deregisters it afterwards. Firing more
// than once is harmless.
type signal struct {
	once sync.Once
	ch   chan struct{}
}

func newSignal() *signal {
	return &signal{ch: make(chan struct{})}
}

func (s *signal) fire() {
	s.once.Do(func() { close(s.ch) })
}

// wait blocks until the signal fires, the timeout lapses, or ctx is
// cancelled. It reports whether the signal actually fired.
func (s *signal) wait(ctx context.Context, timeout time.Duration) bool {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-s.ch:
		return true
	case <-timer.C:
		return false
	case <-ctx.Done():
		return false
	}
}
