package runner

import (
	"context"
	"sync"
)

// Recorder is a Runner that records invocations instead of executing them.
// It is used by tests of the stages that drive external tools.
type Recorder struct {
	mu    sync.Mutex
	calls []Command

	// Handler, if set, is called for every invocation and its error is
	// returned. It may simulate the tool's side effects on disk.
	Handler func(cmd Command) error
}

// Run records cmd and delegates to Handler.
func (r *Recorder) Run(_ context.Context, cmd Command) error {
	r.mu.Lock()
	r.calls = append(r.calls, cmd)
	handler := r.Handler
	r.mu.Unlock()

	if handler != nil {
		return handler(cmd)
	}
	return nil
}

// Calls returns a copy of the recorded invocations in order.
func (r *Recorder) Calls() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Command, len(r.calls))
	copy(out, r.calls)
	return out
}
