package probe

import (
	"context"
	"time"
)

// Checker is a single readiness dependency check. Check returns nil when the
// dependency can serve traffic.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// Result is the outcome of one checker run.
type Result struct {
	Name string
	Err  error
}

// Registry holds the set of checkers consulted by the readiness endpoint.
// Checkers are registered once at startup; Run may be called concurrently.
type Registry struct {
	checkers []Checker
	timeout  time.Duration
}

// NewRegistry creates a registry whose checks each run under the given
// timeout. An empty registry is valid: Run reports ready.
func NewRegistry(timeout time.Duration) *Registry {
	return &Registry{timeout: timeout}
}

func (r *Registry) Register(c Checker) {
	r.checkers = append(r.checkers, c)
}

// Run executes every checker sequentially, each under its own timeout, and
// reports whether all passed. The per-check Results are returned in
// registration order so callers can surface individual failures.
func (r *Registry) Run(ctx context.Context) (bool, []Result) {
	ready := true
	results := make([]Result, 0, len(r.checkers))

	for _, c := range r.checkers {
		checkCtx, cancel := context.WithTimeout(ctx, r.timeout)
		err := c.Check(checkCtx)
		cancel()

		if err != nil {
			ready = false
		}
		results = append(results, Result{Name: c.Name(), Err: err})
	}

	return ready, results
}
