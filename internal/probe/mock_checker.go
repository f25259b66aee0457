package probe

import "context"

// MockChecker is a hand-written Checker used in unit tests. Set Err to
// simulate an unhealthy dependency.
type MockChecker struct {
	CheckerName string
	Err         error

	// Calls counts Check invocations; useful for asserting the registry
	// actually consulted the checker.
	Calls int
}

func (m *MockChecker) Name() string { return m.CheckerName }

func (m *MockChecker) Check(_ context.Context) error {
	m.Calls++
	return m.Err
}
