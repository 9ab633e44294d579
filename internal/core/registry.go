package core

import (
	"sync"
)

// TestReporter is the minimal interface fntest needs from test frameworks.
// ForTest only keys the registry on it and marks itself as a helper.
type TestReporter interface {
	Helper()
}

// ForTest returns the Invoker for the given test, creating one if needed.
// Multiple calls with the same TestReporter return the same Invoker, so a
// test and the code it exercises share one interception state without a
// package-level singleton.
//
// If the TestReporter supports Cleanup (like *testing.T), the Invoker is
// removed from the registry when the test completes. Options apply only
// when the Invoker is created.
func ForTest(t TestReporter, opts ...Option) *Invoker {
	t.Helper()

	registryMu.Lock()
	defer registryMu.Unlock()

	if inv, ok := registry[t]; ok {
		return inv
	}

	inv := New(opts...)
	registry[t] = inv

	if cr, ok := t.(cleanupRegistrar); ok {
		cr.Cleanup(func() {
			registryMu.Lock()
			delete(registry, t)
			registryMu.Unlock()
		})
	}

	return inv
}

// registered reports whether t currently has an Invoker.
func registered(t TestReporter) bool {
	registryMu.Lock()
	defer registryMu.Unlock()

	_, ok := registry[t]

	return ok
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Package-level registry is intentional for test coordination
	registry = make(map[TestReporter]*Invoker)
	//nolint:gochecknoglobals // Mutex for registry
	registryMu sync.Mutex
)

// cleanupRegistrar is the interface needed for registering cleanup functions.
// This is satisfied by *testing.T and *testing.B.
type cleanupRegistrar interface {
	Cleanup(cleanupFunc func())
}
