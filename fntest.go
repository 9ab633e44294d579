// Package fntest provides call interception for unit tests.
// Code under test invokes its collaborators through an Invoker; tests turn
// interception on to record those calls and to substitute doubles by name.
//
// This is the public API entry point. Implementation lives in internal/core.
package fntest

import (
	"go.uber.org/zap"

	"github.com/toejough/fntest/internal/core"
)

// Call is a single recorded invocation.
type Call = core.Call

// Double stands in for the function registered under its name.
type Double = core.Double

// Invoker routes calls through a single entry point.
type Invoker = core.Invoker

// Matcher defines the interface for flexible value matching.
type Matcher = core.Matcher

// NamedFunc pairs a bare callable with the name it is recorded under.
type NamedFunc = core.NamedFunc

// Option configures an Invoker.
type Option = core.Option

// State is the interception state an Invoker consults on every call.
type State = core.State

// TestReporter is the minimal interface fntest needs from test frameworks.
type TestReporter = core.TestReporter

// ForTest returns the Invoker for the given test, creating one if needed.
func ForTest(t TestReporter, opts ...Option) *Invoker {
	t.Helper()

	return core.ForTest(t, opts...)
}

// InvokeAs invokes through inv and returns the first result as R.
func InvokeAs[R any](inv *Invoker, context any, member string, args ...any) R {
	return core.InvokeAs[R](inv, context, member, args...)
}

// InvokeAs2 invokes through inv and returns the first two results.
func InvokeAs2[R1, R2 any](inv *Invoker, context any, member string, args ...any) (R1, R2) {
	return core.InvokeAs2[R1, R2](inv, context, member, args...)
}

// MatchArgs checks recorded args against expected values or matchers.
func MatchArgs(actual, expected []any) error {
	return core.MatchArgs(actual, expected)
}

// MatchValue checks if actual matches expected.
func MatchValue(actual, expected any) (bool, string) {
	return core.MatchValue(actual, expected)
}

// Named returns a NamedFunc for fn.
func Named(name string, fn any) NamedFunc {
	return core.Named(name, fn)
}

// New creates an Invoker.
func New(opts ...Option) *Invoker {
	return core.New(opts...)
}

// WithLogger traces interception decisions at debug level.
func WithLogger(logger *zap.Logger) Option {
	return core.WithLogger(logger)
}

// WithState sets the initial interception state.
func WithState(state State) Option {
	return core.WithState(state)
}

// Exported variables.
var (
	ErrNotCallable = core.ErrNotCallable
	ErrResultType  = core.ErrResultType
)
