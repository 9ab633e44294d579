// Package match provides matchers over fntest's recorded calls.
// The call matchers satisfy gomega.GomegaMatcher:
//
//	import (
//	    . "github.com/onsi/gomega"
//	    "github.com/toejough/fntest/match"
//	)
//
//	g.Expect(inv.Calls()).To(match.HaveCall("GetUserByEmail", match.BeAny))
package match

import (
	"errors"
	"fmt"
	"strings"

	"github.com/toejough/fntest/internal/core"
)

// errTypeMismatch is a sentinel error for type assertion failures.
var errTypeMismatch = errors.New("type mismatch")

// Matcher defines the interface for flexible value matching.
// Compatible with gomega.GomegaMatcher via duck typing - any type
// implementing Match and FailureMessage will work.
type Matcher interface {
	Match(actual any) (success bool, err error)
	FailureMessage(actual any) string
}

// BeAny is a matcher that matches any value.
// Useful when you don't care about a particular argument.
//
//nolint:gochecknoglobals // Intentional exported constant-like value
var BeAny Matcher = anyMatcher{}

// CallMatcher matches a list of recorded calls containing a particular call.
// It satisfies gomega's GomegaMatcher.
type CallMatcher struct {
	name    string
	args    []any
	anyArgs bool
}

// FailureMessage describes why no recorded call matched.
func (m *CallMatcher) FailureMessage(actual any) string {
	calls, err := recordedCalls(actual)
	if err != nil {
		return err.Error()
	}

	return fmt.Sprintf("expected a call %s among:\n%s", m.describe(), render(calls))
}

// Match succeeds when actual holds a call with the expected name and args.
// actual may be a []fntest.Call or anything with a Calls() []fntest.Call
// method, such as an Invoker.
func (m *CallMatcher) Match(actual any) (bool, error) {
	calls, err := recordedCalls(actual)
	if err != nil {
		return false, err
	}

	for _, call := range calls {
		if call.Name != m.name {
			continue
		}

		if m.anyArgs || core.MatchArgs(call.Args, m.args) == nil {
			return true, nil
		}
	}

	return false, nil
}

// NegatedFailureMessage describes the unexpected match.
func (m *CallMatcher) NegatedFailureMessage(actual any) string {
	calls, err := recordedCalls(actual)
	if err != nil {
		return err.Error()
	}

	return fmt.Sprintf("expected no call %s among:\n%s", m.describe(), render(calls))
}

func (m *CallMatcher) describe() string {
	if m.anyArgs {
		return m.name + "(...)"
	}

	return core.Call{Name: m.name, Args: m.args}.String()
}

// HaveCall returns a matcher for a recorded call named name whose args match
// args. Each arg is compared with reflect.DeepEqual unless it is itself a
// matcher.
func HaveCall(name string, args ...any) *CallMatcher {
	return &CallMatcher{name: name, args: args}
}

// HaveCallNamed returns a matcher for a recorded call named name, whatever
// its args.
func HaveCallNamed(name string) *CallMatcher {
	return &CallMatcher{name: name, anyArgs: true}
}

// Satisfy returns a matcher that uses a predicate function to check for a match.
// The predicate should return nil if the value matches, or an error describing
// the mismatch if it does not.
//
// Example:
//
//	g.Expect(inv.Calls()).To(match.HaveCall("InsertUser", "e@x.com", match.BeAny, match.Satisfy(func(hash string) error {
//	    if hash == "" { return errors.New("empty hash") }
//	    return nil
//	})))
func Satisfy[T any](predicate func(T) error) Matcher {
	return &satisfyMatcher[T]{predicate: predicate}
}

// anyMatcher is the implementation of the BeAny matcher.
type anyMatcher struct{}

// FailureMessage returns an empty string since BeAny always matches.
func (anyMatcher) FailureMessage(any) string {
	return ""
}

// Match always returns true - matches any value.
func (anyMatcher) Match(any) (bool, error) {
	return true, nil
}

type callLister interface {
	Calls() []core.Call
}

type satisfyMatcher[T any] struct {
	predicate func(T) error
	lastErr   error
}

func (m *satisfyMatcher[T]) FailureMessage(actual any) string {
	if m.lastErr != nil {
		return fmt.Sprintf("value %v does not satisfy predicate: %v", actual, m.lastErr)
	}

	return fmt.Sprintf("value %v does not satisfy predicate", actual)
}

func (m *satisfyMatcher[T]) Match(actual any) (bool, error) {
	val, ok := actual.(T)

	if !ok {
		return false, fmt.Errorf("%w: expected %T, got %T", errTypeMismatch, *new(T), actual)
	}

	m.lastErr = m.predicate(val)

	return m.lastErr == nil, nil
}

func recordedCalls(actual any) ([]core.Call, error) {
	switch calls := actual.(type) {
	case []core.Call:
		return calls, nil
	case callLister:
		return calls.Calls(), nil
	default:
		return nil, fmt.Errorf("%w: expected recorded calls, got %T", errTypeMismatch, actual)
	}
}

func render(calls []core.Call) string {
	if len(calls) == 0 {
		return "  (no calls recorded)"
	}

	lines := make([]string, len(calls))
	for i, call := range calls {
		lines[i] = "  " + call.String()
	}

	return strings.Join(lines, "\n")
}
