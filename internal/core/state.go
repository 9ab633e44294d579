package core

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Call is a single recorded invocation: the target's name and the arguments
// it was invoked with. The outcome is never recorded.
type Call struct {
	Name string
	Args []any
}

// Slice returns the call in its ordered form: the name followed by the args.
func (c Call) Slice() []any {
	out := make([]any, 0, len(c.Args)+1)
	out = append(out, c.Name)

	return append(out, c.Args...)
}

// String renders the call as name(arg, arg, ...).
func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, arg := range c.Args {
		args[i] = fmt.Sprintf("%#v", arg)
	}

	return c.Name + "(" + strings.Join(args, ", ") + ")"
}

// Double stands in for the function registered under Name while
// interception is enabled. Fn must be a func value; it is invoked with the
// intercepted arguments and no receiver.
type Double struct {
	Name string
	Fn   any
}

// NamedFunc pairs a bare callable with the name it is recorded and looked up
// under. Use it when invoking a function that is not a member of anything.
type NamedFunc struct {
	Name string
	Fn   any
}

// State is the interception state an Invoker consults on every call.
// Test setup owns it and replaces it wholesale between cases.
type State struct {
	Enabled bool
	Calls   []Call
	Doubles []Double
}

// clone returns a copy whose slices do not alias s.
func (s State) clone() State {
	return State{
		Enabled: s.Enabled,
		Calls:   cloneCalls(s.Calls),
		Doubles: append([]Double(nil), s.Doubles...),
	}
}

// Named returns a NamedFunc for fn.
func Named(name string, fn any) NamedFunc {
	return NamedFunc{Name: name, Fn: fn}
}

// cloneCalls copies calls along with each call's args.
func cloneCalls(calls []Call) []Call {
	if calls == nil {
		return nil
	}

	out := make([]Call, len(calls))
	for i, call := range calls {
		out[i] = Call{Name: call.Name, Args: slices.Clone(call.Args)}
	}

	return out
}

// Exported variables.
var (
	// ErrNotCallable is the failure raised when an invocation target is not a func.
	ErrNotCallable = errors.New("target is not callable")
	// ErrResultType is the failure raised when a typed helper cannot convert a result.
	ErrResultType = errors.New("unexpected result type")
)
