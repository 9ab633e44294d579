// Package core provides the internal implementation of fntest's call
// interception: the Invoker, its State, and the per-test registry.
package core

import (
	"reflect"
	"slices"
	"sync"

	"go.uber.org/zap"
)

// Invoker routes calls through a single entry point so that tests can
// record them and substitute doubles by name.
type Invoker struct {
	mu     sync.Mutex // Protects state
	state  State
	logger *zap.Logger
}

// Calls returns a snapshot of the recorded calls, oldest first.
func (inv *Invoker) Calls() []Call {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	return cloneCalls(inv.state.Calls)
}

// Disable turns interception off. Recorded calls and doubles are kept.
func (inv *Invoker) Disable() {
	inv.mu.Lock()
	inv.state.Enabled = false
	inv.mu.Unlock()
}

// Enable turns interception on.
func (inv *Invoker) Enable() {
	inv.mu.Lock()
	inv.state.Enabled = true
	inv.mu.Unlock()
}

// Enabled reports whether interception is on.
func (inv *Invoker) Enabled() bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	return inv.state.Enabled
}

// Invoke calls the target identified by context and member with args, and
// returns whatever the executed function returned.
//
// If member is non-empty the target is the method, func field, or map entry
// of that name on context, and methods keep context as their receiver. If
// member is empty, context itself is the target (a func or a NamedFunc).
//
// While interception is enabled the call is recorded under the target's
// name, and the first Double registered under that name runs in place of
// the target. Doubles never receive the original receiver.
//
// Invoke panics with an error wrapping ErrNotCallable if the target is not a
// func. Results, returned errors, and panics of the executed function pass
// through untouched; returned channels are not awaited.
func (inv *Invoker) Invoke(context any, member string, args ...any) []any {
	tgt, err := resolve(context, member)
	if err != nil {
		panic(err)
	}

	return callFunc(inv.intercept(tgt, args), args)
}

// Reset replaces the interception state wholesale.
func (inv *Invoker) Reset(state State) {
	inv.mu.Lock()
	inv.state = state.clone()
	inv.mu.Unlock()
}

// State returns a snapshot of the interception state.
func (inv *Invoker) State() State {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	return inv.state.clone()
}

// intercept applies the interception state to a resolved target and returns
// the function that should actually run.
func (inv *Invoker) intercept(tgt target, args []any) reflect.Value {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if !inv.state.Enabled {
		return tgt.fn
	}

	inv.state.Calls = append(inv.state.Calls, Call{Name: tgt.name, Args: slices.Clone(args)})

	for _, double := range inv.state.Doubles {
		if double.Name != tgt.name {
			continue
		}

		substitute, err := checkFunc(double.Name, reflect.ValueOf(double.Fn))
		if err != nil {
			panic(err)
		}

		inv.logger.Debug("substituting double",
			zap.String("name", tgt.name),
			zap.Int("args", len(args)),
			zap.Int("recorded", len(inv.state.Calls)))

		return substitute.fn
	}

	inv.logger.Debug("no double registered, calling target",
		zap.String("name", tgt.name),
		zap.Int("args", len(args)),
		zap.Int("recorded", len(inv.state.Calls)))

	return tgt.fn
}

// Option configures an Invoker.
type Option func(*Invoker)

// New creates an Invoker with interception disabled unless WithState says otherwise.
func New(opts ...Option) *Invoker {
	inv := &Invoker{logger: zap.NewNop()}

	for _, opt := range opts {
		opt(inv)
	}

	return inv
}

// WithLogger traces interception decisions at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(inv *Invoker) {
		if logger != nil {
			inv.logger = logger
		}
	}
}

// WithState sets the initial interception state.
func WithState(state State) Option {
	return func(inv *Invoker) {
		inv.state = state.clone()
	}
}
