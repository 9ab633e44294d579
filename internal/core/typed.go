package core

import (
	"fmt"
	"reflect"
)

// InvokeAs invokes through inv and returns the first result as R.
// A nil result converts to the zero value of R.
func InvokeAs[R any](inv *Invoker, context any, member string, args ...any) R {
	out := inv.Invoke(context, member, args...)

	return resultAs[R](out, 0)
}

// InvokeAs2 invokes through inv and returns the first two results, typically
// a value and an error.
func InvokeAs2[R1, R2 any](inv *Invoker, context any, member string, args ...any) (R1, R2) {
	out := inv.Invoke(context, member, args...)

	return resultAs[R1](out, 0), resultAs[R2](out, 1)
}

func resultAs[R any](out []any, index int) R {
	var zero R

	if index >= len(out) {
		panic(fmt.Errorf("%w: wanted result %d but the call returned %d", ErrResultType, index, len(out)))
	}

	if out[index] == nil {
		return zero
	}

	val, ok := out[index].(R)
	if !ok {
		panic(fmt.Errorf("%w: result %d: expected %v, got %T",
			ErrResultType, index, reflect.TypeFor[R](), out[index]))
	}

	return val
}
