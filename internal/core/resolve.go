package core

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// target is a resolved invocation target.
type target struct {
	name string
	fn   reflect.Value
}

// callFunc invokes fn with args, converting nil args to the zero value of
// the corresponding parameter. Type and arity mismatches panic exactly as a
// direct reflective call would.
func callFunc(fn reflect.Value, args []any) []any {
	fnType := fn.Type()
	in := make([]reflect.Value, len(args))

	for index, arg := range args {
		if arg != nil {
			in[index] = reflect.ValueOf(arg)

			continue
		}

		paramType := paramTypeAt(fnType, index)
		if paramType == nil {
			paramType = anyType
		}

		in[index] = reflect.Zero(paramType)
	}

	out := fn.Call(in)
	results := make([]any, len(out))

	for index, value := range out {
		results[index] = value.Interface()
	}

	return results
}

// checkFunc returns a target for value if it holds a non-nil func.
func checkFunc(name string, value reflect.Value) (target, error) {
	if value.Kind() == reflect.Interface && !value.IsNil() {
		value = value.Elem()
	}

	if value.Kind() != reflect.Func {
		return target{}, fmt.Errorf("%w: %q is %s", ErrNotCallable, name, describe(value))
	}

	if value.IsNil() {
		return target{}, fmt.Errorf("%w: %q is a nil func", ErrNotCallable, name)
	}

	return target{name: name, fn: value}, nil
}

func describe(value reflect.Value) string {
	if !value.IsValid() {
		return "nil"
	}

	return "a " + value.Type().String()
}

// funcName derives a short name from a func's runtime symbol:
// "example.com/pkg.createUser" becomes "createUser" and a method value
// "example.com/pkg.(*Service).Get-fm" becomes "Get".
func funcName(fn reflect.Value) string {
	info := runtime.FuncForPC(fn.Pointer())
	if info == nil {
		return ""
	}

	name := strings.TrimSuffix(info.Name(), "-fm")
	name = strings.TrimSuffix(name, "[...]")

	if slash := strings.LastIndex(name, "/"); slash >= 0 {
		name = name[slash+1:]
	}

	if dot := strings.LastIndex(name, "."); dot >= 0 {
		name = name[dot+1:]
	}

	return name
}

func paramTypeAt(fnType reflect.Type, index int) reflect.Type {
	last := fnType.NumIn() - 1

	if fnType.IsVariadic() && index >= last {
		return fnType.In(last).Elem()
	}

	if index <= last {
		return fnType.In(index)
	}

	return nil
}

// resolve finds the function an invocation targets.
//
// With a member, the lookup order is: a method on context (bound to it), an
// exported func-typed struct field, then a string-keyed map entry. Without a
// member, context is itself the callable.
func resolve(context any, member string) (target, error) {
	if member == "" {
		return resolveBare(context)
	}

	value := reflect.ValueOf(context)
	if !value.IsValid() {
		return target{}, fmt.Errorf("%w: %q looked up on a nil context", ErrNotCallable, member)
	}

	if method := value.MethodByName(member); method.IsValid() {
		return target{name: member, fn: method}, nil
	}

	holder := value
	for (holder.Kind() == reflect.Pointer || holder.Kind() == reflect.Interface) && !holder.IsNil() {
		holder = holder.Elem()
	}

	switch holder.Kind() {
	case reflect.Struct:
		if structField, ok := holder.Type().FieldByName(member); ok && structField.IsExported() {
			field, err := holder.FieldByIndexErr(structField.Index)
			if err != nil {
				return target{}, fmt.Errorf("%w: %q: %w", ErrNotCallable, member, err)
			}

			if field.CanInterface() {
				return checkFunc(member, field)
			}
		}
	case reflect.Map:
		keyType := holder.Type().Key()
		if keyType.Kind() == reflect.String {
			entry := holder.MapIndex(reflect.ValueOf(member).Convert(keyType))
			if entry.IsValid() {
				return checkFunc(member, entry)
			}
		}
	default:
	}

	return target{}, fmt.Errorf("%w: %T has no member %q", ErrNotCallable, context, member)
}

func resolveBare(context any) (target, error) {
	if named, ok := context.(NamedFunc); ok {
		return checkFunc(named.Name, reflect.ValueOf(named.Fn))
	}

	value := reflect.ValueOf(context)
	if value.Kind() != reflect.Func || value.IsNil() {
		return checkFunc(fmt.Sprintf("%T", context), value)
	}

	return target{name: funcName(value), fn: value}, nil
}

// unexported variables.
var (
	//nolint:gochecknoglobals // reflect type constant
	anyType = reflect.TypeFor[any]()
)
