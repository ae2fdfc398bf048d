package engine

import (
	"fmt"
	"iter"
	"reflect"
	"runtime/debug"
)

var (
	errorType  = reflect.TypeOf((*error)(nil)).Elem()
	stringType = reflect.TypeOf("")
)

// Invocation is the raw result of calling a test method once. Exactly one of
// Value and Err is meaningful.
type Invocation struct {
	Index int
	Arg   string
	Value any
	Err   error // *InvocationFailure
}

// String returns the textual form of the returned value used for comparison.
func (inv Invocation) String() string {
	return fmt.Sprint(inv.Value)
}

// Invocations calls d once per param, or once without arguments when d has
// no params. Calls happen lazily as the sequence is ranged over, so a caller
// that stops early prevents the remaining elements from being invoked.
// The sequence always ends after the first failed invocation.
func Invocations(d *Descriptor) iter.Seq2[int, Invocation] {
	return func(yield func(int, Invocation) bool) {
		if len(d.Params) == 0 {
			yield(0, invoke(d, 0, nil))
			return
		}
		for i, param := range d.Params {
			inv := invoke(d, i, []string{param})
			if !yield(i, inv) || inv.Err != nil {
				return
			}
		}
	}
}

func invoke(d *Descriptor, index int, args []string) (inv Invocation) {
	inv.Index = index
	if len(args) > 0 {
		inv.Arg = args[0]
	}

	if d.Call == nil {
		inv.Err = &InvocationFailure{Method: d.Name, Index: index, Arg: inv.Arg, Cause: ErrMethodNotFound}
		return inv
	}

	defer func() {
		if r := recover(); r != nil {
			failure := &InvocationFailure{
				Method: d.Name,
				Index:  index,
				Arg:    inv.Arg,
				Panic:  r,
				Stack:  debug.Stack(),
			}
			if err, ok := r.(error); ok {
				failure.Cause = err
			}
			inv.Value = nil
			inv.Err = failure
		}
	}()

	value, err := d.Call(args)
	if err != nil {
		inv.Err = &InvocationFailure{Method: d.Name, Index: index, Arg: inv.Arg, Cause: err}
		return inv
	}
	inv.Value = value
	return inv
}

// bind adapts a reflected method value to a Callable. Arguments are checked
// against the method's parameters on every call so a signature mismatch is
// reported as a failed invocation of that test only.
func bind(method reflect.Value) Callable {
	mt := method.Type()
	return func(args []string) (any, error) {
		if mt.IsVariadic() || mt.NumIn() != len(args) {
			return nil, fmt.Errorf("%w: method takes %d argument(s), annotation supplies %d", ErrBadSignature, mt.NumIn(), len(args))
		}

		in := make([]reflect.Value, len(args))
		for i, arg := range args {
			pt := mt.In(i)
			switch {
			case stringType.AssignableTo(pt):
				in[i] = reflect.ValueOf(arg)
			case pt.Kind() == reflect.String:
				in[i] = reflect.ValueOf(arg).Convert(pt)
			default:
				return nil, fmt.Errorf("%w: parameter %d is %s, want string", ErrBadSignature, i+1, pt)
			}
		}

		return splitResults(method.Call(in))
	}
}

// splitResults turns a method's return values into a value and an error. A
// trailing error result is treated as the error; the first remaining result,
// if any, is the value.
func splitResults(out []reflect.Value) (any, error) {
	if n := len(out); n > 0 && out[n-1].Type().Implements(errorType) {
		last := out[n-1]
		if !isNilValue(last) {
			return nil, last.Interface().(error)
		}
		out = out[:n-1]
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0].Interface(), nil
}

func isNilValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
