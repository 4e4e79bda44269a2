package mainerror

import (
	"errors"
	"fmt"
	"reflect"
)

// From converts any error into *Error.
//
// Behavior:
//   - nil input => nil output, including a nil pointer, map, slice, func or
//     chan stored in err (a typed nil such as a nil *os.PathError)
//   - if err is already *Error and no opts are given => returned as-is (same pointer)
//   - if err is already *Error and opts are given => a copy with opts applied;
//     the original is left unchanged
//   - otherwise err is boxed with the default options, then opts are applied
func From[E error](err E, opts ...Option) *Error {
	var plain error = err
	if isNil(plain) {
		return nil
	}

	if e, ok := plain.(*Error); ok {
		if len(opts) == 0 {
			return e
		}

		c := *e
		for _, o := range opts {
			o(&c)
		}

		return &c
	}

	e := &Error{
		err:      plain,
		marker:   DefaultCauseMarker,
		maxDepth: DefaultMaxDepth,
	}
	for _, o := range opts {
		o(e)
	}

	return e
}

// FromText boxes a plain message as an error with no cause.
func FromText[S ~string](msg S, opts ...Option) *Error {
	return From(errors.New(string(msg)), opts...)
}

// Errorf formats according to fmt.Errorf and boxes the result.
// Every %w operand joins the cause chain.
func Errorf(format string, args ...any) *Error {
	return From(fmt.Errorf(format, args...))
}

func isNil(err error) bool {
	if err == nil {
		return true
	}

	switch v := reflect.ValueOf(err); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
