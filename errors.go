package dynarray

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrInvalidArgument is returned for absent values, negative counts and
	// capacities below the current one.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIndexOutOfRange is returned when an index falls outside [0, size).
	ErrIndexOutOfRange = errors.New("index out of range")
)

func invalidArgument(op, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), ErrInvalidArgument)
}

func indexOutOfRange(op string, index, size int) error {
	return fmt.Errorf("%s: index %d not in [0, %d): %w", op, index, size, ErrIndexOutOfRange)
}

// checkValue rejects values an Array must not hold: absent values, and
// dynamic types that panic under ==.
func checkValue[T comparable](op string, v T) error {
	if isAbsent(v) {
		return invalidArgument(op, "value is nil")
	}
	if t := reflect.TypeOf(v); !t.Comparable() {
		return invalidArgument(op, "value of type %s is not comparable", t)
	}
	return nil
}

// isAbsent reports whether v is a nil pointer, channel or interface. When T is
// an interface type, a nil map, slice or func held in it is absent as well.
func isAbsent[T comparable](v T) bool {
	if any(v) == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Chan, reflect.Interface, reflect.UnsafePointer,
		reflect.Map, reflect.Slice, reflect.Func:
		return rv.IsNil()
	}
	return false
}
