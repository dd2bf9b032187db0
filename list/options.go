package list

import (
	"errors"
	"reflect"
)

type Option[T any] func(*List[T])

// WithValidator declares a constraint every inserted value must satisfy.
// Validators accumulate and run in the order they were given.
func WithValidator[T any](validate func(T) error) Option[T] {
	return func(l *List[T]) {
		l.validators = append(l.validators, validate)
	}
}

// NonNil rejects nil pointers, interfaces, maps, slices, channels and functions.
func NonNil[T any]() Option[T] {
	return WithValidator(func(v T) error {
		rv := reflect.ValueOf(&v).Elem()
		switch rv.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			if rv.IsNil() {
				return errNilValue
			}
		}
		return nil
	})
}

// WithOrdering names the ordering implemented by the comparator. Lists declaring
// the same name can be merged even when built from distinct comparator values.
func WithOrdering[T any](name string) Option[T] {
	return func(l *List[T]) {
		l.ordering = name
	}
}

var errNilValue = errors.New("nil values are not permitted")
