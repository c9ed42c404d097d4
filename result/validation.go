package result

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrSuccessOnFail is the panic value of [Validation.Success] on a failure.
	ErrSuccessOnFail = errors.New("validation: success on fail value")

	// ErrFailOnSuccess is the panic value of [Validation.Fail] on a success.
	ErrFailOnSuccess = errors.New("validation: fail on success value")

	// ErrAbsentSuccess is the panic value of [Success] when given an untyped nil.
	ErrAbsentSuccess = errors.New("validation: success value must not be nil")
)

// Validation holds either a failure of type E or a success of type T.
// The zero value is a failure holding the zero E.
type Validation[E, T any] struct {
	err   E
	value T
	ok    bool
}

// Success returns a succeeding validation holding t.
// An untyped nil (a nil interface T) is rejected with a panic; model
// absent-but-valid results with an explicit wrapper instead. Typed nil
// pointers, slices and maps are values like any other.
func Success[E, T any](t T) Validation[E, T] {
	if isAbsent(t) {
		panic(ErrAbsentSuccess)
	}
	return Pure[E](t)
}

// Pure returns a succeeding validation holding t without any check. Rules use
// it to pass their input through unchanged, whatever it is.
func Pure[E, T any](t T) Validation[E, T] {
	return Validation[E, T]{value: t, ok: true}
}

// Fail returns a failing validation holding e.
func Fail[E, T any](e E) Validation[E, T] {
	return Validation[E, T]{err: e}
}

// Condition returns Success(t) when c holds, Fail(e) otherwise.
func Condition[E, T any](c bool, e E, t T) Validation[E, T] {
	if c {
		return Success[E](t)
	}
	return Fail[E, T](e)
}

// IsSuccess reports whether v holds a success value.
func (v Validation[E, T]) IsSuccess() bool {
	return v.ok
}

// IsFail reports whether v holds a failure value.
func (v Validation[E, T]) IsFail() bool {
	return !v.ok
}

// Success returns the success value. It panics with [ErrSuccessOnFail]
// when v is a failure.
func (v Validation[E, T]) Success() T {
	if !v.ok {
		panic(ErrSuccessOnFail)
	}
	return v.value
}

// Fail returns the failure value. It panics with [ErrFailOnSuccess]
// when v is a success.
func (v Validation[E, T]) Fail() E {
	if v.ok {
		panic(ErrFailOnSuccess)
	}
	return v.err
}

// Get returns the success value and true, or the zero T and false.
func (v Validation[E, T]) Get() (T, bool) {
	return v.value, v.ok
}

func (v Validation[E, T]) String() string {
	if v.ok {
		return fmt.Sprintf("Success(%v)", v.value)
	}
	return fmt.Sprintf("Fail(%v)", v.err)
}

func isAbsent(t any) bool {
	return reflect.ValueOf(t).Kind() == reflect.Invalid
}
