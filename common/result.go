package common

import "fmt"

// Result holds either a value or an error. It is the strict counterpart of
// a (value, error) pair: Unwrap and UnwrapErr panic when called on the
// wrong variant.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// From builds a Result out of a conventional (value, error) return.
func From[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

func (r Result[T]) IsOk() bool {
	return r.ok
}

func (r Result[T]) IsErr() bool {
	return !r.ok
}

// Unwrap returns the success value and panics if r holds an error.
func (r Result[T]) Unwrap() T {
	if !r.ok {
		panic(fmt.Sprintf("called Unwrap on an Err value: %v", r.err))
	}
	return r.value
}

// UnwrapErr returns the error and panics if r holds a value.
func (r Result[T]) UnwrapErr() error {
	if r.ok {
		panic("called UnwrapErr on an Ok value")
	}
	return r.err
}
