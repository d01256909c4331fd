package result

// Result holds either a successful value or a classified failure.
// The zero Result is a success carrying the zero value of T.
type Result[T any] struct {
	value T
	err   *Error
}

// Success wraps a value.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Failure wraps a classified error. A nil err is treated as an unclassified failure.
func Failure[T any](err *Error) Result[T] {
	if err == nil {
		err = &Error{Kind: KindUnclassified, Message: defaultMessage}
	}
	return Result[T]{err: err}
}

// Ok reports whether the result is a success.
func (r Result[T]) Ok() bool {
	return r.err == nil
}

// Value returns the success value, or the zero value on failure.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the failure, or nil on success.
func (r Result[T]) Err() *Error {
	return r.err
}

// Unwrap converts the result into Go's (value, error) pair.
func (r Result[T]) Unwrap() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}
