package parser

// Outcome holds either a value or the error that prevented producing it. CST nodes keep their
// fields as outcomes so that one malformed field doesn't prevent building the enclosing node.
type Outcome[T any] struct {
	value T
	err   *Error
}

func succeed[T any](v T) Outcome[T] {
	return Outcome[T]{
		value: v,
	}
}

func fail[T any](cause FrontendError, pos Position) Outcome[T] {
	return Outcome[T]{
		err: newError(cause, pos),
	}
}

func failWith[T any](err *Error) Outcome[T] {
	return Outcome[T]{
		err: err,
	}
}

// Value returns the value and true, or the zero value and false when the outcome is an error.
func (o Outcome[T]) Value() (T, bool) {
	return o.value, o.err == nil
}

// OK reports whether the outcome holds a value.
func (o Outcome[T]) OK() bool {
	return o.err == nil
}

// Err returns nil when the outcome holds a value.
func (o Outcome[T]) Err() error {
	if o.err == nil {
		return nil
	}
	return o.err
}

// Failure returns the positioned error, or nil when the outcome holds a value.
func (o Outcome[T]) Failure() *Error {
	return o.err
}
