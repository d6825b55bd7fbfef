package internal

import "github.com/pkg/errors"

// Threading errors through every insertion step of the triangulation would add
// a lot of noise for conditions that only arise from bad input or broken
// invariants. Instead, we use panics, and the public API recovers to convert
// them to an error.

type TriangulateError struct {
	error
}

func (e TriangulateError) Unwrap() error {
	return e.error
}

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(TriangulateError{errors.Errorf(format, args...)})
}

// Convert a recovered TriangulateError into an error. Anything else is a real
// panic, and is re-raised.
func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError
		}
		panic(r)
	}
	return nil
}
