package cli

import "errors"

// UsageError marks bad invocations (exit status 2) as opposed to failures
// while processing input.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// Usage wraps err as a UsageError; nil stays nil.
func Usage(err error) error {
	if err == nil {
		return nil
	}
	return &UsageError{Err: err}
}

func IsUsage(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}
