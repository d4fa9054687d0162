package fastx

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat marks structural violations the parser cannot recover from.
	ErrFormat = errors.New("malformed record stream")
	// ErrInvalidRecordShape is returned when writing a record of unknown type.
	ErrInvalidRecordShape = errors.New("invalid record shape")
)

// FormatError locates a structural violation in the input.
type FormatError struct {
	Line   int // 1-based line number where the problem was detected
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%v: line %d: %s", ErrFormat, e.Line, e.Reason)
}

func (e *FormatError) Unwrap() error { return ErrFormat }
