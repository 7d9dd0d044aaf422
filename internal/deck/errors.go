package deck

import (
	"errors"
	"fmt"
)

// ErrInsufficientData is matched by every InsufficientDataError
var ErrInsufficientData = errors.New("insufficient data")

// ConfigurationError reports a data file that could not be opened or read
type ConfigurationError struct {
	Path string
	Err  error
}

func (e *ConfigurationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("data file: %v", e.Err)
	}
	return fmt.Sprintf("data file %s: %v", e.Path, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// MalformedRecordError reports a data line that lacks the liquid and vapor
// columns or carries a non-numeric value in them.
type MalformedRecordError struct {
	Line   int
	Fields int
	Err    error
}

func (e *MalformedRecordError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: malformed record: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: malformed record: want at least %d fields, got %d", e.Line, minFields, e.Fields)
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }

// InsufficientDataError reports a queue that ran dry before a hand or a draw
// could be completed.
type InsufficientDataError struct {
	Queue string
	Need  string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: %s queue exhausted while %s", e.Queue, e.Need)
}

func (e *InsufficientDataError) Is(target error) bool {
	return target == ErrInsufficientData
}
