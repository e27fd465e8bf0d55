package types

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedEngine is returned when transform.engine names a known
	// engine other than SupportedEngine
	ErrUnsupportedEngine = fmt.Errorf("invalid engine: only `%s` is supported", SupportedEngine)
	ErrNoSources         = errors.New("no sources configured")
	ErrNoDestinations    = errors.New("no destinations configured")
)

// StructuralError indicates the document could not be decoded into a
// JobConfig: bad syntax, unknown or missing fields, unknown connector
// types or enum values. Err carries the decoder's diagnostic.
type StructuralError struct {
	Err error
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("yaml parse error: %v", e.Err)
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}
