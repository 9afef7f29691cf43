package message

import (
	"errors"
	"fmt"

	"commit-assistant/internal/status"
)

var ErrExtraction = errors.New("path extraction failed")

// ExtractionError is returned in strict mode when a single-entry category
// does not match its path pattern.
type ExtractionError struct {
	Kind  status.Kind
	Input string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s path from %q: no match", e.Kind, e.Input)
}

func (e *ExtractionError) Unwrap() error {
	return ErrExtraction
}
