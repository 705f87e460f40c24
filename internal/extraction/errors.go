// Package extraction reduces raw case docket files to flat metric summaries.
package extraction

import "fmt"

// ParseError represents an error during file I/O or JSON parsing of a case
// record. Batch analysis treats it as skip-and-log rather than fatal.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
