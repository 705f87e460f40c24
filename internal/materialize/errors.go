// Package materialize copies a selected sample of cases, plus the PDF documents of its lead case, into a self-contained sample-data tree.
package materialize

import "fmt"

// Error represents an error that occurs while building the sample-data tree
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}
