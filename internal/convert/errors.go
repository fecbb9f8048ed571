package convert

import (
	"errors"
	"fmt"
)

// Error kinds. A conversion fails with exactly one of these; match with
// errors.Is. Retries, if any, belong to the orchestration layer above.
var (
	ErrRead  = errors.New("input not readable")
	ErrParse = errors.New("document not parseable")
	ErrWrite = errors.New("output not writable")
)

// Error wraps a conversion failure with its kind and the file it
// concerns.
type Error struct {
	Kind error
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}

	return fmt.Sprintf("%s: %s: %v", e.Kind.Error(), e.Path, e.Err)
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func readErr(path string, err error) error {
	return &Error{Kind: ErrRead, Path: path, Err: err}
}

func parseErr(path string, err error) error {
	return &Error{Kind: ErrParse, Path: path, Err: err}
}

func writeErr(path string, err error) error {
	return &Error{Kind: ErrWrite, Path: path, Err: err}
}
