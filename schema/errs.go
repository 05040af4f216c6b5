package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrSpec reports a spec which cannot be built.
	ErrSpec = errors.New("invalid spec")

	// ErrConflict reports a part whose path disagrees with the fields
	// already in a format.
	ErrConflict = errors.New("conflicting field")

	ErrNoIndex   = errors.New("no such index")
	ErrFieldType = errors.New("unknown field type")
)

// PartError locates an error in a part of an index.
type PartError struct {
	Index string
	Part  int
	Path  string
	Err   error
}

func (e *PartError) Error() string {
	return fmt.Sprintf("index %q part %d (%q): %v", e.Index, e.Part+1, e.Path, e.Err)
}

func (e *PartError) Unwrap() error {
	return e.Err
}
