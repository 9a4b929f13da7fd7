package store

import (
	"errors"
	"fmt"
)

// ErrEmptyDocument is returned when a YAML document parses to nothing.
var ErrEmptyDocument = errors.New("empty document")

// ErrIO is returned when a path cannot be read, written or created.
var ErrIO = errors.New("i/o error")

// ErrParse is returned when file content is malformed for its format.
var ErrParse = errors.New("parse error")

// ErrSerialize is returned when a value cannot be represented in the target format.
var ErrSerialize = errors.New("serialize error")

// ErrEmptyPath is returned when an operation is given an empty path.
var ErrEmptyPath = errors.New("path must not be empty")

// ErrNotObject is returned when a JSON document's top level is not an object.
var ErrNotObject = errors.New("top level is not an object")

// ErrInvalidTarget is returned when LoadBin is given a target that is not a non-nil pointer.
var ErrInvalidTarget = errors.New("target must be a non-nil pointer")

// ErrInvalidPermission is returned when a configured permission has non-permission bits set.
var ErrInvalidPermission = errors.New("invalid permission bits")

func wrap(op, path string, kind, err error) error {
	return fmt.Errorf("%s %q: %w: %w", op, path, kind, err)
}
