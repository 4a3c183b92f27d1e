package filesystem

import (
	"errors"
	"fmt"
)

var (
	// ErrNameInUse is returned by [Node] inserts when the name is already taken
	ErrNameInUse = errors.New("name in use")
	// ErrNoChild is returned by [Node.RemoveChild] when the name is absent
	ErrNoChild = errors.New("no such child")

	// ErrMissing matches any *MissingError with errors.Is
	ErrMissing = errors.New("path does not exist")
	// ErrExists matches any *ExistsError with errors.Is
	ErrExists = errors.New("path already exists")
	// ErrInvalidPath matches any *InvalidPathError with errors.Is
	ErrInvalidPath = errors.New("invalid path")
)

// MissingError is returned when a referenced path segment does not exist.
type MissingError struct {
	Op      string // Operation name, i.e. "create"
	Path    string // Full requested path
	Missing string // Shortest prefix of Path that does not resolve
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("Cannot %s %s - %s does not exist", e.Op, e.Path, e.Missing)
}

func (e *MissingError) Is(target error) bool { return target == ErrMissing }

// ExistsError is returned when a create or move target name is taken.
type ExistsError struct {
	Op   string
	Path string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("Cannot %s %s - %s already exists", e.Op, e.Path, e.Path)
}

func (e *ExistsError) Is(target error) bool { return target == ErrExists }

// InvalidPathError is returned for malformed paths and for moves that would
// place a node inside its own subtree.
type InvalidPathError struct {
	Op     string
	Path   string
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("Cannot %s %s - %s", e.Op, e.Path, e.Reason)
}

func (e *InvalidPathError) Is(target error) bool { return target == ErrInvalidPath }
