package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidKey      = errors.New("invalid key")
	ErrAlreadyArchived = errors.New("already archived")
	ErrNotArchived     = errors.New("not archived")
	ErrNotTrashed      = errors.New("not in trash")
	ErrCorruptIndex    = errors.New("corrupt index")
)

// ValidationError represents a validation failure, rejected before any
// I/O happens.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports an unknown binder/folder/archive-folder key,
// rejected before any I/O happens.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// RenameError wraps a failed filesystem rename, distinguishing it from a
// not-found condition. State is guaranteed untouched when it is returned.
type RenameError struct {
	ID      string
	NewName string
	Err     error
}

func (e *RenameError) Error() string {
	return fmt.Sprintf("cannot rename %s to %q: %v", e.ID, e.NewName, e.Err)
}

func (e *RenameError) Unwrap() error {
	return e.Err
}

// LifecycleError reports an invalid zone transition. It wraps the
// matching sentinel so errors.Is keeps working.
type LifecycleError struct {
	ID  string
	Err error
}

func (e *LifecycleError) Error() string {
	return fmt.Sprintf("cannot transition %s: %v", e.ID, e.Err)
}

func (e *LifecycleError) Unwrap() error {
	return e.Err
}
