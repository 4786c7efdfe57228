package commands

import (
	"context"
	"fmt"

	"classiflyer/internal/application"
	"classiflyer/internal/domain"
	"classiflyer/internal/ports"
)

// UnarchiveResult contains the result of unarchiving a binder
type UnarchiveResult struct {
	Entry   *domain.BinderEntry
	Message string
}

// UnarchiveCommand moves an archived binder back to the active zone
type UnarchiveCommand struct {
	store    ports.Store
	BinderID string
}

// NewUnarchiveCommand creates a new UnarchiveCommand
func NewUnarchiveCommand(store ports.Store, binderID string) *UnarchiveCommand {
	return &UnarchiveCommand{
		store:    store,
		BinderID: binderID,
	}
}

// Validate checks the binder key
func (c *UnarchiveCommand) Validate() error {
	if domain.ParseKeyType(c.BinderID) != domain.KeyTypeBinder {
		return &application.ValidationError{
			Field:   "binderID",
			Message: fmt.Sprintf("expected binder key, got: %s", c.BinderID),
		}
	}
	return nil
}

// Execute runs the unarchive command
func (c *UnarchiveCommand) Execute(ctx context.Context) (*UnarchiveResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	entry, err := c.store.Unarchive(ctx, c.BinderID)
	if err != nil {
		return nil, fmt.Errorf("failed to unarchive binder: %w", err)
	}

	return &UnarchiveResult{
		Entry:   entry,
		Message: fmt.Sprintf("Unarchived %s", c.BinderID),
	}, nil
}
