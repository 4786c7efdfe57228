package commands

import (
	"context"
	"fmt"

	"classiflyer/internal/application"
	"classiflyer/internal/domain"
	"classiflyer/internal/ports"
)

// MoveResult contains the result of moving a binder between archive folders
type MoveResult struct {
	Entry   *domain.BinderEntry
	Message string
}

// MoveToArchiveFolderCommand relocates an archived binder into another
// archive folder, or to the archive root when the target is nil
type MoveToArchiveFolderCommand struct {
	store          ports.Store
	BinderID       string
	TargetFolderID *string
}

// NewMoveToArchiveFolderCommand creates a new MoveToArchiveFolderCommand
func NewMoveToArchiveFolderCommand(store ports.Store, binderID string, targetFolderID *string) *MoveToArchiveFolderCommand {
	return &MoveToArchiveFolderCommand{
		store:          store,
		BinderID:       binderID,
		TargetFolderID: targetFolderID,
	}
}

// Validate checks the binder key and target folder key
func (c *MoveToArchiveFolderCommand) Validate() error {
	if domain.ParseKeyType(c.BinderID) != domain.KeyTypeBinder {
		return &application.ValidationError{
			Field:   "binderID",
			Message: fmt.Sprintf("expected binder key, got: %s", c.BinderID),
		}
	}
	if c.TargetFolderID != nil && domain.ParseKeyType(*c.TargetFolderID) != domain.KeyTypeArchiveFolder {
		return &application.ValidationError{
			Field:   "targetFolderID",
			Message: fmt.Sprintf("expected archive folder key, got: %s", *c.TargetFolderID),
		}
	}
	return nil
}

// Execute runs the move command
func (c *MoveToArchiveFolderCommand) Execute(ctx context.Context) (*MoveResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	entry, err := c.store.MoveToArchiveFolder(ctx, c.BinderID, c.TargetFolderID)
	if err != nil {
		return nil, fmt.Errorf("failed to move binder: %w", err)
	}

	target := "archive root"
	if c.TargetFolderID != nil {
		target = *c.TargetFolderID
	}
	return &MoveResult{
		Entry:   entry,
		Message: fmt.Sprintf("Moved %s to %s", c.BinderID, target),
	}, nil
}
