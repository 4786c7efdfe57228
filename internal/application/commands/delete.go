package commands

import (
	"context"
	"fmt"

	"classiflyer/internal/application"
	"classiflyer/internal/domain"
	"classiflyer/internal/ports"
)

// DeleteResult contains the result of a permanent delete
type DeleteResult struct {
	Message string
}

// DeleteBinderCommand permanently deletes a binder, bypassing the trash
type DeleteBinderCommand struct {
	store    ports.Store
	BinderID string
}

// NewDeleteBinderCommand creates a new DeleteBinderCommand
func NewDeleteBinderCommand(store ports.Store, binderID string) *DeleteBinderCommand {
	return &DeleteBinderCommand{
		store:    store,
		BinderID: binderID,
	}
}

// Validate checks the binder key
func (c *DeleteBinderCommand) Validate() error {
	if domain.ParseKeyType(c.BinderID) != domain.KeyTypeBinder {
		return &application.ValidationError{
			Field:   "binderID",
			Message: fmt.Sprintf("expected binder key, got: %s", c.BinderID),
		}
	}
	return nil
}

// Execute runs the delete command
func (c *DeleteBinderCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.store.DeleteBinder(ctx, c.BinderID); err != nil {
		return nil, fmt.Errorf("failed to delete binder: %w", err)
	}

	return &DeleteResult{Message: fmt.Sprintf("Deleted %s", c.BinderID)}, nil
}

// DeleteFolderCommand permanently deletes a folder subtree inside a binder
type DeleteFolderCommand struct {
	store    ports.Store
	BinderID string
	FolderID string
}

// NewDeleteFolderCommand creates a new DeleteFolderCommand
func NewDeleteFolderCommand(store ports.Store, binderID, folderID string) *DeleteFolderCommand {
	return &DeleteFolderCommand{
		store:    store,
		BinderID: binderID,
		FolderID: folderID,
	}
}

// Validate checks the keys
func (c *DeleteFolderCommand) Validate() error {
	if domain.ParseKeyType(c.BinderID) != domain.KeyTypeBinder {
		return &application.ValidationError{
			Field:   "binderID",
			Message: fmt.Sprintf("expected binder key, got: %s", c.BinderID),
		}
	}
	if domain.ParseKeyType(c.FolderID) != domain.KeyTypeFolder {
		return &application.ValidationError{
			Field:   "folderID",
			Message: fmt.Sprintf("expected folder key, got: %s", c.FolderID),
		}
	}
	return nil
}

// Execute runs the delete folder command
func (c *DeleteFolderCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.store.DeleteFolder(ctx, c.BinderID, c.FolderID); err != nil {
		return nil, fmt.Errorf("failed to delete folder: %w", err)
	}

	return &DeleteResult{Message: fmt.Sprintf("Deleted %s from %s", c.FolderID, c.BinderID)}, nil
}

// DeleteArchiveFolderCommand permanently deletes an archive folder, its
// direct child folders, and every binder placed in them
type DeleteArchiveFolderCommand struct {
	store    ports.Store
	FolderID string
}

// NewDeleteArchiveFolderCommand creates a new DeleteArchiveFolderCommand
func NewDeleteArchiveFolderCommand(store ports.Store, folderID string) *DeleteArchiveFolderCommand {
	return &DeleteArchiveFolderCommand{
		store:    store,
		FolderID: folderID,
	}
}

// Validate checks the folder key
func (c *DeleteArchiveFolderCommand) Validate() error {
	if domain.ParseKeyType(c.FolderID) != domain.KeyTypeArchiveFolder {
		return &application.ValidationError{
			Field:   "folderID",
			Message: fmt.Sprintf("expected archive folder key, got: %s", c.FolderID),
		}
	}
	return nil
}

// Execute runs the delete archive folder command
func (c *DeleteArchiveFolderCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.store.DeleteArchiveFolder(ctx, c.FolderID); err != nil {
		return nil, fmt.Errorf("failed to delete archive folder: %w", err)
	}

	return &DeleteResult{Message: fmt.Sprintf("Deleted %s", c.FolderID)}, nil
}
