package commands

import (
	"context"
	"fmt"

	"classiflyer/internal/application"
	"classiflyer/internal/domain"
	"classiflyer/internal/ports"
)

// TrashResult contains the result of a trash operation
type TrashResult struct {
	Message string
}

// TrashCommand moves a binder from either zone into the trash
type TrashCommand struct {
	store    ports.Store
	BinderID string
}

// NewTrashCommand creates a new TrashCommand
func NewTrashCommand(store ports.Store, binderID string) *TrashCommand {
	return &TrashCommand{
		store:    store,
		BinderID: binderID,
	}
}

// Validate checks the binder key
func (c *TrashCommand) Validate() error {
	if domain.ParseKeyType(c.BinderID) != domain.KeyTypeBinder {
		return &application.ValidationError{
			Field:   "binderID",
			Message: fmt.Sprintf("expected binder key, got: %s", c.BinderID),
		}
	}
	return nil
}

// Execute runs the trash command
func (c *TrashCommand) Execute(ctx context.Context) (*TrashResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.store.Trash(ctx, c.BinderID); err != nil {
		return nil, fmt.Errorf("failed to trash binder: %w", err)
	}

	return &TrashResult{Message: fmt.Sprintf("Moved %s to trash", c.BinderID)}, nil
}

// TrashArchiveFolderCommand moves an archive folder and everything
// placed in it into the trash as one unit
type TrashArchiveFolderCommand struct {
	store    ports.Store
	FolderID string
}

// NewTrashArchiveFolderCommand creates a new TrashArchiveFolderCommand
func NewTrashArchiveFolderCommand(store ports.Store, folderID string) *TrashArchiveFolderCommand {
	return &TrashArchiveFolderCommand{
		store:    store,
		FolderID: folderID,
	}
}

// Validate checks the folder key
func (c *TrashArchiveFolderCommand) Validate() error {
	if domain.ParseKeyType(c.FolderID) != domain.KeyTypeArchiveFolder {
		return &application.ValidationError{
			Field:   "folderID",
			Message: fmt.Sprintf("expected archive folder key, got: %s", c.FolderID),
		}
	}
	return nil
}

// Execute runs the trash command
func (c *TrashArchiveFolderCommand) Execute(ctx context.Context) (*TrashResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.store.TrashArchiveFolder(ctx, c.FolderID); err != nil {
		return nil, fmt.Errorf("failed to trash archive folder: %w", err)
	}

	return &TrashResult{Message: fmt.Sprintf("Moved %s to trash", c.FolderID)}, nil
}

// RestoreCommand puts a trash entry back in its origin zone
type RestoreCommand struct {
	store   ports.Store
	EntryID string
}

// NewRestoreCommand creates a new RestoreCommand
func NewRestoreCommand(store ports.Store, entryID string) *RestoreCommand {
	return &RestoreCommand{
		store:   store,
		EntryID: entryID,
	}
}

// Validate checks the entry key, which is a binder or archive folder key
func (c *RestoreCommand) Validate() error {
	switch domain.ParseKeyType(c.EntryID) {
	case domain.KeyTypeBinder, domain.KeyTypeArchiveFolder:
		return nil
	default:
		return &application.ValidationError{
			Field:   "entryID",
			Message: fmt.Sprintf("expected binder or archive folder key, got: %s", c.EntryID),
		}
	}
}

// Execute runs the restore command
func (c *RestoreCommand) Execute(ctx context.Context) (*TrashResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.store.Restore(ctx, c.EntryID); err != nil {
		return nil, fmt.Errorf("failed to restore: %w", err)
	}

	return &TrashResult{Message: fmt.Sprintf("Restored %s", c.EntryID)}, nil
}

// PurgeOneCommand permanently deletes one trash entry
type PurgeOneCommand struct {
	store   ports.Store
	EntryID string
}

// NewPurgeOneCommand creates a new PurgeOneCommand
func NewPurgeOneCommand(store ports.Store, entryID string) *PurgeOneCommand {
	return &PurgeOneCommand{
		store:   store,
		EntryID: entryID,
	}
}

// Validate checks the entry key
func (c *PurgeOneCommand) Validate() error {
	switch domain.ParseKeyType(c.EntryID) {
	case domain.KeyTypeBinder, domain.KeyTypeArchiveFolder:
		return nil
	default:
		return &application.ValidationError{
			Field:   "entryID",
			Message: fmt.Sprintf("expected binder or archive folder key, got: %s", c.EntryID),
		}
	}
}

// Execute runs the purge command
func (c *PurgeOneCommand) Execute(ctx context.Context) (*TrashResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.store.PurgeOne(ctx, c.EntryID); err != nil {
		return nil, fmt.Errorf("failed to purge: %w", err)
	}

	return &TrashResult{Message: fmt.Sprintf("Permanently deleted %s", c.EntryID)}, nil
}

// PurgeAllResult contains the result of emptying the trash
type PurgeAllResult struct {
	Purged  int
	Message string
}

// PurgeAllCommand empties the trash
type PurgeAllCommand struct {
	store ports.Store
}

// NewPurgeAllCommand creates a new PurgeAllCommand
func NewPurgeAllCommand(store ports.Store) *PurgeAllCommand {
	return &PurgeAllCommand{store: store}
}

// Execute runs the purge all command
func (c *PurgeAllCommand) Execute(ctx context.Context) (*PurgeAllResult, error) {
	n, err := c.store.PurgeAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to empty trash: %w", err)
	}

	return &PurgeAllResult{
		Purged:  n,
		Message: fmt.Sprintf("Permanently deleted %d entries", n),
	}, nil
}
