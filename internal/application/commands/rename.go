package commands

import (
	"context"
	"fmt"
	"strings"

	"classiflyer/internal/application"
	"classiflyer/internal/domain"
	"classiflyer/internal/ports"
)

// RenameBinderResult contains the result of renaming a binder
type RenameBinderResult struct {
	Entry   *domain.BinderEntry
	Message string
}

// RenameBinderCommand renames a binder in place, in whichever zone it
// lives
type RenameBinderCommand struct {
	store    ports.Store
	BinderID string
	NewName  string
}

// NewRenameBinderCommand creates a new RenameBinderCommand
func NewRenameBinderCommand(store ports.Store, binderID, newName string) *RenameBinderCommand {
	return &RenameBinderCommand{
		store:    store,
		BinderID: binderID,
		NewName:  newName,
	}
}

// Validate checks the binder key and new name
func (c *RenameBinderCommand) Validate() error {
	if domain.ParseKeyType(c.BinderID) != domain.KeyTypeBinder {
		return &application.ValidationError{
			Field:   "binderID",
			Message: fmt.Sprintf("expected binder key, got: %s", c.BinderID),
		}
	}
	if strings.TrimSpace(c.NewName) == "" {
		return &application.ValidationError{
			Field:   "newName",
			Message: "new name is required",
		}
	}
	return nil
}

// Execute runs the rename command
func (c *RenameBinderCommand) Execute(ctx context.Context) (*RenameBinderResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	entry, err := c.store.RenameBinder(ctx, c.BinderID, c.NewName)
	if err != nil {
		return nil, fmt.Errorf("failed to rename binder: %w", err)
	}

	return &RenameBinderResult{
		Entry:   entry,
		Message: fmt.Sprintf("Renamed %s to %s", c.BinderID, entry.Name),
	}, nil
}

// RenameFolderResult contains the result of renaming a folder
type RenameFolderResult struct {
	Folder  *domain.Folder
	Message string
}

// RenameFolderCommand renames a folder inside a binder
type RenameFolderCommand struct {
	store    ports.Store
	BinderID string
	FolderID string
	NewName  string
}

// NewRenameFolderCommand creates a new RenameFolderCommand
func NewRenameFolderCommand(store ports.Store, binderID, folderID, newName string) *RenameFolderCommand {
	return &RenameFolderCommand{
		store:    store,
		BinderID: binderID,
		FolderID: folderID,
		NewName:  newName,
	}
}

// Validate checks the keys and new name
func (c *RenameFolderCommand) Validate() error {
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
	if strings.TrimSpace(c.NewName) == "" {
		return &application.ValidationError{
			Field:   "newName",
			Message: "new name is required",
		}
	}
	return nil
}

// Execute runs the rename folder command
func (c *RenameFolderCommand) Execute(ctx context.Context) (*RenameFolderResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	folder, err := c.store.RenameFolder(ctx, c.BinderID, c.FolderID, c.NewName)
	if err != nil {
		return nil, fmt.Errorf("failed to rename folder: %w", err)
	}

	return &RenameFolderResult{
		Folder:  folder,
		Message: fmt.Sprintf("Renamed %s to %s", c.FolderID, folder.Name),
	}, nil
}

// RenameArchiveFolderResult contains the result of renaming an archive folder
type RenameArchiveFolderResult struct {
	Folder  *domain.ArchiveFolder
	Message string
}

// RenameArchiveFolderCommand renames an archive folder
type RenameArchiveFolderCommand struct {
	store    ports.Store
	FolderID string
	NewName  string
}

// NewRenameArchiveFolderCommand creates a new RenameArchiveFolderCommand
func NewRenameArchiveFolderCommand(store ports.Store, folderID, newName string) *RenameArchiveFolderCommand {
	return &RenameArchiveFolderCommand{
		store:    store,
		FolderID: folderID,
		NewName:  newName,
	}
}

// Validate checks the folder key and new name
func (c *RenameArchiveFolderCommand) Validate() error {
	if domain.ParseKeyType(c.FolderID) != domain.KeyTypeArchiveFolder {
		return &application.ValidationError{
			Field:   "folderID",
			Message: fmt.Sprintf("expected archive folder key, got: %s", c.FolderID),
		}
	}
	if strings.TrimSpace(c.NewName) == "" {
		return &application.ValidationError{
			Field:   "newName",
			Message: "new name is required",
		}
	}
	return nil
}

// Execute runs the rename archive folder command
func (c *RenameArchiveFolderCommand) Execute(ctx context.Context) (*RenameArchiveFolderResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	folder, err := c.store.RenameArchiveFolder(ctx, c.FolderID, c.NewName)
	if err != nil {
		return nil, fmt.Errorf("failed to rename archive folder: %w", err)
	}

	return &RenameArchiveFolderResult{
		Folder:  folder,
		Message: fmt.Sprintf("Renamed %s to %s", c.FolderID, folder.Name),
	}, nil
}

// UpdateColorsResult contains the result of a color update
type UpdateColorsResult struct {
	Entry   *domain.BinderEntry
	Message string
}

// UpdateColorsCommand changes a binder's display colors. Blank fields
// keep their current value.
type UpdateColorsCommand struct {
	store    ports.Store
	BinderID string
	Colors   domain.Colors
}

// NewUpdateColorsCommand creates a new UpdateColorsCommand
func NewUpdateColorsCommand(store ports.Store, binderID string, colors domain.Colors) *UpdateColorsCommand {
	return &UpdateColorsCommand{
		store:    store,
		BinderID: binderID,
		Colors:   colors,
	}
}

// Validate checks the binder key
func (c *UpdateColorsCommand) Validate() error {
	if domain.ParseKeyType(c.BinderID) != domain.KeyTypeBinder {
		return &application.ValidationError{
			Field:   "binderID",
			Message: fmt.Sprintf("expected binder key, got: %s", c.BinderID),
		}
	}
	return nil
}

// Execute runs the color update command
func (c *UpdateColorsCommand) Execute(ctx context.Context) (*UpdateColorsResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	entry, err := c.store.UpdateBinderColors(ctx, c.BinderID, c.Colors)
	if err != nil {
		return nil, fmt.Errorf("failed to update colors: %w", err)
	}

	return &UpdateColorsResult{
		Entry:   entry,
		Message: fmt.Sprintf("Updated colors of %s", c.BinderID),
	}, nil
}
