package commands

import (
	"context"
	"fmt"
	"strings"

	"classiflyer/internal/application"
	"classiflyer/internal/domain"
	"classiflyer/internal/ports"
)

// CreateBinderResult contains the result of creating a binder
type CreateBinderResult struct {
	Entry   *domain.BinderEntry
	Message string
}

// CreateBinderCommand creates an empty binder in the active zone
type CreateBinderCommand struct {
	store  ports.Store
	Name   string
	Colors domain.Colors
}

// NewCreateBinderCommand creates a new CreateBinderCommand
func NewCreateBinderCommand(store ports.Store, name string, colors domain.Colors) *CreateBinderCommand {
	return &CreateBinderCommand{
		store:  store,
		Name:   name,
		Colors: colors,
	}
}

// Validate checks the binder name
func (c *CreateBinderCommand) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return &application.ValidationError{
			Field:   "name",
			Message: "binder name is required",
		}
	}
	return nil
}

// Execute runs the create command
func (c *CreateBinderCommand) Execute(ctx context.Context) (*CreateBinderResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	entry, err := c.store.CreateBinder(ctx, c.Name, c.Colors)
	if err != nil {
		return nil, fmt.Errorf("failed to create binder: %w", err)
	}

	return &CreateBinderResult{
		Entry:   entry,
		Message: fmt.Sprintf("Created binder %s (%s)", entry.Name, entry.ID),
	}, nil
}

// CreateBinderFromFolderCommand imports an existing directory as a new
// binder, copying its contents into the managed root
type CreateBinderFromFolderCommand struct {
	store      ports.Store
	Name       string
	Colors     domain.Colors
	SourcePath string
}

// NewCreateBinderFromFolderCommand creates a new CreateBinderFromFolderCommand
func NewCreateBinderFromFolderCommand(store ports.Store, name string, colors domain.Colors, sourcePath string) *CreateBinderFromFolderCommand {
	return &CreateBinderFromFolderCommand{
		store:      store,
		Name:       name,
		Colors:     colors,
		SourcePath: sourcePath,
	}
}

// Validate checks the binder name and source path
func (c *CreateBinderFromFolderCommand) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return &application.ValidationError{
			Field:   "name",
			Message: "binder name is required",
		}
	}
	if strings.TrimSpace(c.SourcePath) == "" {
		return &application.ValidationError{
			Field:   "sourcePath",
			Message: "source path is required",
		}
	}
	return nil
}

// Execute runs the import command
func (c *CreateBinderFromFolderCommand) Execute(ctx context.Context) (*CreateBinderResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	entry, err := c.store.CreateBinderFromFolder(ctx, c.Name, c.Colors, c.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to import binder: %w", err)
	}

	return &CreateBinderResult{
		Entry:   entry,
		Message: fmt.Sprintf("Imported %s as binder %s (%s)", c.SourcePath, entry.Name, entry.ID),
	}, nil
}

// CreateFolderResult contains the result of creating a folder
type CreateFolderResult struct {
	FolderID string
	Folder   *domain.Folder
	Message  string
}

// CreateFolderCommand creates a folder inside a binder, optionally
// nested under another folder
type CreateFolderCommand struct {
	store          ports.Store
	BinderID       string
	Name           string
	ParentFolderID *string
}

// NewCreateFolderCommand creates a new CreateFolderCommand
func NewCreateFolderCommand(store ports.Store, binderID, name string, parentFolderID *string) *CreateFolderCommand {
	return &CreateFolderCommand{
		store:          store,
		BinderID:       binderID,
		Name:           name,
		ParentFolderID: parentFolderID,
	}
}

// Validate checks the binder key and folder name
func (c *CreateFolderCommand) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return &application.ValidationError{
			Field:   "name",
			Message: "folder name is required",
		}
	}
	if domain.ParseKeyType(c.BinderID) != domain.KeyTypeBinder {
		return &application.ValidationError{
			Field:   "binderID",
			Message: fmt.Sprintf("expected binder key, got: %s", c.BinderID),
		}
	}
	if c.ParentFolderID != nil && domain.ParseKeyType(*c.ParentFolderID) != domain.KeyTypeFolder {
		return &application.ValidationError{
			Field:   "parentFolderID",
			Message: fmt.Sprintf("expected folder key, got: %s", *c.ParentFolderID),
		}
	}
	return nil
}

// Execute runs the create folder command
func (c *CreateFolderCommand) Execute(ctx context.Context) (*CreateFolderResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	id, folder, err := c.store.CreateFolder(ctx, c.BinderID, c.Name, c.ParentFolderID)
	if err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}

	return &CreateFolderResult{
		FolderID: id,
		Folder:   folder,
		Message:  fmt.Sprintf("Created folder %s (%s) in %s", folder.Name, id, c.BinderID),
	}, nil
}

// CreateArchiveFolderResult contains the result of creating an archive folder
type CreateArchiveFolderResult struct {
	Folder  *domain.ArchiveFolder
	Message string
}

// CreateArchiveFolderCommand creates an archive folder, optionally
// nested under another archive folder
type CreateArchiveFolderCommand struct {
	store    ports.Store
	Name     string
	ParentID *string
}

// NewCreateArchiveFolderCommand creates a new CreateArchiveFolderCommand
func NewCreateArchiveFolderCommand(store ports.Store, name string, parentID *string) *CreateArchiveFolderCommand {
	return &CreateArchiveFolderCommand{
		store:    store,
		Name:     name,
		ParentID: parentID,
	}
}

// Validate checks the folder name and parent key
func (c *CreateArchiveFolderCommand) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return &application.ValidationError{
			Field:   "name",
			Message: "archive folder name is required",
		}
	}
	if c.ParentID != nil && domain.ParseKeyType(*c.ParentID) != domain.KeyTypeArchiveFolder {
		return &application.ValidationError{
			Field:   "parentID",
			Message: fmt.Sprintf("expected archive folder key, got: %s", *c.ParentID),
		}
	}
	return nil
}

// Execute runs the create archive folder command
func (c *CreateArchiveFolderCommand) Execute(ctx context.Context) (*CreateArchiveFolderResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	folder, err := c.store.CreateArchiveFolder(ctx, c.Name, c.ParentID)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive folder: %w", err)
	}

	return &CreateArchiveFolderResult{
		Folder:  folder,
		Message: fmt.Sprintf("Created archive folder %s (%s)", folder.Name, folder.ID),
	}, nil
}
