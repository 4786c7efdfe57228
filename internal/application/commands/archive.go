package commands

import (
	"context"
	"fmt"

	"classiflyer/internal/application"
	"classiflyer/internal/domain"
	"classiflyer/internal/ports"
)

// ArchiveResult contains the result of archiving a binder
type ArchiveResult struct {
	Entry   *domain.BinderEntry
	Message string
}

// ArchiveCommand moves an active binder to the archived zone,
// optionally placing it inside an archive folder
type ArchiveCommand struct {
	store           ports.Store
	BinderID        string
	ArchiveFolderID *string
}

// NewArchiveCommand creates a new ArchiveCommand
func NewArchiveCommand(store ports.Store, binderID string, archiveFolderID *string) *ArchiveCommand {
	return &ArchiveCommand{
		store:           store,
		BinderID:        binderID,
		ArchiveFolderID: archiveFolderID,
	}
}

// Validate checks the binder key and target folder key
func (c *ArchiveCommand) Validate() error {
	if domain.ParseKeyType(c.BinderID) != domain.KeyTypeBinder {
		return &application.ValidationError{
			Field:   "binderID",
			Message: fmt.Sprintf("expected binder key, got: %s", c.BinderID),
		}
	}
	if c.ArchiveFolderID != nil && domain.ParseKeyType(*c.ArchiveFolderID) != domain.KeyTypeArchiveFolder {
		return &application.ValidationError{
			Field:   "archiveFolderID",
			Message: fmt.Sprintf("expected archive folder key, got: %s", *c.ArchiveFolderID),
		}
	}
	return nil
}

// Execute runs the archive command
func (c *ArchiveCommand) Execute(ctx context.Context) (*ArchiveResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	entry, err := c.store.Archive(ctx, c.BinderID, c.ArchiveFolderID)
	if err != nil {
		return nil, fmt.Errorf("failed to archive binder: %w", err)
	}

	msg := fmt.Sprintf("Archived %s", c.BinderID)
	if c.ArchiveFolderID != nil {
		msg = fmt.Sprintf("Archived %s into %s", c.BinderID, *c.ArchiveFolderID)
	}
	return &ArchiveResult{Entry: entry, Message: msg}, nil
}
