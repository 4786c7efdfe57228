package commands

import (
	"context"
	"fmt"

	"classiflyer/internal/application"
	"classiflyer/internal/domain"
	"classiflyer/internal/ports"
)

// UploadResult contains the result of an upload batch
type UploadResult struct {
	Saved   []domain.FileRef
	Skipped int
	Message string
}

// UploadFilesCommand copies external files into a binder, optionally
// into one of its folders. Unreadable sources are skipped, not fatal.
type UploadFilesCommand struct {
	store          ports.Store
	BinderID       string
	TargetFolderID *string
	Sources        []string
}

// NewUploadFilesCommand creates a new UploadFilesCommand
func NewUploadFilesCommand(store ports.Store, binderID string, targetFolderID *string, sources []string) *UploadFilesCommand {
	return &UploadFilesCommand{
		store:          store,
		BinderID:       binderID,
		TargetFolderID: targetFolderID,
		Sources:        sources,
	}
}

// Validate checks the keys and that at least one source was given
func (c *UploadFilesCommand) Validate() error {
	if domain.ParseKeyType(c.BinderID) != domain.KeyTypeBinder {
		return &application.ValidationError{
			Field:   "binderID",
			Message: fmt.Sprintf("expected binder key, got: %s", c.BinderID),
		}
	}
	if c.TargetFolderID != nil && domain.ParseKeyType(*c.TargetFolderID) != domain.KeyTypeFolder {
		return &application.ValidationError{
			Field:   "targetFolderID",
			Message: fmt.Sprintf("expected folder key, got: %s", *c.TargetFolderID),
		}
	}
	if len(c.Sources) == 0 {
		return &application.ValidationError{
			Field:   "sources",
			Message: "at least one source file is required",
		}
	}
	return nil
}

// Execute runs the upload command
func (c *UploadFilesCommand) Execute(ctx context.Context) (*UploadResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	saved, err := c.store.UploadFiles(ctx, c.BinderID, c.TargetFolderID, c.Sources)
	if err != nil {
		return nil, fmt.Errorf("failed to upload files: %w", err)
	}

	skipped := len(c.Sources) - len(saved)
	msg := fmt.Sprintf("Uploaded %d files to %s", len(saved), c.BinderID)
	if skipped > 0 {
		msg = fmt.Sprintf("Uploaded %d files to %s (%d skipped)", len(saved), c.BinderID, skipped)
	}
	return &UploadResult{
		Saved:   saved,
		Skipped: skipped,
		Message: msg,
	}, nil
}

// ReadFileResult contains a managed file's content
type ReadFileResult struct {
	Data []byte
	Mime string
}

// ReadFileCommand reads a managed file's raw bytes for preview
type ReadFileCommand struct {
	store   ports.Store
	SysPath string
}

// NewReadFileCommand creates a new ReadFileCommand
func NewReadFileCommand(store ports.Store, sysPath string) *ReadFileCommand {
	return &ReadFileCommand{
		store:   store,
		SysPath: sysPath,
	}
}

// Validate checks the path
func (c *ReadFileCommand) Validate() error {
	if c.SysPath == "" {
		return &application.ValidationError{
			Field:   "sysPath",
			Message: "file path is required",
		}
	}
	return nil
}

// Execute runs the read command
func (c *ReadFileCommand) Execute(ctx context.Context) (*ReadFileResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	data, mime, err := c.store.ReadFile(ctx, c.SysPath)
	if err != nil {
		return nil, err
	}
	return &ReadFileResult{Data: data, Mime: mime}, nil
}
