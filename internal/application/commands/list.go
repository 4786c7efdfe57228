package commands

import (
	"context"

	"classiflyer/internal/domain"
	"classiflyer/internal/ports"
)

// ListBindersCommand lists the active binders
type ListBindersCommand struct {
	store ports.Store
}

// NewListBindersCommand creates a new ListBindersCommand
func NewListBindersCommand(store ports.Store) *ListBindersCommand {
	return &ListBindersCommand{store: store}
}

// Execute runs the list command
func (c *ListBindersCommand) Execute(ctx context.Context) ([]domain.BinderEntry, error) {
	return c.store.ListBinders(ctx)
}

// ListArchivedBindersCommand lists the archived binders
type ListArchivedBindersCommand struct {
	store ports.Store
}

// NewListArchivedBindersCommand creates a new ListArchivedBindersCommand
func NewListArchivedBindersCommand(store ports.Store) *ListArchivedBindersCommand {
	return &ListArchivedBindersCommand{store: store}
}

// Execute runs the list command
func (c *ListArchivedBindersCommand) Execute(ctx context.Context) ([]domain.BinderEntry, error) {
	return c.store.ListArchivedBinders(ctx)
}

// ListArchiveFoldersCommand lists the archive folder table
type ListArchiveFoldersCommand struct {
	store ports.Store
}

// NewListArchiveFoldersCommand creates a new ListArchiveFoldersCommand
func NewListArchiveFoldersCommand(store ports.Store) *ListArchiveFoldersCommand {
	return &ListArchiveFoldersCommand{store: store}
}

// Execute runs the list command
func (c *ListArchiveFoldersCommand) Execute(ctx context.Context) ([]*domain.ArchiveFolder, error) {
	return c.store.ListArchiveFolders(ctx)
}

// ListTrashCommand lists the trash, oldest deletion first
type ListTrashCommand struct {
	store ports.Store
}

// NewListTrashCommand creates a new ListTrashCommand
func NewListTrashCommand(store ports.Store) *ListTrashCommand {
	return &ListTrashCommand{store: store}
}

// Execute runs the list command
func (c *ListTrashCommand) Execute(ctx context.Context) ([]domain.TrashListing, error) {
	return c.store.ListTrash(ctx)
}

// ShowBinderCommand returns one binder with its full subtree
type ShowBinderCommand struct {
	store    ports.Store
	BinderID string
}

// NewShowBinderCommand creates a new ShowBinderCommand
func NewShowBinderCommand(store ports.Store, binderID string) *ShowBinderCommand {
	return &ShowBinderCommand{
		store:    store,
		BinderID: binderID,
	}
}

// Execute runs the show command
func (c *ShowBinderCommand) Execute(ctx context.Context) (*domain.BinderEntry, error) {
	return c.store.GetBinder(ctx, c.BinderID)
}
