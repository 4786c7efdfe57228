package ports

import (
	"context"

	"classiflyer/internal/domain"
)

// Store is the operation surface over the binder hierarchy: every
// mutating call performs its filesystem mutation first, then updates and
// persists the index. Implementations serialize mutations internally;
// callers never coordinate.
type Store interface {
	// Binder hierarchy
	CreateBinder(ctx context.Context, name string, colors domain.Colors) (*domain.BinderEntry, error)
	CreateBinderFromFolder(ctx context.Context, name string, colors domain.Colors, sourcePath string) (*domain.BinderEntry, error)
	GetBinder(ctx context.Context, id string) (*domain.BinderEntry, error)
	RenameBinder(ctx context.Context, id, newName string) (*domain.BinderEntry, error)
	UpdateBinderColors(ctx context.Context, id string, colors domain.Colors) (*domain.BinderEntry, error)
	DeleteBinder(ctx context.Context, id string) error

	// Folders and files
	CreateFolder(ctx context.Context, binderID, name string, parentFolderID *string) (string, *domain.Folder, error)
	RenameFolder(ctx context.Context, binderID, folderID, newName string) (*domain.Folder, error)
	DeleteFolder(ctx context.Context, binderID, folderID string) error
	UploadFiles(ctx context.Context, binderID string, targetFolderID *string, sources []string) ([]domain.FileRef, error)

	// Lifecycle transitions
	Archive(ctx context.Context, id string, archiveFolderID *string) (*domain.BinderEntry, error)
	Unarchive(ctx context.Context, id string) (*domain.BinderEntry, error)
	MoveToArchiveFolder(ctx context.Context, id string, targetFolderID *string) (*domain.BinderEntry, error)
	Trash(ctx context.Context, id string) error
	TrashArchiveFolder(ctx context.Context, folderID string) error
	Restore(ctx context.Context, id string) error
	PurgeOne(ctx context.Context, id string) error
	PurgeAll(ctx context.Context) (int, error)

	// Archive folder tree
	CreateArchiveFolder(ctx context.Context, name string, parentID *string) (*domain.ArchiveFolder, error)
	RenameArchiveFolder(ctx context.Context, folderID, newName string) (*domain.ArchiveFolder, error)
	DeleteArchiveFolder(ctx context.Context, folderID string) error

	// Read-only projections
	ListBinders(ctx context.Context) ([]domain.BinderEntry, error)
	ListArchivedBinders(ctx context.Context) ([]domain.BinderEntry, error)
	ListArchiveFolders(ctx context.Context) ([]*domain.ArchiveFolder, error)
	ListTrash(ctx context.Context) ([]domain.TrashListing, error)

	// Preview boundary: raw bytes plus the metadata already in FileRef.
	ReadFile(ctx context.Context, sysPath string) ([]byte, string, error)

	// Snapshot returns the current index document, for feeding derived
	// caches. The returned document is a private copy.
	Snapshot(ctx context.Context) (*domain.Index, error)
}
