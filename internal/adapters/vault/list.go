package vault

import (
	"context"
	"fmt"
	"os"

	"classiflyer/internal/domain"
)

// ListBinders returns the active binders sorted by key number.
func (v *Vault) ListBinders(ctx context.Context) ([]domain.BinderEntry, error) {
	var entries []domain.BinderEntry
	err := v.view(ctx, func(idx *domain.Index) error {
		entries = collectBinders(idx.Active)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ListArchivedBinders returns the archived binders sorted by key number.
func (v *Vault) ListArchivedBinders(ctx context.Context) ([]domain.BinderEntry, error) {
	var entries []domain.BinderEntry
	err := v.view(ctx, func(idx *domain.Index) error {
		entries = collectBinders(idx.Archives.Binders)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func collectBinders(table map[string]*domain.Binder) []domain.BinderEntry {
	entries := make([]domain.BinderEntry, 0, len(table))
	for id, binder := range table {
		entries = append(entries, domain.BinderEntry{ID: id, Binder: binder})
	}
	domain.SortBinderEntries(entries)
	return entries
}

// ListArchiveFolders returns the flat archive folder table sorted by key
// number. Callers rebuild the tree from ParentID as needed.
func (v *Vault) ListArchiveFolders(ctx context.Context) ([]*domain.ArchiveFolder, error) {
	var folders []*domain.ArchiveFolder
	err := v.view(ctx, func(idx *domain.Index) error {
		folders = make([]*domain.ArchiveFolder, 0, len(idx.Archives.Folders))
		for _, folder := range idx.Archives.Folders {
			folders = append(folders, folder)
		}
		domain.SortArchiveFolders(folders)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return folders, nil
}

// ListTrash returns the trash entries, oldest deletion first.
func (v *Vault) ListTrash(ctx context.Context) ([]domain.TrashListing, error) {
	var listings []domain.TrashListing
	err := v.view(ctx, func(idx *domain.Index) error {
		listings = make([]domain.TrashListing, 0, len(idx.Trash))
		for id, entry := range idx.Trash {
			listings = append(listings, domain.TrashListing{ID: id, TrashEntry: entry})
		}
		domain.SortTrashListings(listings)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return listings, nil
}

// Snapshot returns the current index document. Each view loads a fresh
// document from disk, so the caller owns the returned value.
func (v *Vault) Snapshot(ctx context.Context) (*domain.Index, error) {
	var doc *domain.Index
	err := v.view(ctx, func(idx *domain.Index) error {
		doc = idx
		return nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// ReadFile returns a managed file's raw bytes and its mime type, derived
// from the name the same way uploads derive it. Rendering is the
// caller's concern.
func (v *Vault) ReadFile(ctx context.Context, sysPath string) ([]byte, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(sysPath)
	if err != nil {
		return nil, "", fmt.Errorf("read managed file: %w", err)
	}
	return data, domain.MimeForName(sysPath), nil
}
