package vault

import (
	"context"
	"fmt"
	"os"

	"classiflyer/internal/application"
	"classiflyer/internal/domain"
)

// Archive moves an active binder under the archive root, or inside an
// archive folder when one is given. The binder keeps its key: it is
// re-homed from the active table to the archived table, never re-minted.
func (v *Vault) Archive(ctx context.Context, id string, archiveFolderID *string) (*domain.BinderEntry, error) {
	var entry *domain.BinderEntry
	err := v.mutate(ctx, func(idx *domain.Index) error {
		binder, zone, ok := idx.FindBinder(id)
		if !ok {
			return &application.NotFoundError{Kind: "binder", ID: id}
		}
		if zone == domain.ZoneArchived {
			return &application.LifecycleError{ID: id, Err: application.ErrAlreadyArchived}
		}

		var folder *domain.ArchiveFolder
		if archiveFolderID != nil {
			folder, ok = idx.Archives.Folders[*archiveFolderID]
			if !ok {
				return &application.NotFoundError{Kind: "archive folder", ID: *archiveFolderID}
			}
		}

		oldPath := binder.SysPath
		newPath := domain.ArchivedBinderPath(v.root, binder.Name, folder)
		if err := os.Rename(oldPath, newPath); err != nil {
			return fmt.Errorf("move binder to archive: %w", err)
		}

		now := v.now()
		binder.SysPath = newPath
		binder.AppPath = domain.ArchivedAppPath(binder.Name, folder)
		binder.Archived = true
		binder.ArchivedAt = &now
		binder.ArchiveFolderID = archiveFolderID
		binder.UpdatedAt = now
		binder.RewritePaths(oldPath, newPath)

		delete(idx.Active, id)
		idx.Archives.Binders[id] = binder
		entry = &domain.BinderEntry{ID: id, Binder: binder}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Unarchive moves an archived binder back under the active root and
// clears its archive placement.
func (v *Vault) Unarchive(ctx context.Context, id string) (*domain.BinderEntry, error) {
	var entry *domain.BinderEntry
	err := v.mutate(ctx, func(idx *domain.Index) error {
		binder, zone, ok := idx.FindBinder(id)
		if !ok {
			return &application.NotFoundError{Kind: "binder", ID: id}
		}
		if zone != domain.ZoneArchived {
			return &application.LifecycleError{ID: id, Err: application.ErrNotArchived}
		}

		oldPath := binder.SysPath
		newPath := domain.BinderPath(v.root, binder.Name)
		if err := os.Rename(oldPath, newPath); err != nil {
			return fmt.Errorf("move binder out of archive: %w", err)
		}

		binder.SysPath = newPath
		binder.AppPath = domain.ActiveAppPath(binder.Name)
		binder.Archived = false
		binder.ArchivedAt = nil
		binder.ArchiveFolderID = nil
		binder.UpdatedAt = v.now()
		binder.RewritePaths(oldPath, newPath)

		delete(idx.Archives.Binders, id)
		idx.Active[id] = binder
		entry = &domain.BinderEntry{ID: id, Binder: binder}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// MoveToArchiveFolder relocates an archived binder between archive
// folders; a nil target means the archive root. Moving a binder onto
// its current placement is a no-op.
func (v *Vault) MoveToArchiveFolder(ctx context.Context, id string, targetFolderID *string) (*domain.BinderEntry, error) {
	var entry *domain.BinderEntry
	err := v.mutate(ctx, func(idx *domain.Index) error {
		binder, zone, ok := idx.FindBinder(id)
		if !ok {
			return &application.NotFoundError{Kind: "binder", ID: id}
		}
		if zone != domain.ZoneArchived {
			return &application.LifecycleError{ID: id, Err: application.ErrNotArchived}
		}

		var target *domain.ArchiveFolder
		if targetFolderID != nil {
			target, ok = idx.Archives.Folders[*targetFolderID]
			if !ok {
				return &application.NotFoundError{Kind: "archive folder", ID: *targetFolderID}
			}
		}
		if samePlacement(binder.ArchiveFolderID, targetFolderID) {
			entry = &domain.BinderEntry{ID: id, Binder: binder}
			return nil
		}

		oldPath := binder.SysPath
		newPath := domain.ArchivedBinderPath(v.root, binder.Name, target)
		if err := os.Rename(oldPath, newPath); err != nil {
			return fmt.Errorf("move binder between archive folders: %w", err)
		}

		binder.SysPath = newPath
		binder.AppPath = domain.ArchivedAppPath(binder.Name, target)
		binder.ArchiveFolderID = targetFolderID
		binder.UpdatedAt = v.now()
		binder.RewritePaths(oldPath, newPath)
		entry = &domain.BinderEntry{ID: id, Binder: binder}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func samePlacement(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Trash moves a binder from either zone into the trash directory and
// records the origin zone so Restore knows where to put it back. The
// archive placement is preserved on the entry, not cleared.
func (v *Vault) Trash(ctx context.Context, id string) error {
	return v.mutate(ctx, func(idx *domain.Index) error {
		binder, zone, ok := idx.FindBinder(id)
		if !ok {
			return &application.NotFoundError{Kind: "binder", ID: id}
		}

		oldPath := binder.SysPath
		newPath := domain.TrashPath(v.root, binder.Name)
		if err := os.Rename(oldPath, newPath); err != nil {
			return fmt.Errorf("move binder to trash: %w", err)
		}

		binder.SysPath = newPath
		binder.RewritePaths(oldPath, newPath)

		idx.Trash[id] = &domain.TrashEntry{
			Binder:          binder,
			ArchiveFolderID: binder.ArchiveFolderID,
			DeletedFrom:     string(zone),
			DeletedAt:       v.now(),
		}
		if zone == domain.ZoneActive {
			delete(idx.Active, id)
		} else {
			delete(idx.Archives.Binders, id)
		}
		return nil
	})
}

// TrashArchiveFolder moves an archive folder to the trash as a unit,
// together with every folder nested under it at any depth and every
// binder placed anywhere in the subtree. The group restores or purges
// as one.
func (v *Vault) TrashArchiveFolder(ctx context.Context, folderID string) error {
	return v.mutate(ctx, func(idx *domain.Index) error {
		folder, ok := idx.Archives.Folders[folderID]
		if !ok {
			return &application.NotFoundError{Kind: "archive folder", ID: folderID}
		}

		oldPath := folder.SysPath
		newPath := domain.TrashPath(v.root, folder.Name)
		if err := os.Rename(oldPath, newPath); err != nil {
			return fmt.Errorf("move archive folder to trash: %w", err)
		}

		entry := &domain.TrashEntry{
			Folder:      folder,
			Folders:     map[string]*domain.ArchiveFolder{},
			Binders:     map[string]*domain.Binder{},
			DeletedFrom: string(domain.ZoneArchived),
			DeletedAt:   v.now(),
		}
		folder.SysPath = newPath

		memberFolders := map[string]bool{folderID: true}
		for _, childID := range archiveSubtree(idx, folderID) {
			child := idx.Archives.Folders[childID]
			child.SysPath = domain.RewritePrefix(child.SysPath, oldPath, newPath)
			entry.Folders[childID] = child
			memberFolders[childID] = true
		}
		for childID := range entry.Folders {
			delete(idx.Archives.Folders, childID)
		}
		for binderID, binder := range idx.Archives.Binders {
			if binder.ArchiveFolderID == nil || !memberFolders[*binder.ArchiveFolderID] {
				continue
			}
			binderOld := binder.SysPath
			binder.SysPath = domain.RewritePrefix(binder.SysPath, oldPath, newPath)
			binder.RewritePaths(binderOld, binder.SysPath)
			entry.Binders[binderID] = binder
			delete(idx.Archives.Binders, binderID)
		}

		delete(idx.Archives.Folders, folderID)
		idx.Trash[folderID] = entry
		return nil
	})
}

// Restore puts a trash entry back in its origin zone. A binder deleted
// from an archive folder that no longer exists lands at the archive
// root instead; the same fallback applies to a folder group whose
// parent folder is gone.
func (v *Vault) Restore(ctx context.Context, id string) error {
	return v.mutate(ctx, func(idx *domain.Index) error {
		entry, ok := idx.Trash[id]
		if !ok {
			return &application.LifecycleError{ID: id, Err: application.ErrNotTrashed}
		}
		if entry.Folder != nil {
			return v.restoreFolderGroup(idx, id, entry)
		}
		return v.restoreBinder(idx, id, entry)
	})
}

func (v *Vault) restoreBinder(idx *domain.Index, id string, entry *domain.TrashEntry) error {
	binder := entry.Binder
	oldPath := binder.SysPath

	if entry.DeletedFrom == string(domain.ZoneActive) {
		newPath := domain.BinderPath(v.root, binder.Name)
		if err := os.Rename(oldPath, newPath); err != nil {
			return fmt.Errorf("restore binder: %w", err)
		}
		binder.SysPath = newPath
		binder.AppPath = domain.ActiveAppPath(binder.Name)
		binder.Archived = false
		binder.ArchivedAt = nil
		binder.ArchiveFolderID = nil
		binder.UpdatedAt = v.now()
		binder.RewritePaths(oldPath, newPath)
		idx.Active[id] = binder
		delete(idx.Trash, id)
		return nil
	}

	var folder *domain.ArchiveFolder
	placement := entry.ArchiveFolderID
	if placement != nil {
		folder = idx.Archives.Folders[*placement]
		if folder == nil {
			placement = nil
		}
	}
	newPath := domain.ArchivedBinderPath(v.root, binder.Name, folder)
	if err := os.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("restore binder: %w", err)
	}
	now := v.now()
	binder.SysPath = newPath
	binder.AppPath = domain.ArchivedAppPath(binder.Name, folder)
	binder.Archived = true
	if binder.ArchivedAt == nil {
		binder.ArchivedAt = &now
	}
	binder.ArchiveFolderID = placement
	binder.UpdatedAt = now
	binder.RewritePaths(oldPath, newPath)
	idx.Archives.Binders[id] = binder
	delete(idx.Trash, id)
	return nil
}

func (v *Vault) restoreFolderGroup(idx *domain.Index, id string, entry *domain.TrashEntry) error {
	folder := entry.Folder

	var parent *domain.ArchiveFolder
	if folder.ParentID != nil {
		parent = idx.Archives.Folders[*folder.ParentID]
		if parent == nil {
			folder.ParentID = nil
		}
	}

	oldPath := folder.SysPath
	newPath := domain.ArchiveFolderPath(v.root, folder.Name, parent)
	if err := os.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("restore archive folder: %w", err)
	}

	folder.SysPath = newPath
	folder.AppPath = domain.ArchivedAppPath(folder.Name, parent)
	folder.UpdatedAt = v.now()
	idx.Archives.Folders[id] = folder

	for childID, child := range entry.Folders {
		child.SysPath = domain.RewritePrefix(child.SysPath, oldPath, newPath)
		idx.Archives.Folders[childID] = child
	}
	// App paths rebuild parent before child once the whole subtree is
	// back in the table.
	for _, childID := range archiveSubtree(idx, id) {
		child := idx.Archives.Folders[childID]
		if parent := idx.Archives.Folders[*child.ParentID]; parent != nil {
			child.AppPath = parent.AppPath + "/" + child.Name
		}
	}
	for binderID, binder := range entry.Binders {
		binderOld := binder.SysPath
		binder.SysPath = domain.RewritePrefix(binder.SysPath, oldPath, newPath)
		binder.RewritePaths(binderOld, binder.SysPath)
		var home *domain.ArchiveFolder
		if binder.ArchiveFolderID != nil {
			home = idx.Archives.Folders[*binder.ArchiveFolderID]
		}
		binder.AppPath = domain.ArchivedAppPath(binder.Name, home)
		idx.Archives.Binders[binderID] = binder
	}

	delete(idx.Trash, id)
	return nil
}

// PurgeOne permanently deletes one trash entry. Like DeleteBinder, a
// failed directory removal is logged and the index entry is dropped
// anyway.
func (v *Vault) PurgeOne(ctx context.Context, id string) error {
	return v.mutate(ctx, func(idx *domain.Index) error {
		entry, ok := idx.Trash[id]
		if !ok {
			return &application.LifecycleError{ID: id, Err: application.ErrNotTrashed}
		}
		v.removeTrashDir(id, entry)
		delete(idx.Trash, id)
		return nil
	})
}

// PurgeAll empties the trash and reports how many entries were removed.
func (v *Vault) PurgeAll(ctx context.Context) (int, error) {
	var purged int
	err := v.mutate(ctx, func(idx *domain.Index) error {
		for id, entry := range idx.Trash {
			v.removeTrashDir(id, entry)
			purged++
		}
		idx.Trash = map[string]*domain.TrashEntry{}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return purged, nil
}

// removeTrashDir deletes the physical directory behind a trash entry.
// Child folders and binders of a folder group live inside the group's
// directory, so a single removal covers the whole unit.
func (v *Vault) removeTrashDir(id string, entry *domain.TrashEntry) {
	path := ""
	switch {
	case entry.Binder != nil:
		path = entry.Binder.SysPath
	case entry.Folder != nil:
		path = entry.Folder.SysPath
	}
	if path == "" {
		return
	}
	if err := os.RemoveAll(path); err != nil {
		v.log.Warn("could not remove trashed directory, continuing index cleanup",
			"entry", id, "path", path, "error", err)
	}
}
