package vault

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"classiflyer/internal/application"
	"classiflyer/internal/domain"
)

// CreateArchiveFolder creates a directory at the archive root, or under
// the parent folder when one is given, and inserts the flat record.
func (v *Vault) CreateArchiveFolder(ctx context.Context, name string, parentID *string) (*domain.ArchiveFolder, error) {
	name = strings.TrimSpace(name)
	if err := application.ValidateRequired("name", name); err != nil {
		return nil, err
	}

	var created *domain.ArchiveFolder
	err := v.mutate(ctx, func(idx *domain.Index) error {
		var parent *domain.ArchiveFolder
		if parentID != nil {
			var ok bool
			parent, ok = idx.Archives.Folders[*parentID]
			if !ok {
				return &application.NotFoundError{Kind: "archive folder", ID: *parentID}
			}
		}

		dir := domain.ArchiveFolderPath(v.root, name, parent)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create archive folder directory: %w", err)
		}

		key := idx.AllocateArchiveFolderID()
		now := v.now()
		created = &domain.ArchiveFolder{
			ID:        key,
			Name:      name,
			SysPath:   dir,
			AppPath:   domain.ArchivedAppPath(name, parent),
			ParentID:  parentID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		idx.Archives.Folders[key] = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RenameArchiveFolder renames the physical directory and rewrites the
// paths of everything placed inside: child folders and archived binders
// with their subtrees.
func (v *Vault) RenameArchiveFolder(ctx context.Context, folderID, newName string) (*domain.ArchiveFolder, error) {
	newName = strings.TrimSpace(newName)
	if err := application.ValidateRequired("newName", newName); err != nil {
		return nil, err
	}

	var renamed *domain.ArchiveFolder
	err := v.mutate(ctx, func(idx *domain.Index) error {
		folder, ok := idx.Archives.Folders[folderID]
		if !ok {
			return &application.NotFoundError{Kind: "archive folder", ID: folderID}
		}
		if folder.Name == newName {
			renamed = folder
			return nil
		}

		oldPath := folder.SysPath
		newPath := domain.ChildPath(filepath.Dir(oldPath), newName)
		if err := os.Rename(oldPath, newPath); err != nil {
			return &application.RenameError{ID: folderID, NewName: newName, Err: err}
		}

		var parent *domain.ArchiveFolder
		if folder.ParentID != nil {
			parent = idx.Archives.Folders[*folder.ParentID]
		}
		folder.Name = newName
		folder.SysPath = newPath
		folder.AppPath = domain.ArchivedAppPath(newName, parent)
		folder.UpdatedAt = v.now()
		v.rewriteArchiveSubtree(idx, folder.ID, oldPath, newPath)
		renamed = folder
		return nil
	})
	if err != nil {
		return nil, err
	}
	return renamed, nil
}

// archiveSubtree returns every folder nested under folderID in the
// flat table, parent before child, so app_paths can be rebuilt on
// already-refreshed parents. folderID itself is not included.
func archiveSubtree(idx *domain.Index, folderID string) []string {
	var subtree []string
	queue := []string{folderID}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		for _, childID := range idx.ChildArchiveFolders(next) {
			subtree = append(subtree, childID)
			queue = append(queue, childID)
		}
	}
	return subtree
}

// rewriteArchiveSubtree fixes the paths of everything placed under a
// moved archive folder: nested folders at any depth, and binders whose
// placement lands inside the subtree.
func (v *Vault) rewriteArchiveSubtree(idx *domain.Index, folderID, oldPrefix, newPrefix string) {
	members := map[string]bool{folderID: true}
	for _, id := range archiveSubtree(idx, folderID) {
		f := idx.Archives.Folders[id]
		f.SysPath = domain.RewritePrefix(f.SysPath, oldPrefix, newPrefix)
		if parent := idx.Archives.Folders[*f.ParentID]; parent != nil {
			f.AppPath = parent.AppPath + "/" + f.Name
		}
		members[id] = true
	}
	for _, b := range idx.Archives.Binders {
		if b.ArchiveFolderID == nil || !members[*b.ArchiveFolderID] {
			continue
		}
		binderOld := b.SysPath
		b.SysPath = domain.RewritePrefix(b.SysPath, oldPrefix, newPrefix)
		b.RewritePaths(binderOld, b.SysPath)
		if home := idx.Archives.Folders[*b.ArchiveFolderID]; home != nil {
			b.AppPath = domain.ArchivedAppPath(b.Name, home)
		}
	}
}

// DeleteArchiveFolder permanently removes an archive folder, its direct
// child folders, and every binder placed in any of them. The physical
// tree goes in one recursive removal; the index records are deleted
// afterwards.
func (v *Vault) DeleteArchiveFolder(ctx context.Context, folderID string) error {
	return v.mutate(ctx, func(idx *domain.Index) error {
		folder, ok := idx.Archives.Folders[folderID]
		if !ok {
			return &application.NotFoundError{Kind: "archive folder", ID: folderID}
		}

		if err := os.RemoveAll(folder.SysPath); err != nil {
			return fmt.Errorf("remove archive folder directory: %w", err)
		}

		members := map[string]bool{folderID: true}
		for _, childID := range idx.ChildArchiveFolders(folderID) {
			members[childID] = true
			delete(idx.Archives.Folders, childID)
		}
		for binderID, binder := range idx.Archives.Binders {
			if binder.ArchiveFolderID != nil && members[*binder.ArchiveFolderID] {
				delete(idx.Archives.Binders, binderID)
			}
		}
		delete(idx.Archives.Folders, folderID)
		return nil
	})
}
