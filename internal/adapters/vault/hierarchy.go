package vault

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"classiflyer/internal/application"
	"classiflyer/internal/domain"
	"classiflyer/internal/fileutil"
)

// CreateBinder creates the physical directory under <root>/classeurs and
// inserts the active record. The mkdir is recursive and idempotent.
func (v *Vault) CreateBinder(ctx context.Context, name string, colors domain.Colors) (*domain.BinderEntry, error) {
	name = strings.TrimSpace(name)
	if err := application.ValidateRequired("name", name); err != nil {
		return nil, err
	}

	var entry *domain.BinderEntry
	err := v.mutate(ctx, func(idx *domain.Index) error {
		dir := domain.BinderPath(v.root, name)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create binder directory: %w", err)
		}

		key := idx.AllocateBinderID()
		now := v.now()
		colors = colors.WithDefaults()
		binder := &domain.Binder{
			Name:           name,
			SysPath:        dir,
			AppPath:        domain.ActiveAppPath(name),
			PrimaryColor:   colors.Primary,
			SecondaryColor: colors.Secondary,
			TertiaryColor:  colors.Tertiary,
			Folders:        map[string]*domain.Folder{},
			Files:          []domain.FileRef{},
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		idx.Active[key] = binder
		entry = &domain.BinderEntry{ID: key, Binder: binder}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// CreateBinderFromFolder copies an existing directory tree into the
// managed location, then scans the copy to synthesize folder and file
// records with freshly minted keys. This is the one operation that
// derives index structure from the filesystem rather than the reverse.
func (v *Vault) CreateBinderFromFolder(ctx context.Context, name string, colors domain.Colors, sourcePath string) (*domain.BinderEntry, error) {
	name = strings.TrimSpace(name)
	if err := application.ValidateRequired("name", name); err != nil {
		return nil, err
	}
	if err := application.ValidateRequired("sourcePath", sourcePath); err != nil {
		return nil, err
	}
	sourcePath = fileutil.ExpandHome(sourcePath)

	var entry *domain.BinderEntry
	err := v.mutate(ctx, func(idx *domain.Index) error {
		dir := domain.BinderPath(v.root, name)
		if err := fileutil.CopyDir(sourcePath, dir); err != nil {
			return err
		}

		folders, files, err := v.scanTree(idx, dir)
		if err != nil {
			return fmt.Errorf("scan copied tree: %w", err)
		}

		key := idx.AllocateBinderID()
		now := v.now()
		colors = colors.WithDefaults()
		binder := &domain.Binder{
			Name:           name,
			SysPath:        dir,
			AppPath:        domain.ActiveAppPath(name),
			PrimaryColor:   colors.Primary,
			SecondaryColor: colors.Secondary,
			TertiaryColor:  colors.Tertiary,
			Folders:        folders,
			Files:          files,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		idx.Active[key] = binder
		entry = &domain.BinderEntry{ID: key, Binder: binder}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// scanTree walks a copied directory and synthesizes the index records
// for its contents. Directories become folders, regular files become
// file refs; ids come from the same counters as every other creation.
func (v *Vault) scanTree(idx *domain.Index, dir string) (map[string]*domain.Folder, []domain.FileRef, error) {
	folders, fileMap, err := v.scanDir(idx, dir)
	if err != nil {
		return nil, nil, err
	}
	// Binder-root files are an ordered sequence.
	files := make([]domain.FileRef, 0, len(fileMap))
	for id, f := range fileMap {
		f.ID = id
		files = append(files, f)
	}
	return folders, files, nil
}

func (v *Vault) scanDir(idx *domain.Index, dir string) (map[string]*domain.Folder, map[string]domain.FileRef, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}

	folders := map[string]*domain.Folder{}
	files := map[string]domain.FileRef{}
	for _, entry := range entries {
		entryPath := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			subFolders, subFiles, err := v.scanDir(idx, entryPath)
			if err != nil {
				return nil, nil, err
			}
			folders[idx.AllocateFolderID()] = &domain.Folder{
				Name:    entry.Name(),
				SysPath: entryPath,
				Folders: subFolders,
				Files:   subFiles,
			}
		} else {
			mime := domain.MimeForName(entry.Name())
			files[idx.AllocateFileID()] = domain.FileRef{
				Name:      entry.Name(),
				SysPath:   entryPath,
				Mime:      &mime,
				CreatedAt: v.now(),
			}
		}
	}
	return folders, files, nil
}

// GetBinder returns a binder from the active or archived zone.
func (v *Vault) GetBinder(ctx context.Context, id string) (*domain.BinderEntry, error) {
	var entry *domain.BinderEntry
	err := v.view(ctx, func(idx *domain.Index) error {
		binder, _, ok := idx.FindBinder(id)
		if !ok {
			return &application.NotFoundError{Kind: "binder", ID: id}
		}
		entry = &domain.BinderEntry{ID: id, Binder: binder}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// RenameBinder renames the physical directory and rewrites the binder's
// paths. A rename is a single syscall-level move: on failure the index
// is untouched and a RenameError is returned; a partial rename cannot
// happen. Renaming to the current name is a no-op.
func (v *Vault) RenameBinder(ctx context.Context, id, newName string) (*domain.BinderEntry, error) {
	newName = strings.TrimSpace(newName)
	if err := application.ValidateRequired("newName", newName); err != nil {
		return nil, err
	}

	var entry *domain.BinderEntry
	err := v.mutate(ctx, func(idx *domain.Index) error {
		binder, zone, ok := idx.FindBinder(id)
		if !ok {
			return &application.NotFoundError{Kind: "binder", ID: id}
		}
		if binder.Name == newName {
			entry = &domain.BinderEntry{ID: id, Binder: binder}
			return nil
		}

		oldPath := binder.SysPath
		newPath := domain.ChildPath(filepath.Dir(oldPath), newName)
		if err := os.Rename(oldPath, newPath); err != nil {
			return &application.RenameError{ID: id, NewName: newName, Err: err}
		}

		binder.Name = newName
		binder.SysPath = newPath
		if zone == domain.ZoneActive {
			binder.AppPath = domain.ActiveAppPath(newName)
		} else {
			var parent *domain.ArchiveFolder
			if binder.ArchiveFolderID != nil {
				parent = idx.Archives.Folders[*binder.ArchiveFolderID]
			}
			binder.AppPath = domain.ArchivedAppPath(newName, parent)
		}
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

// UpdateBinderColors changes display colors. Index-only: no filesystem
// mutation is involved.
func (v *Vault) UpdateBinderColors(ctx context.Context, id string, colors domain.Colors) (*domain.BinderEntry, error) {
	var entry *domain.BinderEntry
	err := v.mutate(ctx, func(idx *domain.Index) error {
		binder, _, ok := idx.FindBinder(id)
		if !ok {
			return &application.NotFoundError{Kind: "binder", ID: id}
		}
		binder.SetColors(colors)
		binder.UpdatedAt = v.now()
		entry = &domain.BinderEntry{ID: id, Binder: binder}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// DeleteBinder permanently removes a binder from either zone. Filesystem
// removal errors are logged and ignored so index cleanup still proceeds:
// the contract favors eventually-consistent index state over blocking
// the user on an unremovable directory.
func (v *Vault) DeleteBinder(ctx context.Context, id string) error {
	return v.mutate(ctx, func(idx *domain.Index) error {
		binder, zone, ok := idx.FindBinder(id)
		if !ok {
			return &application.NotFoundError{Kind: "binder", ID: id}
		}

		if binder.SysPath != "" {
			if err := os.RemoveAll(binder.SysPath); err != nil {
				v.log.Warn("could not remove binder directory, continuing index cleanup",
					"binder", id, "path", binder.SysPath, "error", err)
			}
		}

		if zone == domain.ZoneActive {
			delete(idx.Active, id)
		} else {
			delete(idx.Archives.Binders, id)
		}
		return nil
	})
}

// CreateFolder creates a directory under the binder root or under the
// parent folder's path, and inserts the folder record.
func (v *Vault) CreateFolder(ctx context.Context, binderID, name string, parentFolderID *string) (string, *domain.Folder, error) {
	name = strings.TrimSpace(name)
	if err := application.ValidateRequired("name", name); err != nil {
		return "", nil, err
	}
	if err := application.ValidateRequired("binderID", binderID); err != nil {
		return "", nil, err
	}

	var key string
	var created *domain.Folder
	err := v.mutate(ctx, func(idx *domain.Index) error {
		binder, _, ok := idx.FindBinder(binderID)
		if !ok {
			return &application.NotFoundError{Kind: "binder", ID: binderID}
		}

		parentPath := binder.SysPath
		if parentFolderID != nil {
			parent, _, ok := binder.FindFolder(*parentFolderID)
			if !ok {
				return &application.NotFoundError{Kind: "folder", ID: *parentFolderID}
			}
			parentPath = parent.SysPath
		}

		dir := domain.ChildPath(parentPath, name)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create folder directory: %w", err)
		}

		key = idx.AllocateFolderID()
		created = &domain.Folder{
			Name:    name,
			SysPath: dir,
			Folders: map[string]*domain.Folder{},
			Files:   map[string]domain.FileRef{},
		}
		if parentFolderID != nil {
			parent, _, _ := binder.FindFolder(*parentFolderID)
			parent.Folders[key] = created
		} else {
			binder.Folders[key] = created
		}
		binder.UpdatedAt = v.now()
		return nil
	})
	if err != nil {
		return "", nil, err
	}
	return key, created, nil
}

// RenameFolder renames the physical directory and rewrites the folder's
// subtree paths. Same single-syscall discipline as RenameBinder.
func (v *Vault) RenameFolder(ctx context.Context, binderID, folderID, newName string) (*domain.Folder, error) {
	newName = strings.TrimSpace(newName)
	if err := application.ValidateRequired("newName", newName); err != nil {
		return nil, err
	}

	var renamed *domain.Folder
	err := v.mutate(ctx, func(idx *domain.Index) error {
		binder, _, ok := idx.FindBinder(binderID)
		if !ok {
			return &application.NotFoundError{Kind: "binder", ID: binderID}
		}
		folder, _, ok := binder.FindFolder(folderID)
		if !ok {
			return &application.NotFoundError{Kind: "folder", ID: folderID}
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

		folder.Name = newName
		folder.RewritePaths(oldPath, newPath)
		binder.UpdatedAt = v.now()
		renamed = folder
		return nil
	})
	if err != nil {
		return nil, err
	}
	return renamed, nil
}

// DeleteFolder removes the physical subtree recursively, then deletes
// the index subtree in one step.
func (v *Vault) DeleteFolder(ctx context.Context, binderID, folderID string) error {
	return v.mutate(ctx, func(idx *domain.Index) error {
		binder, _, ok := idx.FindBinder(binderID)
		if !ok {
			return &application.NotFoundError{Kind: "binder", ID: binderID}
		}
		folder, owner, ok := binder.FindFolder(folderID)
		if !ok {
			return &application.NotFoundError{Kind: "folder", ID: folderID}
		}

		if err := os.RemoveAll(folder.SysPath); err != nil {
			return fmt.Errorf("remove folder directory: %w", err)
		}

		delete(owner, folderID)
		binder.UpdatedAt = v.now()
		return nil
	})
}

// UploadFiles copies each source file (never moves: the source is
// user-external) into the binder root or the target folder, allocating a
// file id per success. Per-file failures are logged and skipped; the
// batch returns whatever subset succeeded.
func (v *Vault) UploadFiles(ctx context.Context, binderID string, targetFolderID *string, sources []string) ([]domain.FileRef, error) {
	if err := application.ValidateRequired("binderID", binderID); err != nil {
		return nil, err
	}

	var saved []domain.FileRef
	err := v.mutate(ctx, func(idx *domain.Index) error {
		binder, _, ok := idx.FindBinder(binderID)
		if !ok {
			return &application.NotFoundError{Kind: "binder", ID: binderID}
		}

		var targetFolder *domain.Folder
		destDir := binder.SysPath
		if targetFolderID != nil {
			folder, _, ok := binder.FindFolder(*targetFolderID)
			if !ok {
				return &application.NotFoundError{Kind: "folder", ID: *targetFolderID}
			}
			targetFolder = folder
			destDir = folder.SysPath
		}
		if err := os.MkdirAll(destDir, 0755); err != nil {
			return fmt.Errorf("create destination directory: %w", err)
		}

		for _, src := range sources {
			src = fileutil.ExpandHome(src)
			base := filepath.Base(src)
			dest := domain.ChildPath(destDir, base)
			if err := fileutil.CopyFile(src, dest); err != nil {
				v.log.Warn("skipping file in upload batch", "source", src, "error", err)
				continue
			}

			mime := domain.MimeForName(base)
			ref := domain.FileRef{
				Name:      base,
				SysPath:   dest,
				Mime:      &mime,
				CreatedAt: v.now(),
			}
			id := idx.AllocateFileID()
			if targetFolder != nil {
				targetFolder.Files[id] = ref
			} else {
				ref.ID = id
				binder.Files = append(binder.Files, ref)
			}
			ref.ID = id
			saved = append(saved, ref)
		}
		binder.UpdatedAt = v.now()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}
