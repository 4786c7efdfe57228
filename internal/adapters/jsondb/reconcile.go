package jsondb

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"classiflyer/internal/domain"
)

// reconcile scans <root>/archives for physical directories with no
// matching index record and reintegrates them as archived binders. This
// heals the window where a crash landed between the filesystem move of
// an archive transition and the index write.
//
// Directories belonging to known archive folders are skipped: archive
// folders live in the same directory but are tracked in a separate
// table, and treating one as an orphaned binder is exactly the
// mis-sync the old heuristic-based listing tried to paper over.
func (s *Store) reconcile(idx *domain.Index) (bool, error) {
	archivesDir := filepath.Join(s.rootPath, domain.DirArchives)
	entries, err := os.ReadDir(archivesDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	changed := false
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		dirPath := filepath.Join(archivesDir, name)

		if isArchiveFolderDir(idx, name, dirPath) {
			continue
		}
		if archivedBinderExists(idx, name, dirPath) {
			continue
		}

		s.rescueOrphan(idx, name, dirPath)
		changed = true
	}
	return changed, nil
}

func isArchiveFolderDir(idx *domain.Index, name, dirPath string) bool {
	for _, f := range idx.Archives.Folders {
		if f.SysPath == dirPath {
			return true
		}
		if f.ParentID == nil && f.Name == name {
			return true
		}
	}
	return false
}

func archivedBinderExists(idx *domain.Index, name, dirPath string) bool {
	for _, b := range idx.Archives.Binders {
		if b.Name == name || b.SysPath == dirPath {
			return true
		}
	}
	return false
}

// rescueOrphan synthesizes an archived binder record for a physical
// directory. When a same-named binder exists in the active zone, its
// record (colors, folders, files, timestamps) is recovered and removed
// from there: the physical location proves it is archived.
func (s *Store) rescueOrphan(idx *domain.Index, name, dirPath string) {
	now := time.Now().UnixMilli()

	var key string
	var binder *domain.Binder
	for activeKey, active := range idx.Active {
		if active.Name == name {
			key = activeKey
			binder = active
			delete(idx.Active, activeKey)
			break
		}
	}

	if binder != nil {
		oldPath := binder.SysPath
		binder.SysPath = dirPath
		binder.AppPath = domain.ArchivedAppPath(name, nil)
		binder.Archived = true
		binder.ArchivedAt = &now
		binder.UpdatedAt = now
		binder.ArchiveFolderID = nil
		binder.RewritePaths(oldPath, dirPath)
	} else {
		key = idx.AllocateBinderID()
		colors := domain.RescuedColors()
		binder = &domain.Binder{
			Name:           name,
			SysPath:        dirPath,
			AppPath:        domain.ArchivedAppPath(name, nil),
			PrimaryColor:   colors.Primary,
			SecondaryColor: colors.Secondary,
			TertiaryColor:  colors.Tertiary,
			Folders:        map[string]*domain.Folder{},
			Files:          []domain.FileRef{},
			Archived:       true,
			ArchivedAt:     &now,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
	}

	s.log.Info("reintegrated orphaned binder", "name", name, "key", key)
	idx.Archives.Binders[key] = binder
}
