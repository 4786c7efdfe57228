package domain

import (
	"path/filepath"
	"strings"
)

// Standard subdirectories of the configured root. They must exist before
// any other operation runs.
const (
	DirClasseurs = "classeurs"
	DirArchives  = "archives"
	DirCorbeille = "corbeille"
	DirUploads   = "uploads"
)

// IndexFileName is the name of the JSON index file under the root.
const IndexFileName = "db.json"

// BinderPath returns the physical location of an active binder.
func BinderPath(root, name string) string {
	return filepath.Join(root, DirClasseurs, name)
}

// ArchivedBinderPath returns the physical location of an archived binder,
// inside the archive folder's directory when one is given.
func ArchivedBinderPath(root, name string, folder *ArchiveFolder) string {
	if folder != nil {
		return filepath.Join(folder.SysPath, name)
	}
	return filepath.Join(root, DirArchives, name)
}

// ArchiveFolderPath returns the physical location of an archive folder,
// nested under its parent when one is given.
func ArchiveFolderPath(root, name string, parent *ArchiveFolder) string {
	if parent != nil {
		return filepath.Join(parent.SysPath, name)
	}
	return filepath.Join(root, DirArchives, name)
}

// TrashPath returns the physical location of a trashed entity.
func TrashPath(root, name string) string {
	return filepath.Join(root, DirCorbeille, name)
}

// ChildPath returns the physical location of a child entity. Child paths
// are always inherited from the parent, never recomputed independently,
// so a parent move only needs a prefix rewrite over descendants.
func ChildPath(parentSysPath, childName string) string {
	return filepath.Join(parentSysPath, childName)
}

// ActiveAppPath returns the virtual display path of an active binder.
func ActiveAppPath(name string) string {
	return "/mes_classeurs/" + name
}

// ArchivedAppPath returns the virtual display path of an archived binder
// or archive folder.
func ArchivedAppPath(name string, parent *ArchiveFolder) string {
	if parent != nil {
		return parent.AppPath + "/" + name
	}
	return "/archives/" + name
}

// RewritePaths replaces oldPrefix with newPrefix in the sys_path of the
// binder's entire subtree, depth-first over nested folders then files.
// A no-op when oldPrefix equals newPrefix, and idempotent: entries whose
// path no longer starts with oldPrefix are left alone.
func (b *Binder) RewritePaths(oldPrefix, newPrefix string) {
	if oldPrefix == newPrefix {
		return
	}
	rewriteFolderPaths(b.Folders, oldPrefix, newPrefix)
	for i := range b.Files {
		b.Files[i].SysPath = RewritePrefix(b.Files[i].SysPath, oldPrefix, newPrefix)
	}
}

// RewritePaths applies the same prefix rewrite to a folder subtree.
func (f *Folder) RewritePaths(oldPrefix, newPrefix string) {
	if oldPrefix == newPrefix {
		return
	}
	f.SysPath = RewritePrefix(f.SysPath, oldPrefix, newPrefix)
	rewriteFolderPaths(f.Folders, oldPrefix, newPrefix)
	rewriteFilePaths(f.Files, oldPrefix, newPrefix)
}

func rewriteFolderPaths(folders map[string]*Folder, oldPrefix, newPrefix string) {
	for _, folder := range folders {
		if strings.HasPrefix(folder.SysPath, oldPrefix) {
			folder.SysPath = RewritePrefix(folder.SysPath, oldPrefix, newPrefix)
			rewriteFolderPaths(folder.Folders, oldPrefix, newPrefix)
			rewriteFilePaths(folder.Files, oldPrefix, newPrefix)
		}
	}
}

func rewriteFilePaths(files map[string]FileRef, oldPrefix, newPrefix string) {
	for id, file := range files {
		if strings.HasPrefix(file.SysPath, oldPrefix) {
			file.SysPath = RewritePrefix(file.SysPath, oldPrefix, newPrefix)
			files[id] = file
		}
	}
}

// RewritePrefix replaces oldPrefix with newPrefix in a single path,
// leaving paths outside the prefix alone.
func RewritePrefix(path, oldPrefix, newPrefix string) string {
	if !strings.HasPrefix(path, oldPrefix) {
		return path
	}
	return newPrefix + path[len(oldPrefix):]
}
