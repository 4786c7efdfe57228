package domain

// SchemaVersion is the current version of the persisted index document.
// Unversioned documents written before the version field existed are
// treated as version 0 and migrated on load.
const SchemaVersion = 1

// Settings mirrors the active root inside the index so the file stays
// meaningful on its own when copied elsewhere.
type Settings struct {
	RootPath string `json:"rootPath"`
}

// Counters holds the per-entity-kind id counters. Strictly increasing,
// never reused even after deletion.
type Counters struct {
	Binders        int `json:"classeurs"`
	Folders        int `json:"dossiers"`
	Files          int `json:"fichiers"`
	ArchiveFolders int `json:"archiveFolders"`
}

// Archives groups the archived zone: a flat folder table forming a tree
// via ParentID, and the archived binders.
type Archives struct {
	Folders map[string]*ArchiveFolder `json:"folders"`
	Binders map[string]*Binder        `json:"classeurs"`
}

// Index is the single JSON document that is the authoritative logical
// state of the hierarchy.
type Index struct {
	Version  int                    `json:"version"`
	Settings Settings               `json:"settings"`
	NextID   Counters               `json:"nextId"`
	Active   map[string]*Binder     `json:"mes_classeurs"`
	Archives Archives               `json:"archives"`
	Trash    map[string]*TrashEntry `json:"corbeille"`
}

// NewIndex returns the first-run index document for a root directory.
func NewIndex(rootPath string) *Index {
	return &Index{
		Version:  SchemaVersion,
		Settings: Settings{RootPath: rootPath},
		NextID: Counters{
			Binders:        1,
			Folders:        1,
			Files:          1,
			ArchiveFolders: 1,
		},
		Active: map[string]*Binder{},
		Archives: Archives{
			Folders: map[string]*ArchiveFolder{},
			Binders: map[string]*Binder{},
		},
		Trash: map[string]*TrashEntry{},
	}
}

// AllocateBinderID mints the next binder key.
func (idx *Index) AllocateBinderID() string {
	id := idx.NextID.Binders
	idx.NextID.Binders++
	return BinderKey(id)
}

// AllocateFolderID mints the next folder key.
func (idx *Index) AllocateFolderID() string {
	id := idx.NextID.Folders
	idx.NextID.Folders++
	return FolderKey(id)
}

// AllocateFileID mints the next file key.
func (idx *Index) AllocateFileID() string {
	id := idx.NextID.Files
	idx.NextID.Files++
	return FileKey(id)
}

// AllocateArchiveFolderID mints the next archive folder key.
func (idx *Index) AllocateArchiveFolderID() string {
	id := idx.NextID.ArchiveFolders
	idx.NextID.ArchiveFolders++
	return ArchiveFolderKey(id)
}

// FindBinder looks a binder up in the active zone first, then the
// archived zone. Trashed binders are excluded from normal lookups.
func (idx *Index) FindBinder(id string) (*Binder, Zone, bool) {
	if b, ok := idx.Active[id]; ok {
		return b, ZoneActive, true
	}
	if b, ok := idx.Archives.Binders[id]; ok {
		return b, ZoneArchived, true
	}
	return nil, "", false
}

// FindFolder searches a binder's folder tree by key, returning the
// folder and the map that owns it (for deletion and re-keying).
func (b *Binder) FindFolder(folderID string) (*Folder, map[string]*Folder, bool) {
	return findFolder(b.Folders, folderID)
}

func findFolder(folders map[string]*Folder, folderID string) (*Folder, map[string]*Folder, bool) {
	if f, ok := folders[folderID]; ok {
		return f, folders, true
	}
	for _, f := range folders {
		if found, owner, ok := findFolder(f.Folders, folderID); ok {
			return found, owner, ok
		}
	}
	return nil, nil, false
}

// ChildArchiveFolders returns the direct children of an archive folder.
func (idx *Index) ChildArchiveFolders(folderID string) []string {
	var children []string
	for key, f := range idx.Archives.Folders {
		if f.ParentID != nil && *f.ParentID == folderID {
			children = append(children, key)
		}
	}
	return children
}

// BindersInArchiveFolder returns the keys of archived binders directly
// inside the given archive folder.
func (idx *Index) BindersInArchiveFolder(folderID string) []string {
	var keys []string
	for key, b := range idx.Archives.Binders {
		if b.ArchiveFolderID != nil && *b.ArchiveFolderID == folderID {
			keys = append(keys, key)
		}
	}
	return keys
}
