package domain

import (
	"sort"
	"strings"
)

// Zone is the mutually exclusive lifecycle state of a binder.
type Zone string

const (
	ZoneActive   Zone = "mes"
	ZoneArchived Zone = "archives"
	ZoneTrashed  Zone = "corbeille"
)

// Colors holds the three display colors of a binder.
type Colors struct {
	Primary   string
	Secondary string
	Tertiary  string
}

// DefaultColors returns the colors applied when a binder is created
// without explicit ones.
func DefaultColors() Colors {
	return Colors{
		Primary:   "#0ea5e9",
		Secondary: "#38bdf8",
		Tertiary:  "#0b1220",
	}
}

// RescuedColors returns the colors applied to binders synthesized by
// orphan reconciliation, when no prior record exists to recover from.
func RescuedColors() Colors {
	return Colors{
		Primary:   "#ffffff",
		Secondary: "#3b82f6",
		Tertiary:  "#0b1220",
	}
}

// WithDefaults fills empty fields from DefaultColors.
func (c Colors) WithDefaults() Colors {
	d := DefaultColors()
	if strings.TrimSpace(c.Primary) == "" {
		c.Primary = d.Primary
	}
	if strings.TrimSpace(c.Secondary) == "" {
		c.Secondary = d.Secondary
	}
	if strings.TrimSpace(c.Tertiary) == "" {
		c.Tertiary = d.Tertiary
	}
	return c
}

// FileRef is a managed file inside a binder or folder.
// ID is set only for binder-root files, which are kept as an ordered
// sequence for wire compatibility with existing index files.
type FileRef struct {
	ID        string  `json:"id,omitempty"`
	Name      string  `json:"name"`
	SysPath   string  `json:"sys_path"`
	Mime      *string `json:"mime"`
	CreatedAt int64   `json:"createdAt"`
}

// Folder is a nested grouping inside a binder. The tree is arbitrarily
// deep; children inherit their sys_path from the parent.
type Folder struct {
	Name    string             `json:"name"`
	SysPath string             `json:"sys_path"`
	Folders map[string]*Folder `json:"folders"`
	Files   map[string]FileRef `json:"files"`
}

// Binder (classeur) is the top-level organizational unit, mapping 1:1 to
// a managed directory. SysPath always reflects the binder's current
// physical location and is rewritten with every move.
type Binder struct {
	Name            string             `json:"name"`
	SysPath         string             `json:"sys_path"`
	AppPath         string             `json:"app_path"`
	PrimaryColor    string             `json:"primaryColor"`
	SecondaryColor  string             `json:"secondaryColor"`
	TertiaryColor   string             `json:"tertiaryColor"`
	Folders         map[string]*Folder `json:"folders"`
	Files           []FileRef          `json:"files"`
	Archived        bool               `json:"archived"`
	ArchiveFolderID *string            `json:"archiveFolderId,omitempty"`
	CreatedAt       int64              `json:"createdAt"`
	UpdatedAt       int64              `json:"updatedAt"`
	ArchivedAt      *int64             `json:"archivedAt,omitempty"`
}

// Colors returns the binder's display colors.
func (b *Binder) Colors() Colors {
	return Colors{
		Primary:   b.PrimaryColor,
		Secondary: b.SecondaryColor,
		Tertiary:  b.TertiaryColor,
	}
}

// SetColors applies non-empty fields of c to the binder.
func (b *Binder) SetColors(c Colors) {
	if strings.TrimSpace(c.Primary) != "" {
		b.PrimaryColor = c.Primary
	}
	if strings.TrimSpace(c.Secondary) != "" {
		b.SecondaryColor = c.Secondary
	}
	if strings.TrimSpace(c.Tertiary) != "" {
		b.TertiaryColor = c.Tertiary
	}
}

// ArchiveFolder is an organizational grouping for archived binders only.
// The flat table in the index forms a tree via ParentID.
type ArchiveFolder struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	SysPath   string  `json:"sys_path"`
	AppPath   string  `json:"app_path"`
	ParentID  *string `json:"parentId"`
	CreatedAt int64   `json:"createdAt"`
	UpdatedAt int64   `json:"updatedAt"`
}

// TrashEntry wraps a binder, or an archive folder together with its
// binders, awaiting restore or purge. DeletedFrom records the origin
// zone so restore knows where to put things back.
type TrashEntry struct {
	Binder          *Binder                   `json:"classeur,omitempty"`
	Folder          *ArchiveFolder            `json:"folder,omitempty"`
	Folders         map[string]*ArchiveFolder `json:"folders,omitempty"`
	Binders         map[string]*Binder        `json:"classeurs,omitempty"`
	ArchiveFolderID *string                   `json:"archiveFolderId,omitempty"`
	DeletedFrom     string                    `json:"deletedFrom"`
	DeletedAt       int64                     `json:"deletedAt"`
}

// BinderEntry pairs a binder with its index key, for listings.
type BinderEntry struct {
	ID string
	*Binder
}

// TrashListing pairs a trash entry with its index key.
type TrashListing struct {
	ID string
	*TrashEntry
}

// SortBinderEntries sorts listings by key number in ascending order.
func SortBinderEntries(entries []BinderEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return KeyNumber(entries[i].ID) < KeyNumber(entries[j].ID)
	})
}

// SortArchiveFolders sorts archive folders by key number.
func SortArchiveFolders(folders []*ArchiveFolder) {
	sort.Slice(folders, func(i, j int) bool {
		return KeyNumber(folders[i].ID) < KeyNumber(folders[j].ID)
	})
}

// SortTrashListings sorts trash listings by deletion time, oldest first.
func SortTrashListings(entries []TrashListing) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].DeletedAt < entries[j].DeletedAt
	})
}
