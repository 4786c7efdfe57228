package application

import "classiflyer/internal/domain"

// Re-export key types for use by adapters
type KeyType = domain.KeyType

const (
	KeyTypeUnknown       = domain.KeyTypeUnknown
	KeyTypeBinder        = domain.KeyTypeBinder
	KeyTypeFolder        = domain.KeyTypeFolder
	KeyTypeFile          = domain.KeyTypeFile
	KeyTypeArchiveFolder = domain.KeyTypeArchiveFolder
)

// Re-export domain types for use by adapters
type (
	Binder        = domain.Binder
	BinderEntry   = domain.BinderEntry
	Folder        = domain.Folder
	FileRef       = domain.FileRef
	ArchiveFolder = domain.ArchiveFolder
	TrashEntry    = domain.TrashEntry
	Colors        = domain.Colors
	SearchResult  = domain.SearchResult
)

// ParseKeyType determines the entity kind of an index key
func ParseKeyType(key string) KeyType {
	return domain.ParseKeyType(key)
}
