package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// KeyType identifies which entity kind an index key refers to.
type KeyType int

const (
	KeyTypeUnknown KeyType = iota
	KeyTypeBinder
	KeyTypeFolder
	KeyTypeFile
	KeyTypeArchiveFolder
)

func (t KeyType) String() string {
	switch t {
	case KeyTypeBinder:
		return "binder"
	case KeyTypeFolder:
		return "folder"
	case KeyTypeFile:
		return "file"
	case KeyTypeArchiveFolder:
		return "archive folder"
	default:
		return "unknown"
	}
}

const (
	binderKeyPrefix        = "classeur_"
	folderKeyPrefix        = "dossier_"
	fileKeyPrefix          = "file_"
	archiveFolderKeyPrefix = "archive_folder_"
)

// BinderKey formats the index key for binder number n.
func BinderKey(n int) string {
	return fmt.Sprintf("%s%d", binderKeyPrefix, n)
}

// FolderKey formats the index key for folder number n.
func FolderKey(n int) string {
	return fmt.Sprintf("%s%d", folderKeyPrefix, n)
}

// FileKey formats the index key for file number n.
func FileKey(n int) string {
	return fmt.Sprintf("%s%d", fileKeyPrefix, n)
}

// ArchiveFolderKey formats the index key for archive folder number n.
func ArchiveFolderKey(n int) string {
	return fmt.Sprintf("%s%d", archiveFolderKeyPrefix, n)
}

// ParseKeyType determines the entity kind of an index key. Beyond
// counter-minted keys like dossier_7, legacy indexes carry keys minted
// from a timestamp plus a random suffix (dossier_1700000000000_k3x), so
// the rest after the prefix only needs to start with a digit.
// Archive folder keys must be checked first: archive_folder_ would
// otherwise never match, but neither prefix is a prefix of the other.
func ParseKeyType(key string) KeyType {
	switch {
	case hasKeySuffix(key, archiveFolderKeyPrefix):
		return KeyTypeArchiveFolder
	case hasKeySuffix(key, binderKeyPrefix):
		return KeyTypeBinder
	case hasKeySuffix(key, folderKeyPrefix):
		return KeyTypeFolder
	case hasKeySuffix(key, fileKeyPrefix):
		return KeyTypeFile
	default:
		return KeyTypeUnknown
	}
}

// KeyNumber extracts the first numeric segment of a key, or 0 when
// absent. Legacy keys minted from timestamps yield the timestamp and
// sort after counter-minted ones, which is acceptable for display
// ordering.
func KeyNumber(key string) int {
	for _, part := range strings.Split(key, "_") {
		if n, err := strconv.Atoi(part); err == nil {
			return n
		}
	}
	return 0
}

func hasKeySuffix(key, prefix string) bool {
	if !strings.HasPrefix(key, prefix) {
		return false
	}
	rest := key[len(prefix):]
	return rest != "" && rest[0] >= '0' && rest[0] <= '9'
}
