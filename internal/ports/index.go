package ports

import "classiflyer/internal/domain"

// SearchIndex provides cached search over the hierarchy. It is derived
// from the JSON index and never authoritative; a stale or missing cache
// is rebuilt, never trusted over the index file.
type SearchIndex interface {
	// Lifecycle
	Open(rootPath string) error
	Close() error

	// Sync
	NeedsFullRebuild() bool
	SyncFull(idx *domain.Index) (*domain.SyncStats, error)

	// Queries
	Search(query string) ([]domain.SearchResult, error)
	GetNode(path string) (*domain.IndexNode, error)
}
