package domain

// IndexNode is one row of the derived search index: a binder, folder,
// file, or archive folder flattened out of the JSON index.
type IndexNode struct {
	Path     string
	EntityID string
	Kind     KeyType
	Zone     Zone
	Name     string
	Mtime    int64
}

// SearchResult is a search match over the derived index.
type SearchResult struct {
	Kind     KeyType
	EntityID string
	Zone     Zone
	Name     string
	Path     string
}

// SyncStats reports what a search index rebuild did.
type SyncStats struct {
	NodesIndexed int
	DurationMs   int64
}
