package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"classiflyer/internal/domain"
	"classiflyer/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

const schemaVersion = "1"

// Index implements ports.SearchIndex over SQLite. The database is a
// derived cache flattened out of the JSON index: it is dropped and
// rebuilt on any mismatch, never repaired, and never consulted as a
// source of truth.
type Index struct {
	db       *sql.DB
	rootPath string
	dbPath   string
}

// Ensure Index implements SearchIndex
var _ ports.SearchIndex = (*Index)(nil)

// NewIndex creates a new SQLite search index
func NewIndex() *Index {
	return &Index{}
}

// Open initializes the index for the given root path
func (idx *Index) Open(rootPath string) error {
	idx.rootPath = rootPath
	idx.dbPath = databasePath(rootPath)

	if err := os.MkdirAll(filepath.Dir(idx.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite3", idx.dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA cache_size = -64000;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS nodes (
			path TEXT PRIMARY KEY,
			entity_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			zone TEXT NOT NULL,
			name TEXT NOT NULL,
			mtime INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_nodes_entity_id ON nodes(entity_id);
		CREATE INDEX IF NOT EXISTS idx_nodes_name ON nodes(name);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if err := idx.updateMeta(); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// NeedsFullRebuild returns true if the cache should be fully rebuilt
func (idx *Index) NeedsFullRebuild() bool {
	var version, rootHash string

	idx.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&version)
	idx.db.QueryRow("SELECT value FROM meta WHERE key = 'root_path_hash'").Scan(&rootHash)

	return version != schemaVersion || rootHash != hashRootPath(idx.rootPath)
}

// databasePath returns the path for the SQLite database
func databasePath(rootPath string) string {
	// XDG data directory
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "classiflyer", hashRootPath(rootPath)+".db")
}

// hashRootPath returns a short hash of the root path, used to keep one
// cache file per managed root.
func hashRootPath(rootPath string) string {
	h := sha256.Sum256([]byte(rootPath))
	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars
}

// updateMeta updates the schema version and root path hash
func (idx *Index) updateMeta() error {
	_, err := idx.db.Exec(`
		INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?);
		INSERT OR REPLACE INTO meta (key, value) VALUES ('root_path_hash', ?);
	`, schemaVersion, hashRootPath(idx.rootPath))
	return err
}

// GetNode retrieves a node by its virtual path
func (idx *Index) GetNode(path string) (*domain.IndexNode, error) {
	var node domain.IndexNode
	var zone string

	err := idx.db.QueryRow(`
		SELECT path, entity_id, zone, name, mtime
		FROM nodes WHERE path = ?
	`, path).Scan(&node.Path, &node.EntityID, &zone, &node.Name, &node.Mtime)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	node.Zone = domain.Zone(zone)
	node.Kind = domain.ParseKeyType(node.EntityID)
	return &node, nil
}

// Search returns nodes whose name contains the query, case-insensitive,
// ordered by zone then name so active matches list first.
func (idx *Index) Search(query string) ([]domain.SearchResult, error) {
	rows, err := idx.db.Query(`
		SELECT path, entity_id, zone, name
		FROM nodes
		WHERE LOWER(name) LIKE '%' || LOWER(?) || '%'
		ORDER BY zone, name
	`, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.SearchResult
	for rows.Next() {
		var r domain.SearchResult
		var zone string
		if err := rows.Scan(&r.Path, &r.EntityID, &zone, &r.Name); err != nil {
			return nil, err
		}
		r.Zone = domain.Zone(zone)
		r.Kind = domain.ParseKeyType(r.EntityID)
		results = append(results, r)
	}
	return results, rows.Err()
}
