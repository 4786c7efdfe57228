package jsondb

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"classiflyer/internal/application"
	"classiflyer/internal/domain"
	"classiflyer/internal/logging"
)

// Store loads and persists the JSON index file. It is the sole writer of
// the index; every load applies the migration chain and orphan
// reconciliation, persisting the corrected document before returning it.
//
// Store is not safe for concurrent writers; the vault serializes every
// read-modify-write cycle around it.
type Store struct {
	rootPath string
	log      logging.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for self-healing notices.
func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New creates a Store for the index under rootPath.
func New(rootPath string, opts ...Option) *Store {
	s := &Store{
		rootPath: rootPath,
		log:      logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IndexPath returns the location of the index file.
func (s *Store) IndexPath() string {
	return filepath.Join(s.rootPath, domain.IndexFileName)
}

// RootPath returns the root directory the store is scoped to.
func (s *Store) RootPath() string {
	return s.rootPath
}

// Load reads the index, migrates legacy shapes, reconciles orphaned
// archive directories, and persists the document if anything changed.
// A missing or unparsable file is fatal for the caller: Load never
// fabricates an empty index (first-run bootstrap is a separate,
// explicit operation).
func (s *Store) Load() (*domain.Index, error) {
	raw, err := os.ReadFile(s.IndexPath())
	if err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", application.ErrCorruptIndex, err)
	}

	migrated := Migrate(doc)

	// Round-trip the migrated document into the typed index.
	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode migrated index: %w", err)
	}
	var idx domain.Index
	if err := json.Unmarshal(normalized, &idx); err != nil {
		return nil, fmt.Errorf("%w: %v", application.ErrCorruptIndex, err)
	}
	ensureMaps(&idx)

	reconciled, err := s.reconcile(&idx)
	if err != nil {
		return nil, err
	}

	if migrated || reconciled {
		if err := s.Save(&idx); err != nil {
			return nil, fmt.Errorf("persist healed index: %w", err)
		}
	}
	return &idx, nil
}

// Save serializes the index pretty-printed and atomically replaces the
// index file (temp file plus rename, so a crash mid-write never leaves a
// torn document).
func (s *Store) Save(idx *domain.Index) error {
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("encode index: %w", err)
	}

	tmp, err := os.CreateTemp(s.rootPath, domain.IndexFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp index: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp index: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp index: %w", err)
	}
	if err := os.Rename(tmpName, s.IndexPath()); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace index: %w", err)
	}
	return nil
}

// ensureMaps replaces nil collections with empty ones so callers never
// need nil checks before inserting.
func ensureMaps(idx *domain.Index) {
	if idx.Active == nil {
		idx.Active = map[string]*domain.Binder{}
	}
	if idx.Archives.Folders == nil {
		idx.Archives.Folders = map[string]*domain.ArchiveFolder{}
	}
	if idx.Archives.Binders == nil {
		idx.Archives.Binders = map[string]*domain.Binder{}
	}
	if idx.Trash == nil {
		idx.Trash = map[string]*domain.TrashEntry{}
	}
}
