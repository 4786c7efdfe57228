package sqlite

import (
	"time"

	"classiflyer/internal/domain"
)

// SyncFull rebuilds the cache from scratch out of the JSON index
// document. There is no incremental path: the document is small enough
// that flattening it whole is cheaper than diffing against the cache.
func (idx *Index) SyncFull(doc *domain.Index) (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	tx, err := idx.beginSync()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	for id, binder := range doc.Active {
		if err := syncBinder(tx, stats, id, binder, domain.ZoneActive); err != nil {
			return nil, err
		}
	}
	for id, binder := range doc.Archives.Binders {
		if err := syncBinder(tx, stats, id, binder, domain.ZoneArchived); err != nil {
			return nil, err
		}
	}
	for id, folder := range doc.Archives.Folders {
		node := &domain.IndexNode{
			Path:     folder.SysPath,
			EntityID: id,
			Kind:     domain.KeyTypeArchiveFolder,
			Zone:     domain.ZoneArchived,
			Name:     folder.Name,
			Mtime:    folder.UpdatedAt,
		}
		if err := tx.UpsertNode(node); err != nil {
			return nil, err
		}
		stats.NodesIndexed++
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	idx.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('last_sync_time', ?)`,
		time.Now().Unix())

	stats.DurationMs = time.Since(start).Milliseconds()
	return stats, nil
}

// syncBinder flattens one binder and its subtree into node rows.
func syncBinder(tx *syncTx, stats *domain.SyncStats, id string, binder *domain.Binder, zone domain.Zone) error {
	node := &domain.IndexNode{
		Path:     binder.SysPath,
		EntityID: id,
		Kind:     domain.KeyTypeBinder,
		Zone:     zone,
		Name:     binder.Name,
		Mtime:    binder.UpdatedAt,
	}
	if err := tx.UpsertNode(node); err != nil {
		return err
	}
	stats.NodesIndexed++

	for _, file := range binder.Files {
		if err := syncFile(tx, stats, file.ID, file, zone); err != nil {
			return err
		}
	}
	return syncFolders(tx, stats, binder.Folders, binder.UpdatedAt, zone)
}

func syncFolders(tx *syncTx, stats *domain.SyncStats, folders map[string]*domain.Folder, mtime int64, zone domain.Zone) error {
	for id, folder := range folders {
		node := &domain.IndexNode{
			Path:     folder.SysPath,
			EntityID: id,
			Kind:     domain.KeyTypeFolder,
			Zone:     zone,
			Name:     folder.Name,
			Mtime:    mtime,
		}
		if err := tx.UpsertNode(node); err != nil {
			return err
		}
		stats.NodesIndexed++

		for fileID, file := range folder.Files {
			if err := syncFile(tx, stats, fileID, file, zone); err != nil {
				return err
			}
		}
		if err := syncFolders(tx, stats, folder.Folders, mtime, zone); err != nil {
			return err
		}
	}
	return nil
}

func syncFile(tx *syncTx, stats *domain.SyncStats, id string, file domain.FileRef, zone domain.Zone) error {
	node := &domain.IndexNode{
		Path:     file.SysPath,
		EntityID: id,
		Kind:     domain.KeyTypeFile,
		Zone:     zone,
		Name:     file.Name,
		Mtime:    file.CreatedAt,
	}
	if err := tx.UpsertNode(node); err != nil {
		return err
	}
	stats.NodesIndexed++
	return nil
}
