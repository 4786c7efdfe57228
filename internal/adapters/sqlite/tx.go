package sqlite

import (
	"database/sql"

	"classiflyer/internal/domain"
)

// syncTx wraps one rebuild transaction. The node table is cleared
// inside the transaction so a failed rebuild leaves the previous cache
// intact.
type syncTx struct {
	tx *sql.Tx
}

// beginSync starts a rebuild transaction with the node table cleared.
func (idx *Index) beginSync() (*syncTx, error) {
	tx, err := idx.db.Begin()
	if err != nil {
		return nil, err
	}
	if _, err := tx.Exec(`DELETE FROM nodes`); err != nil {
		tx.Rollback()
		return nil, err
	}
	return &syncTx{tx: tx}, nil
}

// UpsertNode inserts or updates a node
func (t *syncTx) UpsertNode(node *domain.IndexNode) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO nodes (path, entity_id, kind, zone, name, mtime)
		VALUES (?, ?, ?, ?, ?, ?)
	`, node.Path, node.EntityID, node.Kind.String(), string(node.Zone), node.Name, node.Mtime)
	return err
}

// Commit commits the transaction
func (t *syncTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction; a no-op after Commit.
func (t *syncTx) Rollback() error {
	err := t.tx.Rollback()
	if err == sql.ErrTxDone {
		return nil
	}
	return err
}
