package vault

import (
	"context"
	"sync"
	"time"

	"classiflyer/internal/adapters/jsondb"
	"classiflyer/internal/domain"
	"classiflyer/internal/logging"
	"classiflyer/internal/ports"
)

// Vault implements ports.Store over the configured root directory: the
// hierarchy operations, the lifecycle transitions, and the read-only
// projections.
//
// Every mutation follows the same discipline: load the index, perform
// the physical filesystem mutation, apply the index mutation, persist.
// If the filesystem step fails the index is never touched; if the
// persist step fails after a successful move, the next load's orphan
// reconciliation recovers the binder. The inverse ordering has no
// recovery path and is never used.
//
// A single mutex serializes every read-modify-write cycle, so two
// interleaved requests can never clobber each other's index write.
type Vault struct {
	mu   sync.Mutex
	root string
	db   *jsondb.Store
	log  logging.Logger
	now  func() int64
}

// Ensure Vault implements Store
var _ ports.Store = (*Vault)(nil)

// Option configures a Vault.
type Option func(*Vault)

// WithLogger sets the logger for fail-soft notices.
func WithLogger(l logging.Logger) Option {
	return func(v *Vault) { v.log = l }
}

// WithClock overrides the timestamp source. Tests use this to get
// deterministic createdAt/updatedAt values.
func WithClock(now func() int64) Option {
	return func(v *Vault) { v.now = now }
}

// New creates a Vault over rootPath. The root must already be
// bootstrapped (config.Bootstrap).
func New(rootPath string, opts ...Option) *Vault {
	v := &Vault{
		root: rootPath,
		log:  logging.NewNopLogger(),
		now:  func() int64 { return time.Now().UnixMilli() },
	}
	for _, opt := range opts {
		opt(v)
	}
	v.db = jsondb.New(rootPath, jsondb.WithLogger(v.log))
	return v
}

// mutate runs one serialized load-mutate-save cycle. fn performs the
// filesystem mutation followed by the index mutation; returning an
// error aborts before anything is persisted.
func (v *Vault) mutate(ctx context.Context, fn func(idx *domain.Index) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	v.mu.Lock()
	defer v.mu.Unlock()

	idx, err := v.db.Load()
	if err != nil {
		return err
	}
	if err := fn(idx); err != nil {
		return err
	}
	return v.db.Save(idx)
}

// view runs a serialized read-only cycle. It takes the same lock as
// mutate so a projection never observes a half-applied cycle.
func (v *Vault) view(ctx context.Context, fn func(idx *domain.Index) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	v.mu.Lock()
	defer v.mu.Unlock()

	idx, err := v.db.Load()
	if err != nil {
		return err
	}
	return fn(idx)
}
