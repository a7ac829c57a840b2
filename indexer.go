package tempbox

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// Indexer builds multi-entry index records: each temporal value is
// partitioned into a bounded number of boxes that are stored under its ID.
// Recently used entries are kept in memory. Entries returned by the Indexer
// are shared with its cache and must not be modified
type Indexer struct {
	store    Store
	cache    *lruCache[*Entry]
	logger   *zap.Logger
	maxBoxes int
}

// NewIndexer creates an Indexer over a Store. A nil logger disables logging
func NewIndexer(store Store, cfg Config, logger *zap.Logger) *Indexer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Indexer{
		store:    store,
		cache:    newLRUCache[*Entry](cfg.CacheSize),
		logger:   logger,
		maxBoxes: cfg.MaxBoxes,
	}
}

// Put partitions a temporal value and stores the resulting entry, replacing
// any entry already stored under id
func (ix *Indexer) Put(
	ctx context.Context, id ID, temp Temporal,
) (*Entry, error) {
	e, err := NewEntry(id, temp, ix.maxBoxes)
	if err != nil {
		return nil, err
	}
	if err := ix.store.Put(ctx, e); err != nil {
		ix.cache.Remove(string(id))
		ix.logger.Error("failed to store index entry",
			zap.String("id", string(id)),
			zap.Error(err),
		)
		return nil, err
	}
	ix.cache.Put(string(id), e)
	ix.logger.Debug("stored index entry",
		zap.String("id", string(id)),
		zap.Stringer("category", e.Category),
		zap.Int("boxes", len(e.Boxes)),
	)
	return e, nil
}

// Get returns the entry stored under id
func (ix *Indexer) Get(ctx context.Context, id ID) (*Entry, error) {
	if e, ok := ix.cache.Get(string(id)); ok {
		return e, nil
	}
	e, err := ix.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	ix.cache.Put(string(id), e)
	return e, nil
}

// Delete removes the entry stored under id
func (ix *Indexer) Delete(ctx context.Context, id ID) error {
	ix.cache.Remove(string(id))
	if err := ix.store.Delete(ctx, id); err != nil {
		if !errors.Is(err, ErrEntryNotFound) {
			ix.logger.Error("failed to delete index entry",
				zap.String("id", string(id)),
				zap.Error(err),
			)
		}
		return err
	}
	ix.logger.Debug("deleted index entry", zap.String("id", string(id)))
	return nil
}

// Scan visits every stored entry in ID order until fn returns false
func (ix *Indexer) Scan(ctx context.Context, fn func(*Entry) bool) error {
	return ix.store.Scan(ctx, fn)
}

// Close closes the underlying Store
func (ix *Indexer) Close() error {
	return ix.store.Close()
}

// Search returns the IDs of entries with at least one box of type B for
// which pred(box, query) holds, in ID order. Every entry is visited
func Search[B Box](
	ctx context.Context, ix *Indexer, query B, pred Predicate[B],
) ([]ID, error) {
	var res []ID
	err := ix.Scan(ctx, func(e *Entry) bool {
		for _, b := range e.Boxes {
			if b, ok := b.(B); ok && pred(b, query) {
				res = append(res, e.ID)
				break
			}
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	ix.logger.Debug("searched index",
		zap.Stringer("box_type", query.BoxType()),
		zap.Int("matches", len(res)),
	)
	return res, nil
}
