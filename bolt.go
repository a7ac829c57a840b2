package tempbox

import (
	"context"

	"go.etcd.io/bbolt"
)

// BoltStore keeps index entries in a single bbolt bucket keyed by ID
type BoltStore struct {
	db     *bbolt.DB
	bucket []byte
}

var _ Store = (*BoltStore)(nil)

// OpenBoltStore opens or creates the database file and its bucket
func OpenBoltStore(cfg BoltConfig) (*BoltStore, error) {
	db, err := bbolt.Open(cfg.Path, 0o600, &bbolt.Options{
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return nil, err
	}

	bucket := []byte(cfg.Bucket)
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &BoltStore{db: db, bucket: bucket}, nil
}

func (s *BoltStore) Put(ctx context.Context, e *Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := marshalEntry(e)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(e.ID), data)
	})
}

func (s *BoltStore) Get(ctx context.Context, id ID) (*Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var res *Entry
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(s.bucket).Get([]byte(id))
		if data == nil {
			return ErrEntryNotFound
		}
		var err error
		res, err = unmarshalEntry(data)
		return err
	})
	return res, err
}

func (s *BoltStore) Delete(ctx context.Context, id ID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b.Get([]byte(id)) == nil {
			return ErrEntryNotFound
		}
		return b.Delete([]byte(id))
	})
}

func (s *BoltStore) Scan(ctx context.Context, fn func(*Entry) bool) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(s.bucket).Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			e, err := unmarshalEntry(v)
			if err != nil {
				return err
			}
			if !fn(e) {
				return nil
			}
		}
		return nil
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
