package tempbox

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each index entry under its own key and the IDs in a
// sorted set, so scans run in ID order
type RedisStore struct {
	client    *redis.Client
	prefix    string
	putLua    *redis.Script
	deleteLua *redis.Script
}

const (
	RedisConnectTimeout = 5 * time.Second

	redisScanPage = 128

	entrySuffix = ":entry:"
	idsSuffix   = ":ids"
)

var _ Store = (*RedisStore)(nil)

// NewRedisStore connects to Redis and verifies the connection
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, RedisConnectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &RedisStore{
		client:    client,
		prefix:    cfg.Prefix,
		putLua:    redis.NewScript(luaPutEntry),
		deleteLua: redis.NewScript(luaDeleteEntry),
	}, nil
}

func (s *RedisStore) Put(ctx context.Context, e *Entry) error {
	data, err := marshalEntry(e)
	if err != nil {
		return err
	}
	return s.putLua.Run(
		ctx, s.client,
		[]string{s.entryKey(e.ID), s.idsKey()},
		string(e.ID), string(data),
	).Err()
}

func (s *RedisStore) Get(ctx context.Context, id ID) (*Entry, error) {
	data, err := s.client.Get(ctx, s.entryKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return unmarshalEntry(data)
}

func (s *RedisStore) Delete(ctx context.Context, id ID) error {
	removed, err := s.deleteLua.Run(
		ctx, s.client,
		[]string{s.entryKey(id), s.idsKey()},
		string(id),
	).Int64()
	if err != nil {
		return err
	}
	if removed == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// Scan pages through the ID set lexically, fetching each page of entries
// with one MGET. Entries deleted between the two calls are skipped
func (s *RedisStore) Scan(ctx context.Context, fn func(*Entry) bool) error {
	from := "-"
	for {
		ids, err := s.client.ZRangeByLex(ctx, s.idsKey(), &redis.ZRangeBy{
			Min:   from,
			Max:   "+",
			Count: redisScanPage,
		}).Result()
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		keys := make([]string, len(ids))
		for i, id := range ids {
			keys[i] = s.entryKey(ID(id))
		}
		values, err := s.client.MGet(ctx, keys...).Result()
		if err != nil {
			return err
		}
		for _, v := range values {
			data, ok := v.(string)
			if !ok {
				continue
			}
			e, err := unmarshalEntry([]byte(data))
			if err != nil {
				return err
			}
			if !fn(e) {
				return nil
			}
		}

		if len(ids) < redisScanPage {
			return nil
		}
		from = "(" + ids[len(ids)-1]
	}
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) entryKey(id ID) string {
	return fmt.Sprintf("%s%s%s", s.prefix, entrySuffix, id)
}

func (s *RedisStore) idsKey() string {
	return s.prefix + idsSuffix
}
