package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"github.com/phaseo/ai-stats-go/pkg/devtools"
)

// redisStore keeps each entry under <prefix>:entry:<id> with a TTL and indexes
// ids in a sorted set scored by entry timestamp. Assets live under
// <prefix>:asset:<path> and are tracked in the <prefix>:assets set so Clear
// can find them.
type redisStore struct {
	client    *redis.Client
	prefix    string
	retention time.Duration
}

func openRedis(opts Options) (Store, error) {
	ropts, err := redis.ParseURL(opts.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(ropts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return newRedisStore(client, opts), nil
}

func newRedisStore(client *redis.Client, opts Options) *redisStore {
	return &redisStore{client: client, prefix: opts.RedisPrefix, retention: opts.Retention}
}

func (r *redisStore) entryKey(id string) string   { return r.prefix + ":entry:" + id }
func (r *redisStore) indexKey() string            { return r.prefix + ":index" }
func (r *redisStore) assetKey(path string) string { return r.prefix + ":asset:" + path }
func (r *redisStore) assetsKey() string           { return r.prefix + ":assets" }
func (r *redisStore) sessionKey() string          { return r.prefix + ":session" }

func (r *redisStore) Close() error {
	return r.client.Close()
}

func (r *redisStore) Save(ctx context.Context, entry devtools.Entry) error {
	if entry.ID == "" {
		return fmt.Errorf("entry id is empty")
	}
	payload, err := sonic.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode entry %s: %w", entry.ID, err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.entryKey(entry.ID), payload, r.retention)
	pipe.ZAdd(ctx, r.indexKey(), redis.Z{Score: float64(entry.Timestamp), Member: entry.ID})
	pipe.Expire(ctx, r.indexKey(), r.retention)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save entry %s: %w", entry.ID, err)
	}
	return nil
}

func (r *redisStore) Get(ctx context.Context, id string) (devtools.Entry, bool, error) {
	val, err := r.client.Get(ctx, r.entryKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return devtools.Entry{}, false, nil
	}
	if err != nil {
		return devtools.Entry{}, false, fmt.Errorf("get entry %s: %w", id, err)
	}
	var e devtools.Entry
	if err := sonic.Unmarshal(val, &e); err != nil {
		return devtools.Entry{}, false, fmt.Errorf("decode entry %s: %w", id, err)
	}
	return e, true, nil
}

// Entries reads the index newest first and drops ids whose entry has expired.
func (r *redisStore) Entries(ctx context.Context) ([]devtools.Entry, error) {
	ids, err := r.client.ZRevRange(ctx, r.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read entry index: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.entryKey(id)
	}
	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("read entries: %w", err)
	}

	entries := make([]devtools.Entry, 0, len(vals))
	var stale []any
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			stale = append(stale, ids[i])
			continue
		}
		var e devtools.Entry
		if err := sonic.UnmarshalString(s, &e); err != nil {
			return nil, fmt.Errorf("decode entry %s: %w", ids[i], err)
		}
		entries = append(entries, e)
	}
	if len(stale) > 0 {
		if err := r.client.ZRem(ctx, r.indexKey(), stale...).Err(); err != nil {
			return nil, fmt.Errorf("prune entry index: %w", err)
		}
	}
	devtools.SortRecentFirst(entries)
	return entries, nil
}

func (r *redisStore) List(ctx context.Context, f devtools.Filter) (devtools.Page, error) {
	return listPage(ctx, r, f)
}

func (r *redisStore) SaveAsset(ctx context.Context, path string, data []byte) error {
	if path == "" {
		return fmt.Errorf("asset path is empty")
	}
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.assetKey(path), data, r.retention)
	pipe.SAdd(ctx, r.assetsKey(), path)
	pipe.Expire(ctx, r.assetsKey(), r.retention)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save asset %s: %w", path, err)
	}
	return nil
}

func (r *redisStore) Asset(ctx context.Context, path string) ([]byte, bool, error) {
	data, err := r.client.Get(ctx, r.assetKey(path)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get asset %s: %w", path, err)
	}
	return data, true, nil
}

// StartSession relies on SETNX so concurrent processes agree on one session.
func (r *redisStore) StartSession(ctx context.Context, s devtools.SessionMetadata) (devtools.SessionMetadata, error) {
	payload, err := sonic.Marshal(s)
	if err != nil {
		return s, fmt.Errorf("encode session: %w", err)
	}
	created, err := r.client.SetNX(ctx, r.sessionKey(), payload, 0).Result()
	if err != nil {
		return s, fmt.Errorf("save session: %w", err)
	}
	if created {
		return s, nil
	}
	current, _, err := r.Session(ctx)
	return current, err
}

func (r *redisStore) Session(ctx context.Context) (devtools.SessionMetadata, bool, error) {
	var s devtools.SessionMetadata
	val, err := r.client.Get(ctx, r.sessionKey()).Bytes()
	if errors.Is(err, redis.Nil) {
		return s, false, nil
	}
	if err != nil {
		return s, false, fmt.Errorf("get session: %w", err)
	}
	if err := sonic.Unmarshal(val, &s); err != nil {
		return s, false, fmt.Errorf("decode session: %w", err)
	}
	return s, true, nil
}

func (r *redisStore) Clear(ctx context.Context) error {
	ids, err := r.client.ZRange(ctx, r.indexKey(), 0, -1).Result()
	if err != nil {
		return fmt.Errorf("read entry index: %w", err)
	}
	paths, err := r.client.SMembers(ctx, r.assetsKey()).Result()
	if err != nil {
		return fmt.Errorf("read asset index: %w", err)
	}
	keys := make([]string, 0, len(ids)+len(paths)+3)
	for _, id := range ids {
		keys = append(keys, r.entryKey(id))
	}
	for _, p := range paths {
		keys = append(keys, r.assetKey(p))
	}
	keys = append(keys, r.indexKey(), r.assetsKey(), r.sessionKey())
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("clear entries: %w", err)
	}
	return nil
}
