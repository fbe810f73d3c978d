package storage

import (
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bytedance/sonic"
	bolt "go.etcd.io/bbolt"

	"github.com/phaseo/ai-stats-go/pkg/devtools"
)

// boltCodec copies strings out of the input; bbolt values are only valid
// inside their transaction.
var boltCodec = sonic.ConfigStd

const (
	entryBucket      = "entries"
	assetBucket      = "assets"
	metaBucket       = "meta"
	sessionKey       = "session"
	expiryValueBytes = 8

	// boltLockTimeout bounds how long an operation waits for another process
	// holding the file lock.
	boltLockTimeout = 10 * time.Second
)

var boltBuckets = []string{entryBucket, assetBucket, metaBucket}

// boltStore implements a Store backed by BoltDB. Entry and asset values are
// an 8-byte big-endian unix expiry followed by the payload.
//
// The file is opened for each operation and closed right after, so several
// processes (a recording CLI and a running viewer) can share one database.
type boltStore struct {
	path            string
	mu              sync.RWMutex
	cleanupMu       sync.Mutex
	lastCleanup     atomic.Int64
	retention       time.Duration
	cleanupInterval time.Duration
	lockTimeout     time.Duration
	now             func() time.Time
}

// openBolt initializes a BoltDB-backed Store.
func openBolt(path string, opts Options) (Store, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage directory: %w", err)
		}
	}

	store := &boltStore{
		path:            path,
		retention:       opts.Retention,
		cleanupInterval: opts.CleanupInterval,
		lockTimeout:     boltLockTimeout,
		now:             time.Now,
	}
	if err := store.update(func(tx *bolt.Tx) error {
		for _, name := range boltBuckets {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("init buckets: %w", err)
	}
	store.lastCleanup.Store(store.now().Unix())
	return store, nil
}

func (b *boltStore) open(readOnly bool) (*bolt.DB, error) {
	db, err := bolt.Open(b.path, 0o600, &bolt.Options{Timeout: b.lockTimeout, ReadOnly: readOnly})
	if err != nil {
		return nil, fmt.Errorf("open bbolt db: %w", err)
	}
	return db, nil
}

// update runs fn in a write transaction on a freshly opened handle.
func (b *boltStore) update(fn func(*bolt.Tx) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	db, err := b.open(false)
	if err != nil {
		return err
	}
	if err := db.Update(fn); err != nil {
		db.Close()
		return err
	}
	return db.Close()
}

// view runs fn in a read transaction on a read-only handle, which only takes
// a shared lock on the file.
func (b *boltStore) view(fn func(*bolt.Tx) error) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.open(true)
	if err != nil {
		return err
	}
	if err := db.View(fn); err != nil {
		db.Close()
		return err
	}
	return db.Close()
}

func bucket(tx *bolt.Tx, name string) (*bolt.Bucket, error) {
	bk := tx.Bucket([]byte(name))
	if bk == nil {
		return nil, fmt.Errorf("%s bucket missing", name)
	}
	return bk, nil
}

// Close is a no-op; handles are released after every operation.
func (b *boltStore) Close() error {
	return nil
}

func (b *boltStore) expiring(payload []byte, now time.Time) []byte {
	value := make([]byte, expiryValueBytes+len(payload))
	binary.BigEndian.PutUint64(value, uint64(now.Add(b.retention).Unix()))
	copy(value[expiryValueBytes:], payload)
	return value
}

// Save stores the entry under its id, replacing any previous value.
func (b *boltStore) Save(_ context.Context, entry devtools.Entry) error {
	if entry.ID == "" {
		return fmt.Errorf("entry id is empty")
	}
	now := b.now()
	if err := b.maybeCleanupExpired(now); err != nil {
		return err
	}

	payload, err := sonic.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode entry %s: %w", entry.ID, err)
	}
	value := b.expiring(payload, now)

	return b.update(func(tx *bolt.Tx) error {
		bk, err := bucket(tx, entryBucket)
		if err != nil {
			return err
		}
		return bk.Put([]byte(entry.ID), value)
	})
}

// Get returns the entry with the given id. Expired entries are reported as
// absent and left for the cleanup sweep.
func (b *boltStore) Get(_ context.Context, id string) (devtools.Entry, bool, error) {
	var (
		entry devtools.Entry
		found bool
	)
	now := b.now()
	err := b.view(func(tx *bolt.Tx) error {
		bk, err := bucket(tx, entryBucket)
		if err != nil {
			return err
		}
		expiry, payload, ok := decodeRecord(bk.Get([]byte(id)))
		if !ok || !expiry.After(now) {
			return nil
		}
		if err := boltCodec.Unmarshal(payload, &entry); err != nil {
			return fmt.Errorf("decode entry %s: %w", id, err)
		}
		found = true
		return nil
	})
	return entry, found, err
}

// Entries returns every unexpired entry, most recent first.
func (b *boltStore) Entries(_ context.Context) ([]devtools.Entry, error) {
	if err := b.maybeCleanupExpired(b.now()); err != nil {
		return nil, err
	}

	now := b.now()
	var entries []devtools.Entry
	err := b.view(func(tx *bolt.Tx) error {
		bk, err := bucket(tx, entryBucket)
		if err != nil {
			return err
		}
		return bk.ForEach(func(k, v []byte) error {
			expiry, payload, ok := decodeRecord(v)
			if !ok || !expiry.After(now) {
				return nil
			}
			var e devtools.Entry
			if err := boltCodec.Unmarshal(payload, &e); err != nil {
				return fmt.Errorf("decode entry %s: %w", k, err)
			}
			entries = append(entries, e)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	devtools.SortRecentFirst(entries)
	return entries, nil
}

func (b *boltStore) List(ctx context.Context, f devtools.Filter) (devtools.Page, error) {
	return listPage(ctx, b, f)
}

// SaveAsset stores data under path with the same retention as entries.
func (b *boltStore) SaveAsset(_ context.Context, path string, data []byte) error {
	if path == "" {
		return fmt.Errorf("asset path is empty")
	}
	value := b.expiring(data, b.now())
	return b.update(func(tx *bolt.Tx) error {
		bk, err := bucket(tx, assetBucket)
		if err != nil {
			return err
		}
		return bk.Put([]byte(path), value)
	})
}

func (b *boltStore) Asset(_ context.Context, path string) ([]byte, bool, error) {
	var data []byte
	now := b.now()
	err := b.view(func(tx *bolt.Tx) error {
		bk, err := bucket(tx, assetBucket)
		if err != nil {
			return err
		}
		expiry, payload, ok := decodeRecord(bk.Get([]byte(path)))
		if ok && expiry.After(now) {
			data = append([]byte(nil), payload...)
		}
		return nil
	})
	return data, data != nil, err
}

// StartSession stores s unless a session is already recorded, and returns
// the stored one.
func (b *boltStore) StartSession(_ context.Context, s devtools.SessionMetadata) (devtools.SessionMetadata, error) {
	payload, err := sonic.Marshal(s)
	if err != nil {
		return s, fmt.Errorf("encode session: %w", err)
	}
	current := s
	err = b.update(func(tx *bolt.Tx) error {
		bk, err := bucket(tx, metaBucket)
		if err != nil {
			return err
		}
		if existing := bk.Get([]byte(sessionKey)); existing != nil {
			return boltCodec.Unmarshal(existing, &current)
		}
		return bk.Put([]byte(sessionKey), payload)
	})
	return current, err
}

func (b *boltStore) Session(_ context.Context) (devtools.SessionMetadata, bool, error) {
	var (
		s     devtools.SessionMetadata
		found bool
	)
	err := b.view(func(tx *bolt.Tx) error {
		bk, err := bucket(tx, metaBucket)
		if err != nil {
			return err
		}
		value := bk.Get([]byte(sessionKey))
		if value == nil {
			return nil
		}
		found = true
		return boltCodec.Unmarshal(value, &s)
	})
	return s, found, err
}

// Clear removes every entry, asset and the session.
func (b *boltStore) Clear(_ context.Context) error {
	return b.update(func(tx *bolt.Tx) error {
		for _, name := range boltBuckets {
			if err := tx.DeleteBucket([]byte(name)); err != nil && err != bolt.ErrBucketNotFound {
				return err
			}
			if _, err := tx.CreateBucket([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	})
}

// maybeCleanupExpired removes expired entries and assets on a fixed cadence
// to avoid unbounded growth.
func (b *boltStore) maybeCleanupExpired(now time.Time) error {
	last := time.Unix(b.lastCleanup.Load(), 0)
	if now.Sub(last) < b.cleanupInterval {
		return nil
	}

	b.cleanupMu.Lock()
	defer b.cleanupMu.Unlock()

	last = time.Unix(b.lastCleanup.Load(), 0)
	if now.Sub(last) < b.cleanupInterval {
		return nil
	}

	err := b.update(func(tx *bolt.Tx) error {
		for _, name := range []string{entryBucket, assetBucket} {
			bk, err := bucket(tx, name)
			if err != nil {
				return err
			}
			cursor := bk.Cursor()
			for k, v := cursor.First(); k != nil; k, v = cursor.Next() {
				expiry, _, ok := decodeRecord(v)
				if !ok || !expiry.After(now) {
					if err := cursor.Delete(); err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
	if err == nil {
		b.lastCleanup.Store(now.Unix())
	}
	return err
}

// decodeRecord splits a stored value into its expiry and payload.
func decodeRecord(value []byte) (time.Time, []byte, bool) {
	if len(value) <= expiryValueBytes {
		return time.Time{}, nil, false
	}
	unix := int64(binary.BigEndian.Uint64(value[:expiryValueBytes]))
	if unix <= 0 {
		return time.Time{}, nil, false
	}
	return time.Unix(unix, 0), value[expiryValueBytes:], true
}
