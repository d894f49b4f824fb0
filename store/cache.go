package store

import (
	"github.com/google/btree"
)

// Cache holds writes on top of a store until they are written into it in a
// single batch, or discarded. Reads see the pending writes first.
type Cache struct {
	parent  KVStore
	changes *ChangeSet
}

var _ KVCacheWrap = (*Cache)(nil)

// NewCache returns an empty cache over parent.
func NewCache(parent KVStore) *Cache {
	return &Cache{parent: parent, changes: NewChangeSet()}
}

// Get returns nil iff key doesn't exist.
func (c *Cache) Get(key []byte) ([]byte, error) {
	if value, deleted, ok := c.changes.Lookup(key); ok {
		if deleted {
			return nil, nil
		}
		return value, nil
	}
	return c.parent.Get(key)
}

// Has checks if a key exists.
func (c *Cache) Has(key []byte) (bool, error) {
	if _, deleted, ok := c.changes.Lookup(key); ok {
		return !deleted, nil
	}
	return c.parent.Has(key)
}

func (c *Cache) Set(key, value []byte) error {
	return c.changes.Set(key, value)
}

func (c *Cache) Delete(key []byte) error {
	return c.changes.Delete(key)
}

// NewBatch returns a batch that writes into this cache.
func (c *Cache) NewBatch() Batch {
	return NewBatch(c)
}

// CacheWrap layers another cache on top of this one.
func (c *Cache) CacheWrap() KVCacheWrap {
	return NewCache(c)
}

// Write flushes all pending writes into the parent through one of its
// batches and empties the cache.
func (c *Cache) Write() error {
	defer c.changes.Reset()
	if c.changes.Len() == 0 {
		return nil
	}
	b := c.parent.NewBatch()
	if err := c.changes.ApplyTo(b); err != nil {
		return err
	}
	return b.Write()
}

// Discard drops all pending writes.
func (c *Cache) Discard() {
	c.changes.Reset()
}

// memStore keeps all data in a btree. There is no persistence.
type memStore struct {
	bt *btree.BTree
}

// MemStore returns an empty in-memory store.
func MemStore() CacheableKVStore {
	return &memStore{bt: btree.New(2)}
}

func (m *memStore) Get(key []byte) ([]byte, error) {
	item := m.bt.Get(entry{key: key})
	if item == nil {
		return nil, nil
	}
	return item.(entry).value, nil
}

func (m *memStore) Has(key []byte) (bool, error) {
	return m.bt.Has(entry{key: key}), nil
}

func (m *memStore) Set(key, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	m.bt.ReplaceOrInsert(entry{key: key, value: value})
	return nil
}

func (m *memStore) Delete(key []byte) error {
	m.bt.Delete(entry{key: key})
	return nil
}

func (m *memStore) NewBatch() Batch {
	return NewBatch(m)
}

func (m *memStore) CacheWrap() KVCacheWrap {
	return NewCache(m)
}
