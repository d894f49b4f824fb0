package store

import (
	"bytes"

	"github.com/google/btree"
)

// entry is a single pending write. A deleted entry hides any value the
// key holds below it.
type entry struct {
	key     []byte
	value   []byte
	deleted bool
}

// Less orders entries by key.
func (e entry) Less(than btree.Item) bool {
	return bytes.Compare(e.key, than.(entry).key) < 0
}

// ChangeSet collects writes in key order, keeping only the last write to
// every key.
type ChangeSet struct {
	bt *btree.BTree
}

// NewChangeSet returns an empty change set.
func NewChangeSet() *ChangeSet {
	return &ChangeSet{bt: btree.New(2)}
}

// Set records a write of value under key. A nil value is stored as empty.
func (c *ChangeSet) Set(key, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	c.bt.ReplaceOrInsert(entry{key: key, value: value})
	return nil
}

// Delete records the removal of key.
func (c *ChangeSet) Delete(key []byte) error {
	c.bt.ReplaceOrInsert(entry{key: key, deleted: true})
	return nil
}

// Lookup returns the pending write of key. When ok is false the key was
// not written and must be read from the underlying store.
func (c *ChangeSet) Lookup(key []byte) (value []byte, deleted, ok bool) {
	item := c.bt.Get(entry{key: key})
	if item == nil {
		return nil, false, false
	}
	e := item.(entry)
	return e.value, e.deleted, true
}

// Len returns the number of keys written.
func (c *ChangeSet) Len() int {
	return c.bt.Len()
}

// ApplyTo replays all writes on out in ascending key order. It stops at the
// first failure.
func (c *ChangeSet) ApplyTo(out SetDeleter) error {
	var err error
	c.bt.Ascend(func(item btree.Item) bool {
		e := item.(entry)
		if e.deleted {
			err = out.Delete(e.key)
		} else {
			err = out.Set(e.key, e.value)
		}
		return err == nil
	})
	return err
}

// Reset drops all writes.
func (c *ChangeSet) Reset() {
	c.bt = btree.New(2)
}

// batch collects writes and applies them to a store on Write. It is only
// atomic as long as out cannot fail, which holds for in-memory stores.
type batch struct {
	*ChangeSet
	out SetDeleter
}

var _ Batch = (*batch)(nil)

// NewBatch returns a batch writing into out.
func NewBatch(out SetDeleter) Batch {
	return &batch{ChangeSet: NewChangeSet(), out: out}
}

func (b *batch) Write() error {
	err := b.ApplyTo(b.out)
	b.Reset()
	return err
}
