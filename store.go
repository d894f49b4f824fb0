package xregister

// ReadOnlyKVStore reads the state of a chain.
type ReadOnlyKVStore interface {
	// Get returns the value stored under key, or nil if there is none. An
	// empty value is returned as a non-nil empty slice.
	Get(key []byte) ([]byte, error)
	// Has returns true if a value is stored under key.
	Has(key []byte) (bool, error)
}

// SetDeleter writes the state of a chain. It is implemented by both stores
// and batches.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// KVStore is the state of a chain as seen by handlers.
type KVStore interface {
	ReadOnlyKVStore
	SetDeleter
	// NewBatch returns a batch that writes into this store.
	NewBatch() Batch
}

// Batch collects writes and applies them together on Write.
type Batch interface {
	SetDeleter
	Write() error
}

// CacheableKVStore is a store that can stage writes in a cache wrap.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap stages writes on top of a store. Reads see the staged writes.
// Write applies them to the store below, Discard drops them. Every call is
// executed in its own cache wrap, so a failed call leaves no trace.
type KVCacheWrap interface {
	CacheableKVStore
	Write() error
	Discard()
}
