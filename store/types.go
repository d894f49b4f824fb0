package store

import "github.com/iov-one/xregister"

// Aliases of the storage interfaces, for shorter names in this package.

type ReadOnlyKVStore = xregister.ReadOnlyKVStore
type SetDeleter = xregister.SetDeleter
type KVStore = xregister.KVStore
type Batch = xregister.Batch
type CacheableKVStore = xregister.CacheableKVStore
type KVCacheWrap = xregister.KVCacheWrap
