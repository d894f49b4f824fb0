/*
Package sqlite provides a durable KVStore kept in a single SQLite table.

Writes performed through a cache wrap are collected and applied in one SQL
transaction when the cache is written, so a call either persists all of its
changes or none.
*/
package sqlite

import (
	"context"
	"database/sql"

	"github.com/iov-one/xregister"
	"github.com/iov-one/xregister/errors"
	"github.com/iov-one/xregister/store"

	_ "modernc.org/sqlite"
)

// Store is a KVStore backed by a SQLite database.
type Store struct {
	db *sql.DB
}

var _ xregister.CacheableKVStore = (*Store)(nil)

// Open opens (or creates) the SQLite database at the given path. Use
// ":memory:" for a throw-away database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "open %q: %s", path, err)
	}

	// Single connection ensures PRAGMAs persist and avoids
	// SQLite write contention issues.
	db.SetMaxOpenConns(1)

	for _, q := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		`CREATE TABLE IF NOT EXISTS kv (
			k BLOB PRIMARY KEY,
			v BLOB NOT NULL
		) WITHOUT ROWID`,
	} {
		if _, err := db.Exec(q); err != nil {
			db.Close()
			return nil, errors.Wrapf(errors.ErrDatabase, "init: %s", err)
		}
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns nil iff key doesn't exist.
func (s *Store) Get(key []byte) ([]byte, error) {
	var value []byte
	switch err := s.db.QueryRow(`SELECT v FROM kv WHERE k = ?`, key).Scan(&value); {
	case err == sql.ErrNoRows:
		return nil, nil
	case err != nil:
		return nil, errors.Wrapf(errors.ErrDatabase, "get: %s", err)
	}
	if value == nil {
		// An empty blob is a present value.
		value = []byte{}
	}
	return value, nil
}

// Has checks if a key exists.
func (s *Store) Has(key []byte) (bool, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM kv WHERE k = ?`, key).Scan(&n); err != nil {
		return false, errors.Wrapf(errors.ErrDatabase, "has: %s", err)
	}
	return n > 0, nil
}

// Set writes the value immediately, outside of any batch.
func (s *Store) Set(key, value []byte) error {
	return writer{s.db}.Set(key, value)
}

// Delete removes the key immediately, outside of any batch.
func (s *Store) Delete(key []byte) error {
	return writer{s.db}.Delete(key)
}

// NewBatch returns a batch that applies all writes in one transaction.
func (s *Store) NewBatch() xregister.Batch {
	return &batch{ChangeSet: store.NewChangeSet(), db: s.db}
}

// CacheWrap returns a cache whose writes are flushed into this store
// atomically.
func (s *Store) CacheWrap() xregister.KVCacheWrap {
	return store.NewCache(s)
}

type batch struct {
	*store.ChangeSet
	db *sql.DB
}

func (b *batch) Write() error {
	defer b.Reset()
	if b.Len() == 0 {
		return nil
	}
	tx, err := b.db.BeginTx(context.Background(), nil)
	if err != nil {
		return errors.Wrapf(errors.ErrDatabase, "begin: %s", err)
	}
	if err := b.ApplyTo(writer{tx}); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return errors.Wrapf(errors.ErrDatabase, "commit: %s", err)
	}
	return nil
}

type execer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
}

// writer executes writes on a connection or within a transaction.
type writer struct {
	db execer
}

func (w writer) Set(key, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := w.db.Exec(`INSERT INTO kv (k, v) VALUES (?, ?)
		ON CONFLICT(k) DO UPDATE SET v = excluded.v`, key, value)
	if err != nil {
		return errors.Wrapf(errors.ErrDatabase, "set: %s", err)
	}
	return nil
}

func (w writer) Delete(key []byte) error {
	if _, err := w.db.Exec(`DELETE FROM kv WHERE k = ?`, key); err != nil {
		return errors.Wrapf(errors.ErrDatabase, "delete: %s", err)
	}
	return nil
}
