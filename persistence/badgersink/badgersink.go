// Package badgersink implements an alternative persistence.ByteSink backed
// by an embedded dgraph-io/badger/v4 LSM store instead of a flat file,
// grounded on Voskan-arena-cache's pairing of badger with an in-process
// sharded cache in the same domain.
package badgersink

import (
	"errors"

	"github.com/dgraph-io/badger/v4"
)

// snapshotKey is the single fixed key a Sink stores its blob under.
var snapshotKey = []byte("tierkv:snapshot")

// Sink stores a snapshot blob under a fixed key in a Badger database
// rooted at Dir.
type Sink struct {
	db *badger.DB
}

// Open opens (creating if absent) a Badger database at dir and returns a
// Sink backed by it. The caller owns the returned Sink's lifetime and
// should call Close when done.
func Open(dir string) (*Sink, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Sink{db: db}, nil
}

// Close releases the underlying Badger database.
func (s *Sink) Close() error {
	return s.db.Close()
}

// Write stores data under the fixed snapshot key, replacing any prior
// value.
func (s *Sink) Write(data []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(snapshotKey, data)
	})
}

// Read returns the blob currently stored under the snapshot key.
func (s *Sink) Read() ([]byte, error) {
	var out []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(snapshotKey)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			out = append([]byte(nil), val...)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Exists reports whether a snapshot has ever been written.
func (s *Sink) Exists() (bool, error) {
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(snapshotKey)
		return err
	})
	if err == nil {
		return true, nil
	}
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	return false, err
}
