package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

const bucketHistory = "history"

// Store persists history entries in a bolt database.
type Store struct {
	db *bbolt.DB
}

// Open opens or creates the history database at path. The open times out
// quickly so a stuck lock from another instance does not hang the CLI.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketHistory))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record appends an entry, keyed by its timestamp for chronological
// iteration.
func (s *Store) Record(entry *Entry) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketHistory))

		data, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(entry.Timestamp.Format(time.RFC3339Nano)), data)
	})
}

// List returns the most recent entries, newest first. A non-positive
// limit returns everything.
func (s *Store) List(limit int) ([]Entry, error) {
	var entries []Entry

	err := s.db.View(func(tx *bbolt.Tx) error {
		cursor := tx.Bucket([]byte(bucketHistory)).Cursor()
		for k, v := cursor.Last(); k != nil && (limit <= 0 || len(entries) < limit); k, v = cursor.Prev() {
			var e Entry
			if err := json.Unmarshal(v, &e); err != nil {
				continue // skip malformed entries
			}
			entries = append(entries, e)
		}
		return nil
	})

	return entries, err
}
