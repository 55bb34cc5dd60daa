// Package blobstore is the embedded object store backing product images,
// payment proofs and dispatch receipts. All blobs live in a single BoltDB
// file, one bucket per logical bucket name, keyed by object path. There is
// no delete: paths embed a timestamp, so retried uploads never collide and
// orphaned blobs from failed operations are harmless.
package blobstore

import (
	"errors"
	"fmt"
	"time"

	bolt "github.com/boltdb/bolt"
)

var ErrObjectNotFound = errors.New("object not found")

const (
	BucketImages   = "transaction-images"
	BucketReceipts = "transaction-receipts"
)

type Store struct {
	db      *bolt.DB
	baseURL string
}

// New opens (or creates) the blob database and ensures the known buckets
// exist. baseURL prefixes the references handed back by Upload.
func New(path, baseURL string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range []string{BucketImages, BucketReceipts} {
			if _, err := tx.CreateBucketIfNotExists([]byte(bucket)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, baseURL: baseURL}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Upload stores the object and returns its stable public reference.
// Writing the same path twice overwrites, which is the behaviour a retried
// operation wants.
func (s *Store) Upload(bucket, path string, data []byte, contentType string) (string, error) {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucket))
		if err != nil {
			return err
		}
		if err := b.Put([]byte(path), data); err != nil {
			return err
		}
		return b.Put(metaKey(path), []byte(contentType))
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/files/%s/%s", s.baseURL, bucket, path), nil
}

// Get returns the object bytes and content type for serving over HTTP.
func (s *Store) Get(bucket, path string) ([]byte, string, error) {
	var data []byte
	var contentType string

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return ErrObjectNotFound
		}
		v := b.Get([]byte(path))
		if v == nil {
			return ErrObjectNotFound
		}
		data = append([]byte(nil), v...)
		if ct := b.Get(metaKey(path)); ct != nil {
			contentType = string(ct)
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	return data, contentType, nil
}

func metaKey(path string) []byte {
	return []byte("meta:" + path)
}
