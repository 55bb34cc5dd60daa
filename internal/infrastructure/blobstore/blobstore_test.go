package blobstore

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "blobs.db"), "http://localhost:8080")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestUploadGetRoundtrip(t *testing.T) {
	store := newTestStore(t)

	data := []byte("jpeg-bytes")
	ref, err := store.Upload(BucketImages, "tx-1/1000-photo.jpg", data, "image/jpeg")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if want := "http://localhost:8080/files/transaction-images/tx-1/1000-photo.jpg"; ref != want {
		t.Errorf("ref = %s, want %s", ref, want)
	}

	got, contentType, err := store.Get(BucketImages, "tx-1/1000-photo.jpg")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("data roundtrip mismatch: got %q", got)
	}
	if contentType != "image/jpeg" {
		t.Errorf("content type = %q, want image/jpeg", contentType)
	}
}

func TestGetMissingObject(t *testing.T) {
	store := newTestStore(t)

	if _, _, err := store.Get(BucketImages, "nope"); !errors.Is(err, ErrObjectNotFound) {
		t.Errorf("err = %v, want ErrObjectNotFound", err)
	}
	if _, _, err := store.Get("no-such-bucket", "nope"); !errors.Is(err, ErrObjectNotFound) {
		t.Errorf("unknown bucket err = %v, want ErrObjectNotFound", err)
	}
}

func TestUploadOverwritesSamePath(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Upload(BucketReceipts, "tx-1/receipt.pdf", []byte("v1"), "application/pdf"); err != nil {
		t.Fatalf("first upload: %v", err)
	}
	if _, err := store.Upload(BucketReceipts, "tx-1/receipt.pdf", []byte("v2"), "application/pdf"); err != nil {
		t.Fatalf("second upload: %v", err)
	}

	got, _, err := store.Get(BucketReceipts, "tx-1/receipt.pdf")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "v2" {
		t.Errorf("data = %q, want the overwritten value", got)
	}
}

func TestUploadCreatesUnknownBucket(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Upload("extra-bucket", "a", []byte("x"), "text/plain"); err != nil {
		t.Fatalf("upload to new bucket: %v", err)
	}
	got, _, err := store.Get("extra-bucket", "a")
	if err != nil || string(got) != "x" {
		t.Errorf("get from new bucket = %q, %v", got, err)
	}
}
