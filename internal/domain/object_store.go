package domain

// ObjectStore persists uploaded files and hands back a stable reference
// that can be stored on the aggregate's rows. Deletion is deliberately
// absent: a failed status write after a successful upload leaves the
// object orphaned, and callers retry the whole operation with a fresh
// path instead of compensating.
type ObjectStore interface {
	Upload(bucket, path string, data []byte, contentType string) (string, error)
}
