package object

import (
	"context"
	"errors"
	"io"
	"time"
)

var (
	// ErrNotFound is returned when a storage key has no backing object.
	ErrNotFound = errors.New("object not found")
	// ErrAlreadyExists is returned when Save would overwrite an existing object.
	ErrAlreadyExists = errors.New("object already exists")
)

// ObjectStore defines the contract for saving and retrieving binary objects.
// Save namespaces keys by owner and never overwrites; SignURL issues a
// time-bounded fetch URL, never a permanent public one.
type ObjectStore interface {
	Save(ctx context.Context, ownerID string, fileName string, r io.Reader) (storageKey string, sizeBytes int64, mimeType string, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
	Delete(ctx context.Context, storageKey string) error
	SignURL(ctx context.Context, storageKey string, ttl time.Duration) (string, error)
}
