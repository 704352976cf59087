package service

import (
	"context"
	"io"
	"time"
)

// ObjectInfo describes a stored media object.
type ObjectInfo struct {
	Name      string
	Size      int64
	UpdatedAt time.Time
}

// MediaStorageService is the object store behind report evidence and
// verification media. Keys are caller-chosen; the store does not invent
// paths.
type MediaStorageService interface {
	Upload(ctx context.Context, key string, contentType string, body io.Reader) error
	Remove(ctx context.Context, key string) error
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	PublicURL(key string) string
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
	Close() error
}
