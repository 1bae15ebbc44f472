package service

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

// ErrMediaNotFound is returned by Open for an unknown key.
var ErrMediaNotFound = errors.New("media not found")

// StoredObject describes an uploaded file.
type StoredObject struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// MediaStorage keeps uploaded images.
type MediaStorage interface {
	// Put writes r under key and returns its public URL.
	Put(ctx context.Context, key, contentType string, r io.Reader) (*StoredObject, error)

	// Open streams a stored object. The caller closes the reader.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)

	// Close releases the underlying bucket
	Close() error
}
