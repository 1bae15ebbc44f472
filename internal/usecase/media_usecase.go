package usecase

import (
	"context"
	"io"

	"housecash/internal/domain/service"
)

// UploadInput is one multipart file.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// MediaUsecase accepts image uploads and serves them back.
type MediaUsecase interface {
	Upload(ctx context.Context, input *UploadInput) (*service.StoredObject, error)

	// Open streams a stored object and its content type.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)
}
