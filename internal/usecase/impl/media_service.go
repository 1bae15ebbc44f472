package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"housecash/config"
	deliverycontext "housecash/internal/delivery/context"
	domainerrors "housecash/internal/domain/errors"
	"housecash/internal/domain/service"
	"housecash/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type mediaService struct {
	storage  service.MediaStorage
	maxBytes int64
	logger   *slog.Logger
}

// NewMediaService creates a new media service. storage is nil when no bucket
// is configured, in which case every call fails with ErrMediaNotConfigured.
func NewMediaService(storage service.MediaStorage, cfg *config.Config, logger *slog.Logger) usecase.MediaUsecase {
	var maxBytes int64
	if cfg.Storage != nil {
		maxBytes = cfg.Storage.MaxBytes
	}

	return &mediaService{
		storage:  storage,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// Upload stores an image under uploads/{yyyy}/{mm}/{uuid}{ext}.
func (srv *mediaService) Upload(ctx context.Context, input *usecase.UploadInput) (*service.StoredObject, error) {
	if srv.storage == nil {
		return nil, domainerrors.ErrMediaNotConfigured
	}
	if !strings.HasPrefix(input.ContentType, "image/") {
		return nil, domainerrors.ErrMediaUnsupportedType
	}
	if srv.maxBytes > 0 && input.Size > srv.maxBytes {
		return nil, domainerrors.ErrMediaTooLarge.WithDetails(fmt.Sprintf("limit is %d bytes", srv.maxBytes))
	}

	body := input.Body
	if srv.maxBytes > 0 {
		body = io.LimitReader(input.Body, srv.maxBytes)
	}

	key := objectKey(time.Now().UTC(), input.Filename)
	obj, err := srv.storage.Put(ctx, key, input.ContentType, body)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrMediaUploadFailed, err.Error())
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Media uploaded", "key", obj.Key, "size", obj.Size)

	return obj, nil
}

func (srv *mediaService) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	if srv.storage == nil {
		return nil, "", domainerrors.ErrMediaNotConfigured
	}

	rc, contentType, err := srv.storage.Open(ctx, key)
	if errors.Is(err, service.ErrMediaNotFound) {
		return nil, "", errors.Wrap(domainerrors.ErrNotFound, key)
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to open media: %w", err)
	}

	return rc, contentType, nil
}

func objectKey(now time.Time, filename string) string {
	ext := strings.ToLower(path.Ext(filename))

	return fmt.Sprintf("uploads/%04d/%02d/%s%s", now.Year(), int(now.Month()), uuid.New().String(), ext)
}
