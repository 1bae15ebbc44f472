// Package storage keeps uploaded media in a gocloud blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"housecash/config"
	"housecash/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for development
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets for production
	_ "gocloud.dev/blob/memblob"  // mem:// buckets for tests
	"gocloud.dev/gcerrors"
)

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params holds dependencies for MediaStorage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewMediaStorage opens storage.bucketUrl. Without one, uploads are disabled
// and a nil storage is returned.
func NewMediaStorage(params Params) (service.MediaStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		params.Logger.Info("Storage not configured, media uploads disabled")

		return nil, nil
	}

	storage, err := Open(params.Ctx, cfg.BucketURL, cfg.PublicBaseURL)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Media bucket opened", slog.String("bucket", cfg.BucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return storage.Close()
		},
	})

	return storage, nil
}

// Open connects to bucketURL. Object URLs are publicBaseURL + "/" + key.
func Open(ctx context.Context, bucketURL, publicBaseURL string) (service.MediaStorage, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

func (s *blobStorage) Put(ctx context.Context, key, contentType string, r io.Reader) (*service.StoredObject, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create blob writer")
	}

	size, err := io.Copy(w, r)
	if err != nil {
		_ = w.Close()

		return nil, errors.Wrap(err, "failed to write blob")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to commit blob")
	}

	return &service.StoredObject{
		Key:         key,
		URL:         s.publicBaseURL + "/" + key,
		ContentType: contentType,
		Size:        size,
	}, nil
}

func (s *blobStorage) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", service.ErrMediaNotFound
		}

		return nil, "", errors.Wrap(err, "failed to open blob")
	}

	return r, r.ContentType(), nil
}

func (s *blobStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}
