package impl

import (
	"context"
	"io"
	"regexp"
	"strings"
	"testing"

	"housecash/config"
	domainerrors "housecash/internal/domain/errors"
	"housecash/internal/domain/service"
	mockSvc "housecash/internal/mocks/service"
	"housecash/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestMediaService(t *testing.T, maxBytes int64) (usecase.MediaUsecase, *mockSvc.MockMediaStorage) {
	storage := mockSvc.NewMockMediaStorage(t)
	cfg := &config.Config{Storage: &config.StorageConfig{MaxBytes: maxBytes}}

	return NewMediaService(storage, cfg, discardLogger()), storage
}

func TestMediaService_Upload(t *testing.T) {
	svc, storage := newTestMediaService(t, 1024)
	ctx := context.Background()
	keyPattern := regexp.MustCompile(`^uploads/\d{4}/\d{2}/[0-9a-f-]{36}\.png$`)

	storage.EXPECT().
		Put(ctx, mock.MatchedBy(keyPattern.MatchString), "image/png", mock.Anything).
		RunAndReturn(func(_ context.Context, key, contentType string, r io.Reader) (*service.StoredObject, error) {
			data, err := io.ReadAll(r)
			if err != nil {
				return nil, err
			}

			return &service.StoredObject{Key: key, URL: "/media/" + key, ContentType: contentType, Size: int64(len(data))}, nil
		})

	obj, err := svc.Upload(ctx, &usecase.UploadInput{
		Filename:    "Logo.PNG",
		ContentType: "image/png",
		Size:        4,
		Body:        strings.NewReader("\x89PNG"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), obj.Size)
	assert.True(t, strings.HasPrefix(obj.URL, "/media/uploads/"))
}

func TestMediaService_Upload_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.UploadInput
		want  error
	}{
		{
			name:  "not an image",
			input: &usecase.UploadInput{Filename: "notes.pdf", ContentType: "application/pdf", Size: 10, Body: strings.NewReader("x")},
			want:  domainerrors.ErrMediaUnsupportedType,
		},
		{
			name:  "too large",
			input: &usecase.UploadInput{Filename: "big.jpg", ContentType: "image/jpeg", Size: 2048, Body: strings.NewReader("x")},
			want:  domainerrors.ErrMediaTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestMediaService(t, 1024)

			_, err := svc.Upload(context.Background(), tt.input)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.want.(domainerrors.AppError).ErrorCode(), appErr.ErrorCode())
		})
	}
}

func TestMediaService_NotConfigured(t *testing.T) {
	svc := NewMediaService(nil, &config.Config{}, discardLogger())

	_, err := svc.Upload(context.Background(), &usecase.UploadInput{ContentType: "image/png"})
	assert.ErrorIs(t, err, domainerrors.ErrMediaNotConfigured)

	_, _, err = svc.Open(context.Background(), "uploads/x.png")
	assert.ErrorIs(t, err, domainerrors.ErrMediaNotConfigured)
}

func TestMediaService_Open_NotFound(t *testing.T) {
	svc, storage := newTestMediaService(t, 1024)
	ctx := context.Background()

	storage.EXPECT().Open(ctx, "uploads/missing.png").Return(nil, "", service.ErrMediaNotFound)

	_, _, err := svc.Open(ctx, "uploads/missing.png")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestMediaService_Upload_StorageFailure(t *testing.T) {
	svc, storage := newTestMediaService(t, 0)
	ctx := context.Background()

	storage.EXPECT().Put(ctx, mock.Anything, "image/gif", mock.Anything).Return(nil, errors.New("bucket gone"))

	_, err := svc.Upload(ctx, &usecase.UploadInput{Filename: "a.gif", ContentType: "image/gif", Body: strings.NewReader("GIF89a")})
	assert.ErrorIs(t, err, domainerrors.ErrMediaUploadFailed)
}
