package handler

import (
	"log/slog"
	"net/http"
	"path"
	"strings"

	"housecash/internal/delivery/api/response"
	domainerrors "housecash/internal/domain/errors"
	"housecash/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	MediaUC usecase.MediaUsecase
	Logger  *slog.Logger
}

type MediaHandler struct {
	mediaUC usecase.MediaUsecase
	logger  *slog.Logger
}

func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{
		mediaUC: params.MediaUC,
		logger:  params.Logger,
	}
}

// Upload stores the multipart "file" field and returns its public URL.
func (h *MediaHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BindingError(c, "A file field is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BindingError(c, "Unable to read uploaded file")
	}
	defer file.Close()

	stored, err := h.mediaUC.Upload(c.Request().Context(), &usecase.UploadInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		return response.Fail(c, h.logger, err, domainerrors.ErrMediaUploadFailed)
	}

	return response.Success(c, http.StatusCreated, stored)
}

// Serve streams /media/<key> from the bucket.
func (h *MediaHandler) Serve(c echo.Context) error {
	key := path.Clean("/" + c.Param("*"))
	key = strings.TrimPrefix(key, "/")
	if key == "" || key == "." {
		return echo.ErrNotFound
	}

	body, contentType, err := h.mediaUC.Open(c.Request().Context(), key)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer body.Close()

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=86400")

	return c.Stream(http.StatusOK, contentType, body)
}
