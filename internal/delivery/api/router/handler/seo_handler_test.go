package handler

import (
	"net/http"
	"testing"

	"housecash/internal/domain/entity"
	mockUC "housecash/internal/mocks/usecase"
	"housecash/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSeoHandler(t *testing.T) (*SeoHandler, *mockUC.MockSeoUsecase) {
	seoUC := mockUC.NewMockSeoUsecase(t)

	return NewSeoHandler(SeoHandlerParams{SeoUC: seoUC, Logger: discardLogger()}), seoUC
}

func TestSeoHandler_GetSeoSettings(t *testing.T) {
	h, seoUC := createTestSeoHandler(t)
	e := newEcho()
	e.GET("/api/seo-settings", h.GetSeoSettings)

	seoUC.EXPECT().GetSettings(mock.Anything).Return(entity.DefaultSeoSettings(), nil)

	rec := serve(e, http.MethodGet, "/api/seo-settings", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[entity.SeoSettings](t, rec)
	assert.Equal(t, "WeBuyHouseCash.com.au", body.SiteName)
	assert.Equal(t, "We buy houses for cash in Melbourne, Australia", body.SiteDescription)
}

func TestSeoHandler_GetSeoSettings_Failure(t *testing.T) {
	h, seoUC := createTestSeoHandler(t)
	e := newEcho()
	e.GET("/api/seo-settings", h.GetSeoSettings)

	seoUC.EXPECT().GetSettings(mock.Anything).Return(nil, errors.New(`relation "seo_settings" does not exist`))

	rec := serve(e, http.MethodGet, "/api/seo-settings", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode[errorBody](t, rec)
	assert.Equal(t, "SEO_SETTINGS_FETCH_FAILED", body.Code)
	assert.Equal(t, "Failed to fetch SEO settings", body.Error)
	assert.NotContains(t, rec.Body.String(), "relation")
}

func TestSeoHandler_SaveSeoSettings(t *testing.T) {
	h, seoUC := createTestSeoHandler(t)
	e := newEcho()
	e.POST("/api/seo-settings", h.SaveSeoSettings)

	saved := &entity.SeoSettings{SiteName: "Cash Site", GoogleAnalyticsID: "G-123"}
	seoUC.EXPECT().
		SaveSettings(mock.Anything, &usecase.SeoSettingsInput{SiteName: ptr("Cash Site"), GoogleAnalyticsID: ptr("G-123")}).
		Return(saved, nil)

	rec := serve(e, http.MethodPost, "/api/seo-settings", `{"siteName":"Cash Site","googleAnalyticsId":"G-123"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[entity.SeoSettings](t, rec)
	assert.Equal(t, "Cash Site", body.SiteName)
	assert.Equal(t, "G-123", body.GoogleAnalyticsID)
}

func TestSeoHandler_SaveSeoSettings_Errors(t *testing.T) {
	t.Run("malformed body", func(t *testing.T) {
		h, _ := createTestSeoHandler(t)
		e := newEcho()
		e.POST("/api/seo-settings", h.SaveSeoSettings)

		rec := serve(e, http.MethodPost, "/api/seo-settings", `{"siteName":`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decode[errorBody](t, rec).Code)
	})

	t.Run("og image is not a url", func(t *testing.T) {
		h, _ := createTestSeoHandler(t)
		e := newEcho()
		e.POST("/api/seo-settings", h.SaveSeoSettings)

		rec := serve(e, http.MethodPost, "/api/seo-settings", `{"siteName":"x","defaultOgImage":"not an image"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode[errorBody](t, rec)
		assert.Equal(t, "VALIDATION_ERROR", body.Code)
		assert.Equal(t, "defaultOgImage: Please enter a valid URL", body.Details)
	})

	t.Run("storage failure", func(t *testing.T) {
		h, seoUC := createTestSeoHandler(t)
		e := newEcho()
		e.POST("/api/seo-settings", h.SaveSeoSettings)

		seoUC.EXPECT().SaveSettings(mock.Anything, mock.Anything).Return(nil, errors.New("deadlock detected"))

		rec := serve(e, http.MethodPost, "/api/seo-settings", `{"siteName":"x"}`)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to update SEO settings", decode[errorBody](t, rec).Error)
	})
}
