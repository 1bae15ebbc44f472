package handler

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"housecash/config"
	"housecash/internal/domain/entity"
	"housecash/internal/domain/repository"
	mockUC "housecash/internal/mocks/usecase"
	"housecash/internal/usecase"
	"housecash/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memoryBusinessRepo is a BusinessInfoRepository backed by one struct.
type memoryBusinessRepo struct {
	mu   sync.Mutex
	info *entity.BusinessInfo
}

func (r *memoryBusinessRepo) Find(_ context.Context) (*entity.BusinessInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.info == nil {
		return nil, repository.ErrBusinessInfoNotFound
	}
	clone := *r.info

	return &clone, nil
}

func (r *memoryBusinessRepo) Upsert(_ context.Context, info *entity.BusinessInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.info != nil {
		info.ID = r.info.ID
		info.OpeningHours = r.info.OpeningHours
		info.SocialProfiles = r.info.SocialProfiles
	} else {
		info.ID = uuid.New()
	}
	clone := *info
	r.info = &clone

	return nil
}

func (r *memoryBusinessRepo) UpdateOpeningHours(_ context.Context, hours entity.OpeningHours, defaultName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ensure(defaultName)
	r.info.OpeningHours = hours

	return nil
}

func (r *memoryBusinessRepo) UpdateSocialProfiles(_ context.Context, profiles []entity.SocialProfile, defaultName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ensure(defaultName)
	r.info.SocialProfiles = profiles

	return nil
}

func (r *memoryBusinessRepo) ensure(defaultName string) {
	if r.info == nil {
		r.info = &entity.BusinessInfo{ID: uuid.New(), BusinessName: defaultName}
	}
}

func newBusinessTestHandler(repo repository.BusinessInfoRepository) *BusinessHandler {
	cfg := &config.Config{}
	cfg.Site.DefaultName = "WeBuyHouseCash Melbourne"

	return NewBusinessHandler(BusinessHandlerParams{
		BusinessUC: impl.NewBusinessService(repo, cfg, discardLogger()),
		Logger:     discardLogger(),
	})
}

func TestBusinessHandler_HoursRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "wrapped body",
			body: `{"openingHours":[{"day":"Monday","opens":"08:00","closes":"16:00","isClosed":false},{"day":"Sunday","opens":"","closes":"","isClosed":true}]}`,
		},
		{
			name: "bare array",
			body: `[{"day":"Monday","opens":"08:00","closes":"16:00","isClosed":false},{"day":"Sunday","opens":"","closes":"","isClosed":true}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memoryBusinessRepo{}
			h := newBusinessTestHandler(repo)
			e := newEcho()
			e.GET("/api/business-hours", h.GetBusinessHours)
			e.PUT("/api/business-hours", h.UpdateBusinessHours)

			put := serve(e, http.MethodPut, "/api/business-hours", tt.body)
			require.Equal(t, http.StatusOK, put.Code, put.Body.String())
			assert.JSONEq(t, `{"success":true}`, put.Body.String())

			get := serve(e, http.MethodGet, "/api/business-hours", "")
			require.Equal(t, http.StatusOK, get.Code)

			hours := decode[[]entity.BusinessHour](t, get)
			assert.Equal(t, []entity.BusinessHour{
				{Day: "Monday", Opens: "08:00", Closes: "16:00"},
				{Day: "Sunday", IsClosed: true},
			}, hours)

			// The row is created with the default name when missing.
			assert.Equal(t, "WeBuyHouseCash Melbourne", repo.info.BusinessName)
		})
	}
}

func TestBusinessHandler_GetBusinessHours_Default(t *testing.T) {
	h := newBusinessTestHandler(&memoryBusinessRepo{})
	e := newEcho()
	e.GET("/api/business-hours", h.GetBusinessHours)

	rec := serve(e, http.MethodGet, "/api/business-hours", "")

	require.Equal(t, http.StatusOK, rec.Code)
	hours := decode[[]entity.BusinessHour](t, rec)
	assert.Equal(t, []entity.BusinessHour(entity.DefaultOpeningHours()), hours)
}

func TestBusinessHandler_UpdateBusinessHours_InvalidBody(t *testing.T) {
	h := newBusinessTestHandler(&memoryBusinessRepo{})
	e := newEcho()
	e.PUT("/api/business-hours", h.UpdateBusinessHours)

	rec := serve(e, http.MethodPut, "/api/business-hours", `{"openingHours":"monday"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decode[errorBody](t, rec).Code)
}

func TestBusinessHandler_SocialProfilesRoundTrip(t *testing.T) {
	h := newBusinessTestHandler(&memoryBusinessRepo{})
	e := newEcho()
	e.GET("/api/social-profiles", h.GetSocialProfiles)
	e.PUT("/api/social-profiles", h.UpdateSocialProfiles)

	empty := serve(e, http.MethodGet, "/api/social-profiles", "")
	require.Equal(t, http.StatusOK, empty.Code)
	assert.JSONEq(t, `[]`, empty.Body.String())

	put := serve(e, http.MethodPut, "/api/social-profiles", `{"socialProfiles":[{"platform":"facebook","url":"https://facebook.com/x"}]}`)
	require.Equal(t, http.StatusOK, put.Code)

	get := serve(e, http.MethodGet, "/api/social-profiles", "")
	assert.JSONEq(t, `[{"platform":"facebook","url":"https://facebook.com/x"}]`, get.Body.String())
}

func TestBusinessHandler_GetBusinessInfo_EmptyObject(t *testing.T) {
	h := newBusinessTestHandler(&memoryBusinessRepo{})
	e := newEcho()
	e.GET("/api/business-info", h.GetBusinessInfo)

	rec := serve(e, http.MethodGet, "/api/business-info", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

func TestBusinessHandler_UpdateBusinessInfo_Validation(t *testing.T) {
	businessUC := mockUC.NewMockBusinessUsecase(t)
	h := NewBusinessHandler(BusinessHandlerParams{BusinessUC: businessUC, Logger: discardLogger()})
	e := newEcho()
	e.PUT("/api/business-info", h.UpdateBusinessInfo)

	rec := serve(e, http.MethodPut, "/api/business-info", `{"businessName":"","telephone":"abc"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[errorBody](t, rec)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	assert.Contains(t, body.Details, "businessName is required")
	assert.Contains(t, body.Details, "telephone: Please enter a valid phone number")
}

func TestBusinessHandler_UpdateBusinessInfo_StorageErrorIsGeneric(t *testing.T) {
	businessUC := mockUC.NewMockBusinessUsecase(t)
	h := NewBusinessHandler(BusinessHandlerParams{BusinessUC: businessUC, Logger: discardLogger()})
	e := newEcho()
	e.PUT("/api/business-info", h.UpdateBusinessInfo)

	businessUC.EXPECT().
		UpdateBusinessInfo(mock.Anything, mock.MatchedBy(func(in *usecase.BusinessInfoInput) bool {
			return in.BusinessName == "Acme" && in.Latitude == "-37.8"
		})).
		Return(nil, errors.New("pq: connection refused"))

	rec := serve(e, http.MethodPut, "/api/business-info", `{"businessName":"Acme","latitude":"-37.8"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode[errorBody](t, rec)
	assert.Equal(t, "Failed to update business info", body.Error)
	assert.Equal(t, "BUSINESS_INFO_UPDATE_FAILED", body.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestBusinessHandler_UpdateBusinessInfo_ImageURLs(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantDetails string
	}{
		{name: "bad logo", body: `{"businessName":"Acme","logo":"my logo"}`, wantDetails: "logo: Please enter a valid URL"},
		{name: "bad image", body: `{"businessName":"Acme","image":"javascript:alert(1)"}`, wantDetails: "image: Please enter a valid URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			businessUC := mockUC.NewMockBusinessUsecase(t)
			h := NewBusinessHandler(BusinessHandlerParams{BusinessUC: businessUC, Logger: discardLogger()})
			e := newEcho()
			e.PUT("/api/business-info", h.UpdateBusinessInfo)

			rec := serve(e, http.MethodPut, "/api/business-info", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantDetails, decode[errorBody](t, rec).Details)
		})
	}
}

func TestBusinessHandler_UpdateBusinessInfo_UploadedLogo(t *testing.T) {
	businessUC := mockUC.NewMockBusinessUsecase(t)
	h := NewBusinessHandler(BusinessHandlerParams{BusinessUC: businessUC, Logger: discardLogger()})
	e := newEcho()
	e.PUT("/api/business-info", h.UpdateBusinessInfo)

	businessUC.EXPECT().
		UpdateBusinessInfo(mock.Anything, mock.MatchedBy(func(in *usecase.BusinessInfoInput) bool {
			return in.Logo == "/media/2024/05/logo.png" && in.Image == "https://cdn.example.com/house.jpg"
		})).
		Return(&entity.BusinessInfo{BusinessName: "Acme"}, nil)

	rec := serve(e, http.MethodPut, "/api/business-info",
		`{"businessName":"Acme","logo":"/media/2024/05/logo.png","image":"https://cdn.example.com/house.jpg"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}
