package handler

import (
	"net/http"
	"testing"

	"housecash/internal/domain/entity"
	domainerrors "housecash/internal/domain/errors"
	mockUC "housecash/internal/mocks/usecase"
	"housecash/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createTestEnquiryHandler(t *testing.T) (*echo.Echo, *mockUC.MockEnquiryUsecase) {
	enquiryUC := mockUC.NewMockEnquiryUsecase(t)
	h := NewEnquiryHandler(EnquiryHandlerParams{EnquiryUC: enquiryUC, Logger: discardLogger()})

	e := newEcho()
	e.POST("/api/enquiries", h.SubmitEnquiry)
	e.GET("/api/enquiries", h.ListEnquiries)

	return e, enquiryUC
}

func TestEnquiryHandler_SubmitEnquiry(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(enquiryUC *mockUC.MockEnquiryUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name: "stored",
			body: `{"name":"Pat","phone":"0400 000 000","message":"Selling in Preston"}`,
			setup: func(enquiryUC *mockUC.MockEnquiryUsecase) {
				enquiryUC.EXPECT().
					SubmitEnquiry(mock.Anything, &usecase.EnquiryInput{Name: "Pat", Phone: "0400 000 000", Message: "Selling in Preston"}).
					Return(&entity.Enquiry{ID: uuid.New(), Name: "Pat"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "message required",
			body:       `{"name":"Pat","email":"pat@example.com"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "invalid email",
			body:       `{"name":"Pat","email":"nope","message":"hi"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name: "no way to reply",
			body: `{"name":"Pat","message":"hi"}`,
			setup: func(enquiryUC *mockUC.MockEnquiryUsecase) {
				enquiryUC.EXPECT().SubmitEnquiry(mock.Anything, mock.Anything).
					Return(nil, domainerrors.ErrEnquiryContactMissing)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "ENQUIRY_CONTACT_MISSING",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, enquiryUC := createTestEnquiryHandler(t)
			if tt.setup != nil {
				tt.setup(enquiryUC)
			}

			rec := serve(e, http.MethodPost, "/api/enquiries", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decode[errorBody](t, rec).Code)
			}
		})
	}
}

func TestEnquiryHandler_ListEnquiries_Limit(t *testing.T) {
	t.Run("default limit", func(t *testing.T) {
		e, enquiryUC := createTestEnquiryHandler(t)
		enquiryUC.EXPECT().ListEnquiries(mock.Anything, defaultEnquiryListLimit).Return([]*entity.Enquiry{}, nil)

		rec := serve(e, http.MethodGet, "/api/enquiries", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("explicit limit", func(t *testing.T) {
		e, enquiryUC := createTestEnquiryHandler(t)
		enquiryUC.EXPECT().ListEnquiries(mock.Anything, 10).Return([]*entity.Enquiry{}, nil)

		rec := serve(e, http.MethodGet, "/api/enquiries?limit=10", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid limit", func(t *testing.T) {
		e, _ := createTestEnquiryHandler(t)

		rec := serve(e, http.MethodGet, "/api/enquiries?limit=abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decode[errorBody](t, rec).Code)
	})
}
