package usecase

import (
	"context"

	"housecash/internal/domain/entity"
)

// EnquiryInput is the contact form body. Email or phone must be present.
type EnquiryInput struct {
	Name    string `json:"name" form:"name" validate:"required,max=200"`
	Email   string `json:"email" form:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" form:"phone" validate:"omitempty,phone"`
	Address string `json:"address" form:"address" validate:"max=500"`
	Message string `json:"message" form:"message" validate:"required,max=5000"`
}

// EnquiryUsecase stores contact enquiries and announces them to the notifier.
type EnquiryUsecase interface {
	SubmitEnquiry(ctx context.Context, input *EnquiryInput) (*entity.Enquiry, error)

	// ListEnquiries returns up to limit enquiries, newest first. 0 returns all.
	ListEnquiries(ctx context.Context, limit int) ([]*entity.Enquiry, error)
}
