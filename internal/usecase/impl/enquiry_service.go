package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "housecash/internal/delivery/context"
	"housecash/internal/domain/entity"
	domainerrors "housecash/internal/domain/errors"
	"housecash/internal/domain/repository"
	"housecash/internal/domain/service"
	"housecash/internal/usecase"
)

type enquiryService struct {
	enquiryRepo repository.EnquiryRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// NewEnquiryService creates a new enquiry service instance
func NewEnquiryService(
	enquiryRepo repository.EnquiryRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.EnquiryUsecase {
	return &enquiryService{
		enquiryRepo: enquiryRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// SubmitEnquiry stores the enquiry and then notifies. Notification failures
// are logged and do not fail the submission.
func (srv *enquiryService) SubmitEnquiry(ctx context.Context, input *usecase.EnquiryInput) (*entity.Enquiry, error) {
	enquiry := &entity.Enquiry{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Phone:   strings.TrimSpace(input.Phone),
		Address: strings.TrimSpace(input.Address),
		Message: strings.TrimSpace(input.Message),
	}
	if enquiry.Email == "" && enquiry.Phone == "" {
		return nil, domainerrors.ErrEnquiryContactMissing
	}

	if err := srv.enquiryRepo.Create(ctx, enquiry); err != nil {
		return nil, fmt.Errorf("failed to create enquiry: %w", err)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	event := &service.EnquiryEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EnquiryID: enquiry.ID.String(),
		Name:      enquiry.Name,
		Email:     enquiry.Email,
		Phone:     enquiry.Phone,
		Address:   enquiry.Address,
		Message:   enquiry.Message,
		CreatedAt: enquiry.CreatedAt,
	}
	if err := srv.publisher.PublishEnquiryEvent(ctx, event); err != nil {
		logger.Error("Failed to publish enquiry event", "enquiryID", enquiry.ID, "error", err)
	}

	logger.Info("Enquiry received", "enquiryID", enquiry.ID)

	return enquiry, nil
}

func (srv *enquiryService) ListEnquiries(ctx context.Context, limit int) ([]*entity.Enquiry, error) {
	enquiries, err := srv.enquiryRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list enquiries: %w", err)
	}

	return enquiries, nil
}
