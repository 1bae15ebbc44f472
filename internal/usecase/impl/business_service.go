// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"housecash/config"
	deliverycontext "housecash/internal/delivery/context"
	"housecash/internal/domain/entity"
	"housecash/internal/domain/repository"
	"housecash/internal/usecase"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

type businessService struct {
	businessRepo repository.BusinessInfoRepository
	defaultName  string
	logger       *slog.Logger
}

// NewBusinessService creates a new business service instance
func NewBusinessService(
	businessRepo repository.BusinessInfoRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.BusinessUsecase {
	return &businessService{
		businessRepo: businessRepo,
		defaultName:  cfg.Site.DefaultName,
		logger:       logger,
	}
}

func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetBusinessInfo returns the stored singleton or nil.
func (srv *businessService) GetBusinessInfo(ctx context.Context) (*entity.BusinessInfo, error) {
	info, err := srv.businessRepo.Find(ctx)
	if errors.Is(err, repository.ErrBusinessInfoNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find business info: %w", err)
	}

	return info, nil
}

// UpdateBusinessInfo upserts the contact details. Hours and social profiles are kept.
func (srv *businessService) UpdateBusinessInfo(ctx context.Context, input *usecase.BusinessInfoInput) (*entity.BusinessInfo, error) {
	info := &entity.BusinessInfo{
		BusinessName:    strings.TrimSpace(input.BusinessName),
		LegalName:       input.LegalName,
		Description:     input.Description,
		Telephone:       input.Telephone,
		Email:           input.Email,
		Website:         input.Website,
		StreetAddress:   input.StreetAddress,
		City:            input.City,
		State:           input.State,
		PostalCode:      input.PostalCode,
		Country:         input.Country,
		Latitude:        coordinate(input.Latitude),
		Longitude:       coordinate(input.Longitude),
		PriceRange:      input.PriceRange,
		Logo:            input.Logo,
		Image:           input.Image,
		FoundingDate:    input.FoundingDate,
		PaymentAccepted: input.PaymentAccepted,
		AreaServed:      input.AreaServed,
	}

	if err := srv.businessRepo.Upsert(ctx, info); err != nil {
		return nil, fmt.Errorf("failed to upsert business info: %w", err)
	}

	srv.log(ctx).Info("Business info updated", "businessID", info.ID)

	return info, nil
}

// GetOpeningHours returns the stored week, or the default week when nothing is stored.
func (srv *businessService) GetOpeningHours(ctx context.Context) (entity.OpeningHours, error) {
	info, err := srv.GetBusinessInfo(ctx)
	if err != nil {
		return nil, err
	}
	if info == nil || info.OpeningHours == nil {
		return entity.DefaultOpeningHours(), nil
	}

	return info.OpeningHours, nil
}

func (srv *businessService) UpdateOpeningHours(ctx context.Context, hours entity.OpeningHours) error {
	if hours == nil {
		hours = entity.OpeningHours{}
	}

	if err := srv.businessRepo.UpdateOpeningHours(ctx, hours, srv.defaultName); err != nil {
		return fmt.Errorf("failed to update opening hours: %w", err)
	}

	srv.log(ctx).Info("Opening hours updated", "days", len(hours))

	return nil
}

// GetSocialProfiles never returns nil.
func (srv *businessService) GetSocialProfiles(ctx context.Context) ([]entity.SocialProfile, error) {
	info, err := srv.GetBusinessInfo(ctx)
	if err != nil {
		return nil, err
	}
	if info == nil || info.SocialProfiles == nil {
		return []entity.SocialProfile{}, nil
	}

	return info.SocialProfiles, nil
}

func (srv *businessService) UpdateSocialProfiles(ctx context.Context, profiles []entity.SocialProfile) error {
	if profiles == nil {
		profiles = []entity.SocialProfile{}
	}

	if err := srv.businessRepo.UpdateSocialProfiles(ctx, profiles, srv.defaultName); err != nil {
		return fmt.Errorf("failed to update social profiles: %w", err)
	}

	srv.log(ctx).Info("Social profiles updated", "count", len(profiles))

	return nil
}

// coordinate accepts a number or numeric string. Missing, blank or
// unparsable values become nil.
func coordinate(raw any) *float64 {
	if raw == nil {
		return nil
	}
	if s, ok := raw.(string); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		raw = s
	}

	v, err := cast.ToFloat64E(raw)
	if err != nil {
		return nil
	}

	return &v
}
