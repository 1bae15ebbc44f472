package impl

import (
	"context"
	"fmt"

	"housecash/internal/domain/repository"
	"housecash/internal/usecase"
)

const dashboardRecentEnquiries = 5

type dashboardService struct {
	testimonialRepo repository.TestimonialRepository
	enquiryRepo     repository.EnquiryRepository
	locationRepo    repository.LocationRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(
	testimonialRepo repository.TestimonialRepository,
	enquiryRepo repository.EnquiryRepository,
	locationRepo repository.LocationRepository,
) usecase.DashboardUsecase {
	return &dashboardService{
		testimonialRepo: testimonialRepo,
		enquiryRepo:     enquiryRepo,
		locationRepo:    locationRepo,
	}
}

func (srv *dashboardService) GetStats(ctx context.Context) (*usecase.DashboardStats, error) {
	testimonials, err := srv.testimonialRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count testimonials: %w", err)
	}

	enquiries, err := srv.enquiryRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count enquiries: %w", err)
	}

	locations, err := srv.locationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	recent, err := srv.enquiryRepo.ListRecent(ctx, dashboardRecentEnquiries)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent enquiries: %w", err)
	}

	return &usecase.DashboardStats{
		Testimonials:    testimonials,
		Enquiries:       enquiries,
		Locations:       len(locations),
		RecentEnquiries: recent,
	}, nil
}
