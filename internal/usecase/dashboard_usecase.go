package usecase

import (
	"context"

	"housecash/internal/domain/entity"
)

// DashboardStats backs the admin landing page.
type DashboardStats struct {
	Testimonials    int64
	Enquiries       int64
	Locations       int
	RecentEnquiries []*entity.Enquiry
}

// DashboardUsecase summarises site content for the admin.
type DashboardUsecase interface {
	GetStats(ctx context.Context) (*DashboardStats, error)
}
