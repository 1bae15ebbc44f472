// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the use case layer and the infrastructure layer.
package repository

import "github.com/pkg/errors"

// Domain-specific persistence errors.
var (
	// ErrBusinessInfoNotFound is returned when the singleton row has not been created yet.
	ErrBusinessInfoNotFound = errors.New("business info not found")
	// ErrSeoSettingsNotFound is returned when the singleton row has not been created yet.
	ErrSeoSettingsNotFound = errors.New("seo settings not found")
	// ErrTestimonialNotFound is returned when a testimonial id does not exist.
	ErrTestimonialNotFound = errors.New("testimonial not found")
)
