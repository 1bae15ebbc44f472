package service

import (
	"context"
	"time"
)

// EnquiryEvent is published when a new enquiry is stored and consumed by the notifier
type EnquiryEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	EnquiryID string    `json:"enquiry_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishEnquiryEvent publishes an enquiry event for async processing
	PublishEnquiryEvent(ctx context.Context, event *EnquiryEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
