package entity

import (
	"time"

	"github.com/google/uuid"
)

// Enquiry is a contact form submission from a prospective seller.
type Enquiry struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
