package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessLocationModel is the GORM struct for the 'business_locations' table.
type BusinessLocationModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	Name          string    `gorm:"type:varchar(255);not null"`
	StreetAddress string    `gorm:"type:varchar(255);not null"`
	City          string    `gorm:"type:varchar(100);not null"`
	State         string    `gorm:"type:varchar(100);not null"`
	PostalCode    string    `gorm:"type:varchar(20);not null"`
	Country       string    `gorm:"type:varchar(100);not null"`
	Phone         string    `gorm:"type:varchar(50)"`
	Email         string    `gorm:"type:varchar(255)"`
	Latitude      *float64
	Longitude     *float64
	IsPrimary     bool `gorm:"not null;default:false;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessLocationModel) TableName() string {
	return "business_locations"
}

// BeforeCreate assigns the primary key.
func (m *BusinessLocationModel) BeforeCreate(_ *gorm.DB) error {
	assignID(&m.ID)

	return nil
}

// TestimonialModel is the GORM struct for the 'testimonials' table.
type TestimonialModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Location  string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text;not null"`
	Rating    int       `gorm:"not null;default:5"`
	Category  string    `gorm:"type:varchar(50);not null;index"`
	Featured  bool      `gorm:"not null;default:false;index"`
	Image     string    `gorm:"type:varchar(500)"`
	Date      time.Time `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TestimonialModel) TableName() string {
	return "testimonials"
}

// BeforeCreate assigns the primary key.
func (m *TestimonialModel) BeforeCreate(_ *gorm.DB) error {
	assignID(&m.ID)

	return nil
}

// EnquiryModel is the GORM struct for the 'enquiries' table.
type EnquiryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255)"`
	Phone     string    `gorm:"type:varchar(50)"`
	Address   string    `gorm:"type:varchar(500)"`
	Message   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (EnquiryModel) TableName() string {
	return "enquiries"
}

// BeforeCreate assigns the primary key.
func (m *EnquiryModel) BeforeCreate(_ *gorm.DB) error {
	assignID(&m.ID)

	return nil
}
