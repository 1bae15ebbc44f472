package model

import (
	"time"

	"housecash/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BusinessInfoModel is the GORM struct for the 'business_info' table.
// Opening hours and social profiles live in jsonb columns; a JSON null means never saved.
type BusinessInfoModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	BusinessName    string    `gorm:"type:varchar(255);not null"`
	LegalName       string    `gorm:"type:varchar(255)"`
	Description     string    `gorm:"type:text"`
	Telephone       string    `gorm:"type:varchar(50)"`
	Email           string    `gorm:"type:varchar(255)"`
	Website         string    `gorm:"type:varchar(255)"`
	StreetAddress   string    `gorm:"type:varchar(255)"`
	City            string    `gorm:"type:varchar(100)"`
	State           string    `gorm:"type:varchar(100)"`
	PostalCode      string    `gorm:"type:varchar(20)"`
	Country         string    `gorm:"type:varchar(100)"`
	Latitude        *float64
	Longitude       *float64
	PriceRange      string                                     `gorm:"type:varchar(50)"`
	Logo            string                                     `gorm:"type:varchar(500)"`
	Image           string                                     `gorm:"type:varchar(500)"`
	FoundingDate    string                                     `gorm:"type:varchar(50)"`
	PaymentAccepted string                                     `gorm:"type:varchar(255)"`
	AreaServed      string                                     `gorm:"type:text"`
	OpeningHours    datatypes.JSONType[entity.OpeningHours]    `gorm:"type:jsonb;not null"`
	SocialProfiles  datatypes.JSONType[[]entity.SocialProfile] `gorm:"type:jsonb;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessInfoModel) TableName() string {
	return "business_info"
}

// BeforeCreate assigns the primary key.
func (m *BusinessInfoModel) BeforeCreate(_ *gorm.DB) error {
	assignID(&m.ID)

	return nil
}

// SeoSettingsModel is the GORM struct for the 'seo_settings' table.
type SeoSettingsModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key"`
	SiteName           string    `gorm:"type:varchar(255);not null"`
	SiteDescription    string    `gorm:"type:text;not null"`
	GoogleAnalyticsID  string    `gorm:"column:google_analytics_id;type:varchar(50)"`
	GoogleTagManagerID string    `gorm:"column:google_tag_manager_id;type:varchar(50)"`
	FacebookPixelID    string    `gorm:"column:facebook_pixel_id;type:varchar(50)"`
	GoogleVerification string    `gorm:"type:varchar(255)"`
	BingVerification   string    `gorm:"type:varchar(255)"`
	DefaultOgImage     string    `gorm:"type:varchar(500)"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (SeoSettingsModel) TableName() string {
	return "seo_settings"
}

// BeforeCreate assigns the primary key.
func (m *SeoSettingsModel) BeforeCreate(_ *gorm.DB) error {
	assignID(&m.ID)

	return nil
}
