// Package model contains the GORM structs mapped to database tables.
package model

import "github.com/google/uuid"

func assignID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

// All lists every model for schema migration.
func All() []any {
	return []any{
		&BusinessInfoModel{},
		&SeoSettingsModel{},
		&BusinessLocationModel{},
		&TestimonialModel{},
		&EnquiryModel{},
	}
}
