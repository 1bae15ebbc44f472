package postgres

import (
	"housecash/internal/domain/entity"
	"housecash/internal/infra/persistence/model"

	"gorm.io/datatypes"
)

func toBusinessInfoDomain(data *model.BusinessInfoModel) *entity.BusinessInfo {
	return &entity.BusinessInfo{
		ID:              data.ID,
		BusinessName:    data.BusinessName,
		LegalName:       data.LegalName,
		Description:     data.Description,
		Telephone:       data.Telephone,
		Email:           data.Email,
		Website:         data.Website,
		StreetAddress:   data.StreetAddress,
		City:            data.City,
		State:           data.State,
		PostalCode:      data.PostalCode,
		Country:         data.Country,
		Latitude:        data.Latitude,
		Longitude:       data.Longitude,
		PriceRange:      data.PriceRange,
		Logo:            data.Logo,
		Image:           data.Image,
		FoundingDate:    data.FoundingDate,
		PaymentAccepted: data.PaymentAccepted,
		AreaServed:      data.AreaServed,
		OpeningHours:    data.OpeningHours.Data(),
		SocialProfiles:  data.SocialProfiles.Data(),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromBusinessInfoDomain(data *entity.BusinessInfo) *model.BusinessInfoModel {
	return &model.BusinessInfoModel{
		ID:              data.ID,
		BusinessName:    data.BusinessName,
		LegalName:       data.LegalName,
		Description:     data.Description,
		Telephone:       data.Telephone,
		Email:           data.Email,
		Website:         data.Website,
		StreetAddress:   data.StreetAddress,
		City:            data.City,
		State:           data.State,
		PostalCode:      data.PostalCode,
		Country:         data.Country,
		Latitude:        data.Latitude,
		Longitude:       data.Longitude,
		PriceRange:      data.PriceRange,
		Logo:            data.Logo,
		Image:           data.Image,
		FoundingDate:    data.FoundingDate,
		PaymentAccepted: data.PaymentAccepted,
		AreaServed:      data.AreaServed,
		OpeningHours:    datatypes.NewJSONType(data.OpeningHours),
		SocialProfiles:  datatypes.NewJSONType(data.SocialProfiles),
	}
}

func toSeoSettingsDomain(data *model.SeoSettingsModel) *entity.SeoSettings {
	return &entity.SeoSettings{
		ID:                 data.ID,
		SiteName:           data.SiteName,
		SiteDescription:    data.SiteDescription,
		GoogleAnalyticsID:  data.GoogleAnalyticsID,
		GoogleTagManagerID: data.GoogleTagManagerID,
		FacebookPixelID:    data.FacebookPixelID,
		GoogleVerification: data.GoogleVerification,
		BingVerification:   data.BingVerification,
		DefaultOgImage:     data.DefaultOgImage,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromSeoSettingsDomain(data *entity.SeoSettings) *model.SeoSettingsModel {
	return &model.SeoSettingsModel{
		ID:                 data.ID,
		SiteName:           data.SiteName,
		SiteDescription:    data.SiteDescription,
		GoogleAnalyticsID:  data.GoogleAnalyticsID,
		GoogleTagManagerID: data.GoogleTagManagerID,
		FacebookPixelID:    data.FacebookPixelID,
		GoogleVerification: data.GoogleVerification,
		BingVerification:   data.BingVerification,
		DefaultOgImage:     data.DefaultOgImage,
	}
}

func toLocationDomain(data *model.BusinessLocationModel) *entity.BusinessLocation {
	return &entity.BusinessLocation{
		ID:            data.ID,
		Name:          data.Name,
		StreetAddress: data.StreetAddress,
		City:          data.City,
		State:         data.State,
		PostalCode:    data.PostalCode,
		Country:       data.Country,
		Phone:         data.Phone,
		Email:         data.Email,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		IsPrimary:     data.IsPrimary,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromLocationDomain(data *entity.BusinessLocation) *model.BusinessLocationModel {
	return &model.BusinessLocationModel{
		ID:            data.ID,
		Name:          data.Name,
		StreetAddress: data.StreetAddress,
		City:          data.City,
		State:         data.State,
		PostalCode:    data.PostalCode,
		Country:       data.Country,
		Phone:         data.Phone,
		Email:         data.Email,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		IsPrimary:     data.IsPrimary,
	}
}

func toTestimonialDomain(data *model.TestimonialModel) *entity.Testimonial {
	return &entity.Testimonial{
		ID:        data.ID,
		Name:      data.Name,
		Location:  data.Location,
		Content:   data.Content,
		Rating:    data.Rating,
		Category:  entity.TestimonialCategory(data.Category),
		Featured:  data.Featured,
		Image:     data.Image,
		Date:      data.Date,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromTestimonialDomain(data *entity.Testimonial) *model.TestimonialModel {
	return &model.TestimonialModel{
		ID:       data.ID,
		Name:     data.Name,
		Location: data.Location,
		Content:  data.Content,
		Rating:   data.Rating,
		Category: string(data.Category),
		Featured: data.Featured,
		Image:    data.Image,
		Date:     data.Date,
	}
}

func toEnquiryDomain(data *model.EnquiryModel) *entity.Enquiry {
	return &entity.Enquiry{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Address:   data.Address,
		Message:   data.Message,
		CreatedAt: data.CreatedAt,
	}
}

func fromEnquiryDomain(data *entity.Enquiry) *model.EnquiryModel {
	return &model.EnquiryModel{
		ID:      data.ID,
		Name:    data.Name,
		Email:   data.Email,
		Phone:   data.Phone,
		Address: data.Address,
		Message: data.Message,
	}
}
