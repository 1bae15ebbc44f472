package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactForm struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"omitempty,phone"`
	Postcode string `json:"postcode" validate:"omitempty,postcode"`
	Website  string `json:"website" validate:"omitempty,looseurl"`
	Logo     string `json:"logo" validate:"omitempty,imageurl"`
	Rating   *int   `json:"rating" validate:"omitempty,min=1,max=5"`
}

func TestValidate_CustomTags(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		form    contactForm
		wantErr string
	}{
		{name: "valid", form: contactForm{Name: "Jo", Phone: "+61 (3) 9000 0000", Postcode: "3000", Website: "www.example.com.au"}},
		{name: "empty optionals", form: contactForm{Name: "Jo"}},
		{name: "missing name", form: contactForm{}, wantErr: "name is required"},
		{name: "bad phone", form: contactForm{Name: "Jo", Phone: "12ab"}, wantErr: "phone: Please enter a valid phone number"},
		{name: "bad postcode", form: contactForm{Name: "Jo", Postcode: "30"}, wantErr: "postcode: Please enter a valid postal code"},
		{name: "bad website", form: contactForm{Name: "Jo", Website: "not a url"}, wantErr: "website: Please enter a valid URL"},
		{name: "website must not be a path", form: contactForm{Name: "Jo", Website: "/about"}, wantErr: "website: Please enter a valid URL"},
		{name: "absolute logo", form: contactForm{Name: "Jo", Logo: "https://cdn.example.com/logo.png"}},
		{name: "uploaded logo", form: contactForm{Name: "Jo", Logo: "/media/2024/05/logo.png"}},
		{name: "bad logo", form: contactForm{Name: "Jo", Logo: "javascript:alert(1)"}, wantErr: "logo: Please enter a valid URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.form)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_PointerRange(t *testing.T) {
	v := New()
	rating := 9

	err := v.Validate(&contactForm{Name: "Jo", Rating: &rating})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rating must satisfy max=5")
}
