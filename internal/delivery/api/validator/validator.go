// Package validator adapts go-playground/validator to echo.
package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var (
	phonePattern    = regexp.MustCompile(`^\+?[0-9\s\-()]{8,20}$`)
	postcodePattern = regexp.MustCompile(`^[0-9]{4,5}$`)
	looseURLPattern = regexp.MustCompile(`^(https?://)?(www\.)?[-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b([-a-zA-Z0-9()@:%_+.~#?&/=]*)$`)
	// Site-relative paths such as the /media URLs returned by uploads.
	sitePathPattern = regexp.MustCompile(`^/[-a-zA-Z0-9()@:%_+.~#?&/=]*$`)
)

// messages for the custom tags, keyed by tag.
var tagMessages = map[string]string{
	"phone":    "Please enter a valid phone number",
	"postcode": "Please enter a valid postal code",
	"looseurl": "Please enter a valid URL",
	"imageurl": "Please enter a valid URL",
	"email":    "Please enter a valid email address",
}

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds a validator with the site's custom tags registered.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	mustRegister(v, "phone", matches(phonePattern))
	mustRegister(v, "postcode", matches(postcodePattern))
	mustRegister(v, "looseurl", matches(looseURLPattern))
	mustRegister(v, "imageurl", matches(looseURLPattern, sitePathPattern))

	return &CustomValidator{validate: v}
}

// Validate runs struct validation and flattens field errors into one message.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fieldMessage(fe))
	}

	return errors.New(strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	if msg, ok := tagMessages[fe.Tag()]; ok {
		return fmt.Sprintf("%s: %s", fe.Field(), msg)
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min", "max":
		return fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag())
	}
}

// matches passes when any of the patterns matches the field.
func matches(patterns ...*regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, pattern := range patterns {
			if pattern.MatchString(value) {
				return true
			}
		}

		return false
	}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}
