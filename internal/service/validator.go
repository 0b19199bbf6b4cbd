package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/boxstory/yk/internal/model"
	apperr "github.com/boxstory/yk/pkg/errors"
)

// Request DTOs carry their rules in `binding` tags. gin validates them on
// bind; services validate the same tags again for non-HTTP callers.
const ruleTag = "binding"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName(ruleTag)
	if err := RegisterValidators(v); err != nil {
		panic(err)
	}
	return v
}

// RegisterValidators installs the domain tags and JSON field naming on v.
// The router calls it with gin's engine so binding and services agree.
func RegisterValidators(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	rules := map[string]validator.Func{
		"unit_category": func(fl validator.FieldLevel) bool {
			return model.UnitCategory(fl.Field().String()).Valid()
		},
		"furnishing": func(fl validator.FieldLevel) bool {
			return model.Furnishing(fl.Field().String()).Valid()
		},
		"vacancy_status": func(fl validator.FieldLevel) bool {
			_, ok := model.ParseVacancyState(fl.Field().String())
			return ok
		},
		"whatsapp_qa": func(fl validator.FieldLevel) bool {
			return validQatarWhatsapp(fl.Field().String())
		},
		"inquiry_property_type": func(fl validator.FieldLevel) bool {
			return inquiryPropertyTypes[fl.Field().String()]
		},
		"inquiry_furnishing": func(fl validator.FieldLevel) bool {
			return inquiryFurnishings[fl.Field().String()]
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

var inquiryPropertyTypes = map[string]bool{
	"1BHK": true, "2BHK": true, "3BHK": true,
	"OFFICE": true, "SHOP": true, "STORAGE": true, "OTHER": true,
}

var inquiryFurnishings = map[string]bool{
	"ANY": true, "FURNISHED": true, "SEMI_FURNISHED": true, "UNFURNISHED": true,
}

// validQatarWhatsapp accepts 974XXXXXXXX or +974XXXXXXXX.
func validQatarWhatsapp(s string) bool {
	s = strings.TrimPrefix(s, "+")
	if !strings.HasPrefix(s, "974") || len(s) <= len("974") {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// validateStruct runs the shared rules and returns a *apperr.ValidationError
// listing every failed field.
func validateStruct(obj interface{}) error {
	if err := validate.Struct(obj); err != nil {
		return ToValidationError(err)
	}
	return nil
}

// ToValidationError converts validator output into the domain error. Other
// errors (bad JSON, type mismatches) become a single "body" field error.
func ToValidationError(err error) *apperr.ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.NewValidation("body", err.Error())
	}
	out := &apperr.ValidationError{Fields: make([]apperr.FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, apperr.FieldError{
			Field:   fe.Field(),
			Message: ruleMessage(fe),
		})
	}
	return out
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of " + fe.Param()
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "gtefield":
		return "must not be less than " + fe.Param()
	case "unit_category":
		return "is not a known unit category"
	case "furnishing":
		return "must be FURNISHED, SEMI_FURNISHED or UNFURNISHED"
	case "vacancy_status":
		return "is not a known vacancy status"
	case "whatsapp_qa":
		return "must start with 974 or +974"
	case "inquiry_property_type":
		return "is not a known property type"
	case "inquiry_furnishing":
		return "must be ANY, FURNISHED, SEMI_FURNISHED or UNFURNISHED"
	}
	return "failed " + fe.Tag() + " check"
}
