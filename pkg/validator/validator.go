package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// FieldError describes a single failed field.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

// Message renders a readable field-level message.
func (e FieldError) Message() string {
	switch e.Tag {
	case "required", "uuid_required":
		return fmt.Sprintf("%s is required", e.Field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", e.Field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", e.Field, e.Param)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", e.Field, e.Param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", e.Field, e.Param)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", e.Field, e.Param)
	default:
		return fmt.Sprintf("%s failed on '%s'", e.Field, e.Tag)
	}
}

var validate = validator.New()

func init() {
	// Nil UUIDs pass "required" because the zero value is a valid array;
	// uuid_required closes that gap.
	validate.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		if id, ok := fl.Field().Interface().(uuid.UUID); ok {
			return id != uuid.Nil
		}
		return false
	})
}

// ValidateStruct runs tag validation and returns one entry per failed field.
func ValidateStruct(data interface{}) []FieldError {
	var fieldErrors []FieldError
	if err := validate.Struct(data); err != nil {
		for _, ve := range err.(validator.ValidationErrors) {
			fieldErrors = append(fieldErrors, FieldError{
				Field: fieldName(ve.StructNamespace(), ve.Field()),
				Tag:   ve.Tag(),
				Param: ve.Param(),
			})
		}
	}
	return fieldErrors
}

// fieldName strips the struct prefix so messages read "Name is required"
// rather than "CreateProductRequest.Name is required".
func fieldName(namespace, field string) string {
	if idx := strings.LastIndex(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return field
}
