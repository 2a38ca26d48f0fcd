package shared

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a field name to every rule it failed.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// Fields returns the failing field names in a stable order.
func (f FieldErrors) Fields() []string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	return fields
}

// EntityValidationError is returned when an entity fails its validation rules.
type EntityValidationError struct {
	Errors FieldErrors
}

func NewEntityValidationError(errs FieldErrors) *EntityValidationError {
	return &EntityValidationError{Errors: errs}
}

func (e *EntityValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, field := range e.Errors.Fields() {
		parts = append(parts, field+": "+strings.Join(e.Errors[field], ", "))
	}
	if len(parts) == 0 {
		return ErrEntityValidation.Error()
	}
	return ErrEntityValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *EntityValidationError) Unwrap() error {
	return ErrEntityValidation
}

// StructValidator checks structs annotated with `validate` tags and reports
// failures keyed by the field's json name.
type StructValidator struct {
	validate *validator.Validate
}

func NewStructValidator() *StructValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return &StructValidator{validate: v}
}

// Validate returns nil when data satisfies all of its rules.
func (s *StructValidator) Validate(data any) FieldErrors {
	err := s.validate.Struct(data)
	if err == nil {
		return nil
	}
	errs := FieldErrors{}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs.Add("_", err.Error())
		return errs
	}
	for _, fe := range fieldErrs {
		errs.Add(fe.Field(), message(fe))
	}
	return errs
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " should not be empty"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be shorter than or equal to %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must not be greater than %s", field, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be longer than or equal to %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must not be less than %s", field, fe.Param())
	case "uuid", "uuid4":
		return field + " must be a UUID"
	default:
		return fmt.Sprintf("%s failed on the %q rule", field, fe.Tag())
	}
}
