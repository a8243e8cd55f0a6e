package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON names so messages cite the field the client sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("register notblank validator: %v", err))
	}
	return v
}

// Struct validates a request DTO and converts the first failure into a
// validation error citing the offending JSON field.
func Struct(obj interface{}) error {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}

	fe := fieldErrs[0]
	field := fieldPath(fe)
	return apperrors.NewValidationError(field, formatValidationError(field, fe))
}

// fieldPath drops the root struct name from the namespace: "CreateCourseRequest.units[0].title"
// becomes "units[0].title".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(field string, e validator.FieldError) string {
	switch e.Tag() {
	case "notblank":
		if e.Kind() == reflect.Slice {
			return field + " must contain at least one value"
		}
		return field + " must not be blank"
	case "required":
		return field + " is required"
	case "min":
		return field + " must be at least " + e.Param()
	case "max":
		return field + " must be at most " + e.Param()
	case "oneof":
		return field + " must be one of: " + e.Param()
	default:
		return field + " validation failed: " + e.Tag()
	}
}

// NotBlank checks a single string value outside of struct validation
func NotBlank(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.NewValidationError(field, field+" must not be blank")
	}
	return nil
}

// IntRange validates an integer parameter against inclusive bounds
type IntRange struct {
	Field string
	Min   int
	Max   int
}

// Check returns a validation error when value is outside [Min, Max]
func (r IntRange) Check(value int) error {
	if value < r.Min {
		return apperrors.NewValidationError(r.Field, fmt.Sprintf("%s must be at least %d", r.Field, r.Min))
	}
	if value > r.Max {
		return apperrors.NewValidationError(r.Field, fmt.Sprintf("%s must be at most %d", r.Field, r.Max))
	}
	return nil
}
