package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/deppfellow/loan-backoffice/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by every request type.
//
// Validate usually returns validator.ValidationErrors. It may also return
// an *errs.HTTPError when a failure must map to a status other than 400.
type Validatable interface {
	Validate() error
}

// PathValidatable is implemented by requests whose path parameters must be
// rejected before the body is read. ValidatePath sees only path values.
type PathValidatable interface {
	ValidatePath() error
}

// CustomValidationError is a field error produced outside the validator,
// e.g. while decoding the body.
type CustomValidationError struct {
	Field   string
	Message string
}

type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(fieldName)
	return v
}

// fieldName names a struct field after the key it is bound from.
// Path and query fields are hidden from JSON with "-", so fall through.
func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "param", "query"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return ""
}

// Struct validates v against its validate tags.
func Struct(v any) error {
	return validate.Struct(v)
}

// BindAndValidate binds path, query and body into payload and validates it.
//
// Requests implementing PathValidatable get their path checked first, so a
// bad path parameter wins over a malformed body.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if pv, ok := payload.(PathValidatable); ok {
		if err := (&echo.DefaultBinder{}).BindPathParams(c, payload); err != nil {
			return bindError(err)
		}
		if err := pv.ValidatePath(); err != nil {
			var httpErr *errs.HTTPError
			if errors.As(err, &httpErr) {
				return httpErr
			}
			msg, fieldErrors := extractValidationError(err)
			return errs.NewBadRequestError(msg, true, nil, fieldErrors, nil)
		}
	}

	if err := c.Bind(payload); err != nil {
		return bindError(err)
	}

	if err := payload.Validate(); err != nil {
		var httpErr *errs.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}

		msg, fieldErrors := extractValidationError(err)
		return errs.NewBadRequestError(msg, true, nil, fieldErrors, nil)
	}

	return nil
}

// bindError reports a body that does not decode. A value of the wrong JSON
// type is reported against its field path like a validation failure.
func bindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		msg, fieldErrors := extractValidationError(CustomValidationErrors{{
			Field:   typeErr.Field,
			Message: typeMessage(typeErr.Type),
		}})
		return errs.NewBadRequestError(msg, true, nil, fieldErrors, nil)
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			return errs.NewBadRequestError(msg, false, nil, nil, nil)
		}
	}
	return errs.NewBadRequestError("Invalid request payload", false, nil, nil, nil)
}

func typeMessage(t reflect.Type) string {
	if t == nil {
		return "has an invalid type"
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "must be a number"
	case reflect.Bool:
		return "must be a boolean"
	case reflect.String:
		return "must be a string"
	case reflect.Struct, reflect.Map:
		return "must be an object"
	case reflect.Slice, reflect.Array:
		return "must be an array"
	default:
		return "has an invalid type"
	}
}

// fieldPath turns a validator namespace into the JSON path of the field.
// Go type names (the root struct and embedded structs) are dropped.
func fieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	kept := parts[:0]
	for _, part := range parts {
		if part == "" || unicode.IsUpper([]rune(part)[0]) {
			continue
		}
		kept = append(kept, part)
	}
	return strings.Join(kept, ".")
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var customErrors CustomValidationErrors
	if errors.As(err, &customErrors) {
		for _, ce := range customErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: ce.Field,
				Error: ce.Message,
			})
		}
		return "Validation failed", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "Validation failed: " + err.Error(), nil
	}

	for _, fe := range validationErrors {
		field := fieldPath(fe.Namespace())
		var msg string

		switch fe.Tag() {
		case "required":
			msg = "is required"

		case "number", "numeric":
			msg = "must be a number"

		case "min":
			if fe.Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", fe.Param())
			}

		case "max":
			if fe.Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", fe.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", fe.Param())

		default:
			if fe.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, fe.Tag(), fe.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, fe.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
