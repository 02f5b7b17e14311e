// Package validation wraps go-playground/validator with the rules shared by
// every entity and turns its errors into a ValidationFailure that names the
// offending fields by their JSON names.
//
// Rules registered here, on top of the validator built-ins:
//
//	uni — 2–3 lowercase ASCII letters followed by 1–4 digits ("dy2530")
//
// patch.Field values are unwrapped before the tags run: an absent or null
// field validates as "no value", so `omitempty,uni` only checks values the
// client actually sent.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/aanand-mishra/student-records-api/internal/patch"
	"github.com/aanand-mishra/student-records-api/internal/types"
)

// ErrValidation is matched by every *Error via errors.Is.
var ErrValidation = errors.New("validation failed")

var uniPattern = regexp.MustCompile(`^[a-z]{2,3}[0-9]{1,4}$`)

// FieldError describes one rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// Error is the ValidationFailure returned for a rejected payload.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, ", ")
}

// Is makes errors.Is(err, ErrValidation) true.
func (e *Error) Is(target error) bool {
	return target == ErrValidation
}

// Fail builds an *Error from individual field errors.
func Fail(fields ...FieldError) *Error {
	return &Error{Fields: fields}
}

// NotNull is the error for a non-nullable field sent as JSON null.
func NotNull(field string) FieldError {
	return FieldError{
		Field:   field,
		Tag:     "notnull",
		Message: fmt.Sprintf("field %s cannot be null", field),
	}
}

// Validator is safe for concurrent use; build one and share it.
type Validator struct {
	validate *validator.Validate
}

// New returns a Validator with the custom rules and type funcs registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names ("postal_code"), not Go names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("uni", func(fl validator.FieldLevel) bool {
		return uniPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	v.RegisterCustomTypeFunc(fieldValue[string], patch.Field[string]{})
	v.RegisterCustomTypeFunc(fieldValue[int], patch.Field[int]{})
	v.RegisterCustomTypeFunc(fieldValue[bool], patch.Field[bool]{})
	v.RegisterCustomTypeFunc(fieldValue[civil.Date], patch.Field[civil.Date]{})
	v.RegisterCustomTypeFunc(fieldValue[[]types.AddressCreate], patch.Field[[]types.AddressCreate]{})

	return &Validator{validate: v}
}

// Struct checks every validate tag on s. It returns nil or an *Error.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError: a programming mistake, not bad input.
		return errors.Wrap(err, "validate")
	}

	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, toFieldError(fe))
	}
	return out
}

func toFieldError(fe validator.FieldError) FieldError {
	field := fieldPath(fe.Namespace())

	var msg string
	switch fe.ActualTag() {
	case "required":
		msg = fmt.Sprintf("field %s is required", field)
	case "email":
		msg = fmt.Sprintf("field %s must be a valid email address", field)
	case "uni":
		msg = fmt.Sprintf("field %s must be 2-3 lowercase letters followed by 1-4 digits", field)
	default:
		msg = fmt.Sprintf("field %s is invalid", field)
	}

	return FieldError{Field: field, Tag: fe.ActualTag(), Message: msg}
}

// fieldPath turns "PersonCreate.addresses[0].AddressFields.city" into
// "addresses[0].city". The root type and embedded structs are the only
// segments that start with an upper-case letter; JSON names never do.
func fieldPath(ns string) string {
	parts := strings.Split(ns, ".")
	kept := parts[:0]
	for i, p := range parts {
		if i == 0 || p == "" {
			continue
		}
		if unicode.IsUpper(rune(p[0])) {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, ".")
}

func fieldValue[T any](v reflect.Value) any {
	f, ok := v.Interface().(patch.Field[T])
	if !ok {
		return nil
	}
	if val, ok := f.Get(); ok {
		return val
	}
	return nil
}
