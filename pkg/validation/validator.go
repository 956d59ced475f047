package validation

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	tagNotBlank = "notblank"
	tagDomain   = "domain"
	tagRange    = "range"
	tagAnyOf    = "anyof"
	tagRequired = "required"
)

// Register installs the journal's field rules on a validator engine:
//
//	notblank        string must be non-empty after trimming
//	domain=<name>   value must be a member of the named Domain
//	range=<name>    number must lie within the named Range
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)

	if err := v.RegisterValidation(tagNotBlank, notBlank); err != nil {
		return err
	}

	if err := v.RegisterValidation(tagDomain, inDomain); err != nil {
		return err
	}

	return v.RegisterValidation(tagRange, inRange)
}

// RequireAnyOf registers a struct-level rule on structType: at least one of
// the named string fields must be non-blank.
func RequireAnyOf(v *validator.Validate, structType any, fieldNames ...string) {
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		current := sl.Current()

		for _, name := range fieldNames {
			if !isBlank(current.FieldByName(name)) {
				return
			}
		}

		first, _ := current.Type().FieldByName(fieldNames[0])
		jsonNames := make([]string, 0, len(fieldNames))

		for _, name := range fieldNames {
			field, _ := current.Type().FieldByName(name)
			jsonNames = append(jsonNames, jsonFieldName(field))
		}

		sl.ReportError(current.FieldByName(fieldNames[0]).Interface(), jsonFieldName(first), fieldNames[0], tagAnyOf, strings.Join(jsonNames, " "))
	}, structType)
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")

	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

func isBlank(value reflect.Value) bool {
	for value.Kind() == reflect.Ptr || value.Kind() == reflect.Interface {
		if value.IsNil() {
			return true
		}

		value = value.Elem()
	}

	return value.Kind() != reflect.String || strings.TrimSpace(value.String()) == ""
}

func notBlank(fl validator.FieldLevel) bool {
	return !isBlank(fl.Field())
}

func inDomain(fl validator.FieldLevel) bool {
	domain, ok := LookupDomain(fl.Param())
	if !ok || fl.Field().Kind() != reflect.String {
		return false
	}

	return domain.Contains(fl.Field().String())
}

func inRange(fl validator.FieldLevel) bool {
	bounds, ok := LookupRange(fl.Param())
	if !ok {
		return false
	}

	value, ok := numericValue(fl.Field())

	return ok && bounds.Contains(value)
}

func numericValue(value reflect.Value) (float64, bool) {
	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(value.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(value.Uint()), true
	case reflect.Float32, reflect.Float64:
		return value.Float(), true
	default:
		return 0, false
	}
}

// FromBindError turns a request decoding or struct validation failure into
// an *Error. Only the first failing field is reported.
func FromBindError(err error) error {
	var (
		fieldErrors validator.ValidationErrors
		typeErr     *json.UnmarshalTypeError
		syntaxErr   *json.SyntaxError
		ownErr      *Error
	)

	switch {
	case errors.As(err, &ownErr):
		return ownErr
	case errors.As(err, &fieldErrors) && len(fieldErrors) > 0:
		return fromFieldError(fieldErrors[0])
	case errors.As(err, &typeErr):
		field := typeErr.Field[strings.LastIndex(typeErr.Field, ".")+1:]

		return InvalidValue(field, field+" の型が不正です")
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return InvalidValue("", "リクエストのJSONが不正です")
	case errors.Is(err, io.EOF):
		return InvalidValue("", "リクエストの本文が空です")
	default:
		return InvalidValue("", err.Error())
	}
}

func fromFieldError(fieldError validator.FieldError) *Error {
	field := fieldError.Field()

	switch fieldError.Tag() {
	case tagNotBlank, tagRequired:
		return RequiredFieldMissing(field)
	case tagAnyOf:
		names := strings.Fields(fieldError.Param())

		return &Error{
			Kind:    ErrRequiredFieldMissing,
			Field:   field,
			Message: strings.Join(names, " または ") + " のいずれかは必須です",
		}
	case tagDomain:
		domain, _ := LookupDomain(fieldError.Param())

		return InvalidDomainValue(field, domain)
	case tagRange:
		bounds, _ := LookupRange(fieldError.Param())

		return OutOfRange(field, bounds)
	default:
		return InvalidValue(field, field+" の値が不正です")
	}
}

// Required checks a string that must be non-blank.
func Required(field string, value string) error {
	if strings.TrimSpace(value) == "" {
		return RequiredFieldMissing(field)
	}

	return nil
}

// CheckDomain validates an optional enumerated value. Nil is accepted.
func CheckDomain(field string, value *string, domain Domain) error {
	if value != nil && !domain.Contains(*value) {
		return InvalidDomainValue(field, domain)
	}

	return nil
}
