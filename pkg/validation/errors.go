package validation

import (
	"errors"
	"fmt"
)

var (
	ErrRequiredFieldMissing = errors.New("required field missing")
	ErrInvalidValue         = errors.New("invalid value")
	ErrOutOfRange           = errors.New("out of range")
	ErrReferenceNotFound    = errors.New("reference not found")
	ErrInvalidState         = errors.New("invalid state")
	ErrHasDependents        = errors.New("has dependents")
	ErrDuplicateName        = errors.New("duplicate name")
	ErrNotFound             = errors.New("not found")
	ErrInvalidID            = errors.New("invalid id")
)

// Error is a caller-facing failure. Kind is one of the sentinels above and
// Message is safe to show to the user.
type Error struct {
	Kind    error
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: %s", e.Kind, e.Message)
	}

	return fmt.Sprintf("%v: %s: %s", e.Kind, e.Field, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func RequiredFieldMissing(field string) *Error {
	return &Error{Kind: ErrRequiredFieldMissing, Field: field, Message: field + " は必須です"}
}

func InvalidValue(field string, message string) *Error {
	return &Error{Kind: ErrInvalidValue, Field: field, Message: message}
}

func InvalidDomainValue(field string, domain Domain) *Error {
	return &Error{
		Kind:    ErrInvalidValue,
		Field:   field,
		Message: fmt.Sprintf("%s は %s のいずれかを指定してください", field, domain),
	}
}

func OutOfRange(field string, bounds Range) *Error {
	return &Error{
		Kind:    ErrOutOfRange,
		Field:   field,
		Message: fmt.Sprintf("%s は %s の範囲で指定してください", field, bounds),
	}
}

func ReferenceNotFound(field string, entity string) *Error {
	return &Error{Kind: ErrReferenceNotFound, Field: field, Message: "指定された" + entity + "が見つかりません"}
}

func InvalidState(field string, message string) *Error {
	return &Error{Kind: ErrInvalidState, Field: field, Message: message}
}

func HasDependents(entity string, dependents string) *Error {
	return &Error{Kind: ErrHasDependents, Message: "この" + entity + "は" + dependents + "から参照されているため削除できません"}
}

func DuplicateName(entity string, name string) *Error {
	return &Error{Kind: ErrDuplicateName, Field: "name", Message: fmt.Sprintf("%s「%s」は既に登録されています", entity, name)}
}

func NotFound(entity string) *Error {
	return &Error{Kind: ErrNotFound, Message: entity + "が見つかりません"}
}

func InvalidID(field string) *Error {
	return &Error{Kind: ErrInvalidID, Field: field, Message: "IDが不正です"}
}
