package services

import (
	"errors"
	"strings"

	"devconnector/dto"
)

// Error kinds. Controllers pick the HTTP status with errors.Is.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation failed")
	ErrInternal     = errors.New("internal error")
)

// Error is a kind plus the message shown to the client.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }
func (e *Error) Unwrap() error { return e.Kind }

func newErr(kind error, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// ValidationErrors collects every rejected field of one request.
type ValidationErrors []dto.FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, f := range v {
		msgs[i] = f.Msg
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) Unwrap() error { return ErrValidation }

func (v *ValidationErrors) add(field, msg string) {
	*v = append(*v, dto.FieldError{Msg: msg, Param: field})
}

// orNil keeps a nil slice from turning into a non-nil error interface.
func (v ValidationErrors) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
