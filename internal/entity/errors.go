package entity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation           = errors.New("validation failed")
	ErrRender               = errors.New("render contract")
	ErrPersistence          = errors.New("persist contract")
	ErrFrozen               = errors.New("record is read-only outside data entry")
	ErrInvalidTransition    = errors.New("invalid stage transition")
	ErrIncorrectRequestBody = errors.New("incorrect request body")
	ErrPayloadTooLarge      = errors.New("payload too large")
	ErrNotFound             = errors.New("not found")
	ErrUnauthorized         = errors.New("unauthorized")
)

// ValidationError lists every required field that failed its check.
type ValidationError struct {
	Fields []Field
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, string(f))
	}

	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(names, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
