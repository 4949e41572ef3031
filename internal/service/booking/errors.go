package booking

import (
	"errors"
	"fmt"

	"salonbook/backend/internal/store"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("slot conflict")
	ErrExpired        = errors.New("hold expired")
	ErrInvalidState   = errors.New("invalid state")
	ErrNoAvailability = errors.New("no availability")
)

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}

// storeErr translates store sentinels into service sentinels. Anything else is
// a storage failure and is returned unchanged.
func storeErr(what string, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	case errors.Is(err, store.ErrConflict):
		return fmt.Errorf("%s: %w", what, ErrConflict)
	case errors.Is(err, store.ErrInvalidState):
		return fmt.Errorf("%s: %w", what, ErrInvalidState)
	}
	return err
}
