package lifecycle

import "errors"

var (
	ErrEmptyNumber       = errors.New("room number is empty")
	ErrDuplicateNumber   = errors.New("room number already exists")
	ErrInvalidState      = errors.New("operation not allowed in current room status")
	ErrNotConfirmed      = errors.New("destructive status change not confirmed")
	ErrGuestNameRequired = errors.New("guest name is required")
	ErrInvalidPrice      = errors.New("price must not be negative")
	ErrUnknownRoomType   = errors.New("unknown room type")
	ErrUnknownStatus     = errors.New("unknown room status")

	// ErrTransitionNotAllowed is returned when the configured policy rejects
	// a status change. It matches ErrInvalidState under errors.Is.
	ErrTransitionNotAllowed error = &transitionError{msg: "status transition not allowed by policy"}
)

type transitionError struct{ msg string }

func (e *transitionError) Error() string { return e.msg }

func (e *transitionError) Is(target error) bool { return target == ErrInvalidState }
