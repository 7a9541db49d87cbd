// Package lifecycle holds the room state machine. Every operation takes a
// room by value and returns the next room; inputs are never mutated and a
// failed operation returns the zero Room alongside the error.
package lifecycle

import (
	"fmt"
	"strings"
	"time"

	"hotel-frontdesk/models"
)

type Engine struct {
	policy Policy
	now    func() time.Time
}

type Option func(*Engine)

func WithPolicy(p Policy) Option {
	return func(e *Engine) {
		if p != nil {
			e.policy = p
		}
	}
}

// WithClock overrides the source of check-in timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{policy: OpenPolicy{}, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Policy() Policy { return e.policy }

// Now returns the engine clock's current instant.
func (e *Engine) Now() time.Time { return e.now() }

// ValidateRoomNumber trims candidate and checks it against existing numbers.
// exclude is the current number of a room being edited, or "" on add.
func ValidateRoomNumber(candidate string, existing []string, exclude string) (string, error) {
	number := strings.TrimSpace(candidate)
	if number == "" {
		return "", ErrEmptyNumber
	}
	if number == exclude {
		return number, nil
	}
	for _, n := range existing {
		if n == number {
			return "", fmt.Errorf("%w: %s", ErrDuplicateNumber, number)
		}
	}
	return number, nil
}

func validateDetails(t models.RoomType, price int) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownRoomType, t)
	}
	if price < 0 {
		return ErrInvalidPrice
	}
	return nil
}

// NewRoom builds a VACANT room. The caller assigns the id.
func (e *Engine) NewRoom(number string, t models.RoomType, price int, existing []string) (models.Room, error) {
	clean, err := ValidateRoomNumber(number, existing, "")
	if err != nil {
		return models.Room{}, err
	}
	if err := validateDetails(t, price); err != nil {
		return models.Room{}, err
	}
	return models.Room{
		Number: clean,
		Type:   t,
		Price:  price,
		Status: models.StatusVacant,
	}, nil
}

func (e *Engine) CheckIn(room models.Room, in models.GuestInput) (models.Room, error) {
	if room.Status != models.StatusVacant {
		return models.Room{}, fmt.Errorf("%w: check-in requires %s, room %s is %s",
			ErrInvalidState, models.StatusVacant, room.Number, room.Status)
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Room{}, ErrGuestNameRequired
	}
	next := room.Clone()
	next.Status = models.StatusOccupied
	next.Guest = &models.Guest{
		Name:         name,
		Phone:        strings.TrimSpace(in.Phone),
		IDCardNumber: strings.TrimSpace(in.IDCardNumber),
		CheckInTime:  e.now(),
	}
	return next, nil
}

// CheckOut always routes the room to CLEANING.
func (e *Engine) CheckOut(room models.Room) (models.Room, error) {
	if !room.Occupied() {
		return models.Room{}, fmt.Errorf("%w: checkout requires an occupied room, room %s is %s",
			ErrInvalidState, room.Number, room.Status)
	}
	next := room.Clone()
	next.Status = models.StatusCleaning
	next.Guest = nil
	return next, nil
}

// IsDestructive reports whether moving room to status would discard its guest.
func IsDestructive(room models.Room, to models.RoomStatus) bool {
	return room.Status == models.StatusOccupied && to != models.StatusOccupied
}

// ChangeStatus applies a manual status change. A destructive change needs
// confirmed=true; without it ErrNotConfirmed is returned and nothing changes.
func (e *Engine) ChangeStatus(room models.Room, to models.RoomStatus, confirmed bool) (models.Room, error) {
	if !to.Valid() {
		return models.Room{}, fmt.Errorf("%w: %q", ErrUnknownStatus, to)
	}
	if to == room.Status {
		return room.Clone(), nil
	}
	if to == models.StatusOccupied {
		// a guest can only be attached through CheckIn
		return models.Room{}, fmt.Errorf("%w: use check-in to occupy room %s", ErrInvalidState, room.Number)
	}
	if IsDestructive(room, to) && !confirmed {
		return models.Room{}, ErrNotConfirmed
	}
	if !e.policy.Allows(room.Status, to) {
		return models.Room{}, fmt.Errorf("%w: %s -> %s under %s policy",
			ErrTransitionNotAllowed, room.Status, to, e.policy.Name())
	}
	next := room.Clone()
	next.Status = to
	next.Guest = nil
	return next, nil
}

// EditDetails replaces number, type and price. Status and guest are kept.
func (e *Engine) EditDetails(room models.Room, number string, t models.RoomType, price int, existing []string) (models.Room, error) {
	clean, err := ValidateRoomNumber(number, existing, room.Number)
	if err != nil {
		return models.Room{}, err
	}
	if err := validateDetails(t, price); err != nil {
		return models.Room{}, err
	}
	next := room.Clone()
	next.Number = clean
	next.Type = t
	next.Price = price
	return next, nil
}
