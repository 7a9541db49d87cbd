package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"hotel-frontdesk/billing"
	"hotel-frontdesk/lifecycle"
	"hotel-frontdesk/metrics"
	"hotel-frontdesk/models"
	"hotel-frontdesk/registry"
)

// FrontDeskService is the only writer of room state. Every operation holds
// mu from the registry read until the registry write, so operations never
// interleave and a rejected operation leaves the registry untouched.
type FrontDeskService struct {
	mu           sync.Mutex
	rooms        registry.Registry
	engine       *lifecycle.Engine
	log          zerolog.Logger
	defaultPrice int
}

func NewFrontDeskService(rooms registry.Registry, engine *lifecycle.Engine, log zerolog.Logger, defaultPrice int) *FrontDeskService {
	return &FrontDeskService{
		rooms:        rooms,
		engine:       engine,
		log:          log.With().Str("component", "frontdesk").Logger(),
		defaultPrice: defaultPrice,
	}
}

// RoomFilter narrows a listing; zero values match everything.
type RoomFilter struct {
	Status models.RoomStatus
	Type   models.RoomType
}

func (f RoomFilter) match(r models.Room) bool {
	return (f.Status == "" || r.Status == f.Status) && (f.Type == "" || r.Type == f.Type)
}

type NewRoomInput struct {
	Number string
	Type   models.RoomType
	Price  *int
}

// EditRoomInput fields left nil keep the room's current value.
type EditRoomInput struct {
	Number *string
	Type   *models.RoomType
	Price  *int
}

// StatusImpact answers "what happens if I move this room to To" without
// changing anything.
type StatusImpact struct {
	RoomID      string            `json:"roomId"`
	Number      string            `json:"number"`
	From        models.RoomStatus `json:"from"`
	To          models.RoomStatus `json:"to"`
	Destructive bool              `json:"destructive"`
	Allowed     bool              `json:"allowed"`
	Guest       *models.Guest     `json:"guest,omitempty"`
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, lifecycle.ErrEmptyNumber):
		return "empty_number"
	case errors.Is(err, lifecycle.ErrDuplicateNumber):
		return "duplicate_number"
	case errors.Is(err, lifecycle.ErrNotConfirmed):
		return "not_confirmed"
	case errors.Is(err, lifecycle.ErrTransitionNotAllowed):
		return "policy"
	case errors.Is(err, lifecycle.ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, registry.ErrRoomNotFound):
		return "not_found"
	}
	return "invalid_input"
}

func (s *FrontDeskService) reject(op string, err error) error {
	metrics.Rejections.WithLabelValues(op, rejectReason(err)).Inc()
	s.log.Info().Str("op", op).Err(err).Msg("operation rejected")
	return err
}

func (s *FrontDeskService) ListRooms(ctx context.Context, f RoomFilter) ([]models.Room, error) {
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	out := make([]models.Room, 0, len(rooms))
	for _, r := range rooms {
		if f.match(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *FrontDeskService) GetRoom(ctx context.Context, id string) (models.Room, error) {
	return s.rooms.Get(ctx, id)
}

func (s *FrontDeskService) Stats(ctx context.Context) (models.RoomStats, error) {
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return models.RoomStats{}, fmt.Errorf("list rooms: %w", err)
	}
	return models.NewRoomStats(rooms), nil
}

func (s *FrontDeskService) existingNumbers(ctx context.Context) ([]string, error) {
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return models.RoomNumbers(rooms), nil
}

func (s *FrontDeskService) AddRoom(ctx context.Context, in NewRoomInput) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.existingNumbers(ctx)
	if err != nil {
		return models.Room{}, err
	}
	price := s.defaultPrice
	if in.Price != nil {
		price = *in.Price
	}
	room, err := s.engine.NewRoom(in.Number, in.Type, price, existing)
	if err != nil {
		return models.Room{}, s.reject("add", err)
	}
	room.ID = uuid.NewString()
	if err := s.rooms.Add(ctx, room); err != nil {
		if errors.Is(err, lifecycle.ErrDuplicateNumber) {
			return models.Room{}, s.reject("add", err)
		}
		return models.Room{}, err
	}

	metrics.RoomsAdded.Inc()
	s.log.Info().Str("room", room.Number).Str("type", room.Type.String()).Int("price", room.Price).Msg("room added")
	return room, nil
}

func (s *FrontDeskService) EditRoom(ctx context.Context, id string, in EditRoomInput) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.rooms.Get(ctx, id)
	if err != nil {
		return models.Room{}, err
	}
	existing, err := s.existingNumbers(ctx)
	if err != nil {
		return models.Room{}, err
	}

	number, typ, price := room.Number, room.Type, room.Price
	if in.Number != nil {
		number = *in.Number
	}
	if in.Type != nil {
		typ = *in.Type
	}
	if in.Price != nil {
		price = *in.Price
	}

	next, err := s.engine.EditDetails(room, number, typ, price, existing)
	if err != nil {
		return models.Room{}, s.reject("edit", err)
	}
	if err := s.rooms.Update(ctx, next); err != nil {
		if errors.Is(err, lifecycle.ErrDuplicateNumber) {
			return models.Room{}, s.reject("edit", err)
		}
		return models.Room{}, err
	}

	s.log.Info().Str("room", next.Number).Str("previous_number", room.Number).Msg("room details updated")
	return next, nil
}

func (s *FrontDeskService) CheckIn(ctx context.Context, id string, guest models.GuestInput) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.rooms.Get(ctx, id)
	if err != nil {
		return models.Room{}, err
	}
	next, err := s.engine.CheckIn(room, guest)
	if err != nil {
		return models.Room{}, s.reject("checkin", err)
	}
	if err := s.rooms.Update(ctx, next); err != nil {
		return models.Room{}, err
	}

	metrics.CheckIns.Inc()
	s.log.Info().Str("room", next.Number).Time("check_in", next.Guest.CheckInTime).Msg("guest checked in")
	return next, nil
}

// PreviewBill prices the current stay without checking the guest out.
func (s *FrontDeskService) PreviewBill(ctx context.Context, id string) (billing.Bill, error) {
	room, err := s.rooms.Get(ctx, id)
	if err != nil {
		return billing.Bill{}, err
	}
	if !room.Occupied() {
		return billing.Bill{}, fmt.Errorf("%w: room %s has no guest to bill", lifecycle.ErrInvalidState, room.Number)
	}
	return billing.Compute(*room.Guest, room.Price, s.engine.Now()), nil
}

// CheckOut bills the stay and sends the room to CLEANING.
func (s *FrontDeskService) CheckOut(ctx context.Context, id string) (models.Room, billing.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.rooms.Get(ctx, id)
	if err != nil {
		return models.Room{}, billing.Bill{}, err
	}
	next, err := s.engine.CheckOut(room)
	if err != nil {
		return models.Room{}, billing.Bill{}, s.reject("checkout", err)
	}
	bill := billing.Compute(*room.Guest, room.Price, s.engine.Now())
	if err := s.rooms.Update(ctx, next); err != nil {
		return models.Room{}, billing.Bill{}, err
	}

	metrics.CheckOuts.Inc()
	metrics.BilledAmount.Add(float64(bill.AmountDue))
	s.log.Info().Str("room", room.Number).Int("nights", bill.Nights).Int("amount_due", bill.AmountDue).Msg("guest checked out")
	return next, bill, nil
}

func (s *FrontDeskService) StatusImpact(ctx context.Context, id string, to models.RoomStatus) (StatusImpact, error) {
	if !to.Valid() {
		return StatusImpact{}, fmt.Errorf("%w: %q", lifecycle.ErrUnknownStatus, to)
	}
	room, err := s.rooms.Get(ctx, id)
	if err != nil {
		return StatusImpact{}, err
	}
	impact := StatusImpact{
		RoomID:      room.ID,
		Number:      room.Number,
		From:        room.Status,
		To:          to,
		Destructive: lifecycle.IsDestructive(room, to),
	}
	_, err = s.engine.ChangeStatus(room, to, true)
	impact.Allowed = err == nil
	if impact.Destructive {
		impact.Guest = room.Guest
	}
	return impact, nil
}

// ChangeStatus commits a manual status change. Leaving OCCUPIED discards the
// guest and requires confirmed=true.
func (s *FrontDeskService) ChangeStatus(ctx context.Context, id string, to models.RoomStatus, confirmed bool) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.rooms.Get(ctx, id)
	if err != nil {
		return models.Room{}, err
	}
	next, err := s.engine.ChangeStatus(room, to, confirmed)
	if err != nil {
		return models.Room{}, s.reject("change_status", err)
	}
	if next.Status == room.Status {
		return next, nil
	}
	if err := s.rooms.Update(ctx, next); err != nil {
		return models.Room{}, err
	}

	metrics.StatusChanges.WithLabelValues(string(room.Status), string(next.Status)).Inc()
	ev := s.log.Info().Str("room", next.Number).Str("from", string(room.Status)).Str("to", string(next.Status))
	if room.Guest != nil {
		ev = ev.Str("discarded_guest", room.Guest.Name)
	}
	ev.Msg("room status changed")
	return next, nil
}
