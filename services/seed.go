package services

import (
	"context"

	"hotel-frontdesk/models"
)

// DefaultInventory is the floor-24 layout loaded on a fresh start.
func DefaultInventory() []NewRoomInput {
	layout := []struct {
		typ     models.RoomType
		numbers []string
	}{
		{models.RoomTypeChess, []string{"2402"}},
		{models.RoomTypeKing, []string{"2403", "2406", "2408", "2409", "2410", "2412", "2415", "2418"}},
		{models.RoomTypeTwin, []string{"2411", "2413", "2416", "2419"}},
		{models.RoomTypeFamily, []string{"2401", "2405"}},
	}

	var out []NewRoomInput
	for _, group := range layout {
		for _, n := range group.numbers {
			out = append(out, NewRoomInput{Number: n, Type: group.typ})
		}
	}
	return out
}

// Seed adds inventory when the registry is empty and reports how many rooms
// were created.
func (s *FrontDeskService) Seed(ctx context.Context, inventory []NewRoomInput) (int, error) {
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(rooms) > 0 {
		return 0, nil
	}
	for i, in := range inventory {
		if _, err := s.AddRoom(ctx, in); err != nil {
			return i, err
		}
	}
	s.log.Info().Int("rooms", len(inventory)).Msg("inventory seeded")
	return len(inventory), nil
}
