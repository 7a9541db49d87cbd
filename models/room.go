package models

// Room is a single sellable room. Guest is non-nil iff Status is OCCUPIED.
type Room struct {
	ID     string     `json:"id"`
	Number string     `json:"number"`
	Type   RoomType   `json:"type"`
	Price  int        `json:"price"`
	Status RoomStatus `json:"status"`
	Guest  *Guest     `json:"guest,omitempty"`
}

// Clone returns a deep copy so callers never share a Guest pointer with a store.
func (r Room) Clone() Room {
	if r.Guest != nil {
		g := *r.Guest
		r.Guest = &g
	}
	return r
}

// Occupied reports whether the occupancy invariant places a guest in the room.
func (r Room) Occupied() bool {
	return r.Status == StatusOccupied && r.Guest != nil
}

// RoomNumbers collects the number of every room, in order.
func RoomNumbers(rooms []Room) []string {
	out := make([]string, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, r.Number)
	}
	return out
}
