package models

// RoomStats is the occupancy summary shown next to the room grid.
type RoomStats struct {
	Total    int                `json:"total"`
	ByStatus map[RoomStatus]int `json:"byStatus"`
	ByType   map[RoomType]int   `json:"byType"`
}

func NewRoomStats(rooms []Room) RoomStats {
	stats := RoomStats{
		Total:    len(rooms),
		ByStatus: make(map[RoomStatus]int, len(RoomStatuses)),
		ByType:   make(map[RoomType]int, len(RoomTypes)),
	}
	for _, s := range RoomStatuses {
		stats.ByStatus[s] = 0
	}
	for _, t := range RoomTypes {
		stats.ByType[t] = 0
	}
	for _, r := range rooms {
		stats.ByStatus[r.Status]++
		stats.ByType[r.Type]++
	}
	return stats
}
