package models

// RoomStatus is the housekeeping/occupancy state of a room.
type RoomStatus string

const (
	StatusVacant      RoomStatus = "VACANT"
	StatusOccupied    RoomStatus = "OCCUPIED"
	StatusCleaning    RoomStatus = "CLEANING"
	StatusMaintenance RoomStatus = "MAINTENANCE"
)

var RoomStatuses = []RoomStatus{StatusVacant, StatusOccupied, StatusCleaning, StatusMaintenance}

var roomStatusLabels = map[RoomStatus]string{
	StatusVacant:      "空闲",
	StatusOccupied:    "在住",
	StatusCleaning:    "待洁",
	StatusMaintenance: "维修",
}

func (s RoomStatus) String() string {
	return string(s)
}

func (s RoomStatus) Label() string {
	if l, ok := roomStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

func (s RoomStatus) Valid() bool {
	_, ok := roomStatusLabels[s]
	return ok
}
