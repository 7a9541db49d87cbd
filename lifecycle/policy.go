package lifecycle

import (
	"fmt"
	"strings"

	"hotel-frontdesk/models"
)

// Policy decides whether a manual status change is permitted.
// Check-in and checkout are not routed through the policy.
type Policy interface {
	Name() string
	Allows(from, to models.RoomStatus) bool
}

// OpenPolicy lets any status reach any other status.
type OpenPolicy struct{}

func (OpenPolicy) Name() string { return "open" }

func (OpenPolicy) Allows(from, to models.RoomStatus) bool { return true }

type edge struct {
	from, to models.RoomStatus
}

// HousekeepingPolicy forces a room through CLEANING before it is sold again.
type HousekeepingPolicy struct{}

var housekeepingForbidden = map[edge]bool{
	{models.StatusOccupied, models.StatusVacant}:    true,
	{models.StatusMaintenance, models.StatusVacant}: true,
}

func (HousekeepingPolicy) Name() string { return "housekeeping" }

func (HousekeepingPolicy) Allows(from, to models.RoomStatus) bool {
	return !housekeepingForbidden[edge{from, to}]
}

// PolicyByName resolves the STATUS_POLICY setting.
func PolicyByName(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "open":
		return OpenPolicy{}, nil
	case "housekeeping", "strict":
		return HousekeepingPolicy{}, nil
	}
	return nil, fmt.Errorf("unknown status policy %q", name)
}
