package models

import "time"

// Guest is the occupancy record attached to an OCCUPIED room. It has no
// identity of its own and lives exactly as long as the occupancy.
type Guest struct {
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	IDCardNumber string    `json:"idCardNumber,omitempty"`
	CheckInTime  time.Time `json:"checkInTime"`
}

// GuestInput is what the operator types into the check-in form.
type GuestInput struct {
	Name         string `json:"guestName" binding:"required"`
	Phone        string `json:"phone"`
	IDCardNumber string `json:"idCardNumber"`
}
