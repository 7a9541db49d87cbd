// Package billing derives the nights charged for a stay and the amount due.
package billing

import (
	"time"

	"hotel-frontdesk/models"
)

const night = 24 * time.Hour

// Bill is the charge for a stay as of BilledAt.
type Bill struct {
	Nights        int       `json:"nights"`
	PricePerNight int       `json:"pricePerNight"`
	AmountDue     int       `json:"amountDue"`
	CheckInTime   time.Time `json:"checkInTime"`
	BilledAt      time.Time `json:"billedAt"`
}

// Nights returns the number of started 24h periods between checkIn and now,
// never less than one. A negative interval (clock skew) counts by magnitude.
func Nights(checkIn, now time.Time) int {
	elapsed := now.Sub(checkIn)
	if elapsed < 0 {
		elapsed = -elapsed
	}
	n := int(elapsed / night)
	if elapsed%night != 0 {
		n++
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Compute bills guest at pricePerNight up to now.
func Compute(guest models.Guest, pricePerNight int, now time.Time) Bill {
	nights := Nights(guest.CheckInTime, now)
	return Bill{
		Nights:        nights,
		PricePerNight: pricePerNight,
		AmountDue:     nights * pricePerNight,
		CheckInTime:   guest.CheckInTime,
		BilledAt:      now,
	}
}
