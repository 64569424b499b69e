package models

import (
	"time"

	"github.com/HimanshuMishir/railway-reservation-api/internal/domain"
)

// PassengerRequest is one passenger in a booking batch. It is not
// persisted on its own; the ticket it produces copies its fields.
type PassengerRequest struct {
	Name   string        `json:"name"`
	Age    int           `json:"age"`
	Gender domain.Gender `json:"gender"`
}

// Ticket is one passenger-seat outcome. BerthNo/BerthType are set only
// while the ticket is CONFIRMED for a passenger old enough to hold a berth.
type Ticket struct {
	ID        int64               `json:"id"`
	BookingID int64               `json:"booking_id"`
	Name      string              `json:"name"`
	Age       int                 `json:"age"`
	Gender    domain.Gender       `json:"gender"`
	Status    domain.TicketStatus `json:"status"`
	BerthNo   *int                `json:"berth_no"`
	BerthType *domain.BerthType   `json:"berth_type"`
	CreatedAt time.Time           `json:"created_at"`
}

// Booking groups the tickets created by one request under a short
// human-facing 5-digit code.
type Booking struct {
	ID          int64     `json:"id"`
	BookingCode string    `json:"booking_code"`
	UserID      int64     `json:"user_id"`
	BookingDate string    `json:"booking_date"`
	CreatedAt   time.Time `json:"created_at"`
}

// CapacityCounts is the occupancy snapshot the allocation and promotion
// flows decide against. Only non-cancelled tickets of passengers aged 5+
// are counted.
type CapacityCounts struct {
	ConfirmedByType map[domain.BerthType]int
	RAC             int
	Waitlist        int
}

// NewCapacityCounts returns zeroed counts for every berth type.
func NewCapacityCounts() CapacityCounts {
	c := CapacityCounts{ConfirmedByType: make(map[domain.BerthType]int, len(domain.BerthFallback))}
	for _, t := range domain.BerthFallback {
		c.ConfirmedByType[t] = 0
	}
	return c
}

// TierUsage reports used/free slots for one tier in the availability view.
type TierUsage struct {
	Used int `json:"used"`
	Free int `json:"free"`
}

// Availability is the public availability summary.
type Availability struct {
	Confirmed map[domain.BerthType]TierUsage `json:"confirmed"`
	RAC       TierUsage                      `json:"rac"`
	Waitlist  TierUsage                      `json:"waitlist"`
}

// BookingResult is what a successful booking returns: the booking code and
// the created tickets in priority-processing order.
type BookingResult struct {
	BookingCode string   `json:"booking_id"`
	Tickets     []Ticket `json:"tickets"`
}
