package domain

// Gender of a passenger as carried on the booking request.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// Valid reports whether g is one of the accepted gender values.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// TicketStatus is the tier a ticket currently holds.
type TicketStatus string

const (
	StatusConfirmed TicketStatus = "CONFIRMED"
	StatusRAC       TicketStatus = "RAC"
	StatusWaitlist  TicketStatus = "WAITLIST"
	StatusCancelled TicketStatus = "CANCELLED"
)

// BerthType is one of the four numbered berth categories.
type BerthType string

const (
	BerthLower     BerthType = "LOWER"
	BerthMiddle    BerthType = "MIDDLE"
	BerthUpper     BerthType = "UPPER"
	BerthSideLower BerthType = "SIDE_LOWER"
)

// BerthRange is the contiguous numeric range a berth type draws numbers
// from. Ranges do not overlap across types.
type BerthRange struct {
	Start int
	End   int
}

var berthRanges = map[BerthType]BerthRange{
	BerthLower:     {Start: 1, End: 18},
	BerthMiddle:    {Start: 19, End: 36},
	BerthUpper:     {Start: 37, End: 54},
	BerthSideLower: {Start: 55, End: 63},
}

// RangeOf returns the numeric range for a berth type.
func RangeOf(t BerthType) BerthRange {
	return berthRanges[t]
}

// ConfirmedCap returns the confirmed-seat capacity for a berth type.
// Capacity equals range size for every type, side-lower included (9 slots).
func ConfirmedCap(t BerthType) int {
	r := berthRanges[t]
	return r.End - r.Start + 1
}

const (
	// RACCap is the maximum number of RAC tickets held at once.
	RACCap = 18
	// WaitlistCap is the maximum number of waitlisted tickets held at once.
	WaitlistCap = 10
	// ChildAgeLimit: passengers younger than this travel confirmed without
	// a berth and never count toward any capacity.
	ChildAgeLimit = 5
	// ElderlyAge: passengers at or above this age are seated first.
	ElderlyAge = 60
)

// BerthFallback is the order confirmed berth types are tried in, both at
// booking time and when promoting an RAC ticket.
var BerthFallback = []BerthType{BerthLower, BerthMiddle, BerthUpper, BerthSideLower}
