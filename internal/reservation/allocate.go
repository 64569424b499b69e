package reservation

import (
	"github.com/HimanshuMishir/railway-reservation-api/internal/domain"
	"github.com/HimanshuMishir/railway-reservation-api/internal/domain/models"
)

// placement is the tier decision for one passenger of a batch.
type placement struct {
	Status    domain.TicketStatus
	BerthNo   *int
	BerthType *domain.BerthType
}

// allocator walks one batch through the fallback chain. Counts and used
// berth numbers are tracked locally so every passenger of the batch sees
// the assignments made for the passengers before it; the database is not
// re-read per passenger.
type allocator struct {
	counts models.CapacityCounts
	used   map[domain.BerthType]map[int]bool
}

func newAllocator(counts models.CapacityCounts, used map[domain.BerthType]map[int]bool) *allocator {
	if used == nil {
		used = make(map[domain.BerthType]map[int]bool)
	}
	for _, t := range domain.BerthFallback {
		if used[t] == nil {
			used[t] = make(map[int]bool)
		}
	}
	return &allocator{counts: counts, used: used}
}

// place decides the tier for one passenger: children under 5 are confirmed
// without a berth, everyone else runs LOWER → MIDDLE → UPPER → SIDE_LOWER →
// RAC → WAITLIST. A passenger no tier can admit fails the whole batch.
func (a *allocator) place(req models.PassengerRequest) (placement, error) {
	if req.Age < domain.ChildAgeLimit {
		return placement{Status: domain.StatusConfirmed}, nil
	}

	for _, t := range domain.BerthFallback {
		if a.counts.ConfirmedByType[t] >= domain.ConfirmedCap(t) {
			continue
		}
		no, err := AssignBerth(t, a.used[t])
		if err != nil {
			return placement{}, err
		}
		a.counts.ConfirmedByType[t]++
		a.used[t][no] = true
		bt := t
		return placement{Status: domain.StatusConfirmed, BerthNo: &no, BerthType: &bt}, nil
	}

	if a.counts.RAC < domain.RACCap {
		a.counts.RAC++
		return placement{Status: domain.StatusRAC}, nil
	}
	if a.counts.Waitlist < domain.WaitlistCap {
		a.counts.Waitlist++
		return placement{Status: domain.StatusWaitlist}, nil
	}
	return placement{}, domain.CapacityError{}
}

// nextConfirmedType returns the first berth type with spare confirmed
// capacity under the general fallback order. Promotion uses this rather
// than the cancelled ticket's type.
func nextConfirmedType(counts models.CapacityCounts) (domain.BerthType, bool) {
	for _, t := range domain.BerthFallback {
		if counts.ConfirmedByType[t] < domain.ConfirmedCap(t) {
			return t, true
		}
	}
	return "", false
}
