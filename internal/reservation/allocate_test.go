package reservation

import (
	"testing"

	"github.com/HimanshuMishir/railway-reservation-api/internal/domain"
	"github.com/HimanshuMishir/railway-reservation-api/internal/domain/models"
)

func adult(name string) models.PassengerRequest {
	return models.PassengerRequest{Name: name, Age: 30, Gender: domain.GenderMale}
}

// fullCounts fills every confirmed type; RAC/waitlist as given.
func fullCounts(rac, wl int) models.CapacityCounts {
	c := models.NewCapacityCounts()
	for _, t := range domain.BerthFallback {
		c.ConfirmedByType[t] = domain.ConfirmedCap(t)
	}
	c.RAC = rac
	c.Waitlist = wl
	return c
}

func TestPlaceAssignsDistinctLowerBerths(t *testing.T) {
	a := newAllocator(models.NewCapacityCounts(), nil)

	first, err := a.place(adult("A"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := a.place(adult("B"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Status != domain.StatusConfirmed || second.Status != domain.StatusConfirmed {
		t.Fatalf("both passengers should be confirmed: %v %v", first.Status, second.Status)
	}
	if *first.BerthType != domain.BerthLower || *second.BerthType != domain.BerthLower {
		t.Fatalf("expected lower berths, got %v %v", *first.BerthType, *second.BerthType)
	}
	if *first.BerthNo != 1 || *second.BerthNo != 2 {
		t.Fatalf("expected berth numbers 1 and 2, got %d and %d", *first.BerthNo, *second.BerthNo)
	}
}

func TestPlaceWalksFallbackChain(t *testing.T) {
	counts := models.NewCapacityCounts()
	counts.ConfirmedByType[domain.BerthLower] = domain.ConfirmedCap(domain.BerthLower)
	counts.ConfirmedByType[domain.BerthMiddle] = domain.ConfirmedCap(domain.BerthMiddle)
	a := newAllocator(counts, nil)

	pl, err := a.place(adult("A"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *pl.BerthType != domain.BerthUpper || *pl.BerthNo != 37 {
		t.Fatalf("expected UPPER 37, got %v %v", *pl.BerthType, *pl.BerthNo)
	}
}

func TestPlaceSpillsToRACWhenBerthsFull(t *testing.T) {
	a := newAllocator(fullCounts(17, 0), nil)

	pl, err := a.place(adult("A"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pl.Status != domain.StatusRAC {
		t.Fatalf("expected RAC, got %v", pl.Status)
	}
	if pl.BerthNo != nil || pl.BerthType != nil {
		t.Fatalf("RAC must not hold a berth")
	}
	if a.counts.RAC != 18 {
		t.Fatalf("running RAC count not incremented, got %d", a.counts.RAC)
	}
}

func TestPlaceSpillsToWaitlistWhenRACFull(t *testing.T) {
	a := newAllocator(fullCounts(domain.RACCap, 0), nil)

	pl, err := a.place(adult("A"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pl.Status != domain.StatusWaitlist {
		t.Fatalf("expected WAITLIST, got %v", pl.Status)
	}
}

func TestPlaceFailsWhenEveryTierFull(t *testing.T) {
	a := newAllocator(fullCounts(domain.RACCap, domain.WaitlistCap), nil)

	_, err := a.place(adult("A"))
	if !domain.IsCapacity(err) {
		t.Fatalf("want capacity error, got %v", err)
	}
}

func TestPlaceChildConfirmedWithoutBerthOrCapacity(t *testing.T) {
	a := newAllocator(fullCounts(domain.RACCap, domain.WaitlistCap), nil)

	pl, err := a.place(models.PassengerRequest{Name: "Kid", Age: 3, Gender: domain.GenderOther})
	if err != nil {
		t.Fatalf("children are always admitted: %v", err)
	}
	if pl.Status != domain.StatusConfirmed || pl.BerthNo != nil || pl.BerthType != nil {
		t.Fatalf("child must be confirmed without a berth: %+v", pl)
	}
	if a.counts.RAC != domain.RACCap || a.counts.Waitlist != domain.WaitlistCap {
		t.Fatalf("child must not consume capacity")
	}
}

func TestPlaceSkipsBerthNumbersAlreadyInUse(t *testing.T) {
	used := map[domain.BerthType]map[int]bool{
		domain.BerthLower: {1: true, 2: true},
	}
	counts := models.NewCapacityCounts()
	counts.ConfirmedByType[domain.BerthLower] = 2
	a := newAllocator(counts, used)

	pl, err := a.place(adult("A"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *pl.BerthNo != 3 {
		t.Fatalf("expected berth 3, got %d", *pl.BerthNo)
	}
}

func TestNextConfirmedTypeFallbackOrder(t *testing.T) {
	counts := fullCounts(0, 0)
	counts.ConfirmedByType[domain.BerthUpper]--

	bt, ok := nextConfirmedType(counts)
	if !ok || bt != domain.BerthUpper {
		t.Fatalf("expected UPPER, got %v ok=%v", bt, ok)
	}

	counts.ConfirmedByType[domain.BerthUpper]++
	if _, ok := nextConfirmedType(counts); ok {
		t.Fatalf("no type should have spare capacity")
	}
}
