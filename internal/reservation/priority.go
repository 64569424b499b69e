package reservation

import (
	"sort"

	"github.com/HimanshuMishir/railway-reservation-api/internal/domain"
	"github.com/HimanshuMishir/railway-reservation-api/internal/domain/models"
)

// OrderByPriority reorders a batch into three consecutive groups: elderly
// passengers, then women when the batch travels with a child under 5, then
// everyone else (children included). Relative order inside each group is
// preserved, so an over-subscribed batch spills its lowest-priority
// passengers into RAC/waitlist first.
func OrderByPriority(reqs []models.PassengerRequest) []models.PassengerRequest {
	hasChild := false
	for _, r := range reqs {
		if r.Age < domain.ChildAgeLimit {
			hasChild = true
			break
		}
	}

	ordered := make([]models.PassengerRequest, len(reqs))
	copy(ordered, reqs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return priorityGroup(ordered[i], hasChild) < priorityGroup(ordered[j], hasChild)
	})
	return ordered
}

func priorityGroup(r models.PassengerRequest, hasChild bool) int {
	switch {
	case r.Age >= domain.ElderlyAge:
		return 0
	case r.Gender == domain.GenderFemale && hasChild && r.Age >= domain.ChildAgeLimit:
		return 1
	default:
		return 2
	}
}
