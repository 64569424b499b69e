package reservation

import (
	"fmt"

	"github.com/HimanshuMishir/railway-reservation-api/internal/domain"
)

// AssignBerth picks the smallest free number in the type's range. Callers
// verify spare capacity first, so running out of numbers here means the
// counts and the stored berth numbers disagree.
func AssignBerth(t domain.BerthType, used map[int]bool) (int, error) {
	r := domain.RangeOf(t)
	for no := r.Start; no <= r.End; no++ {
		if !used[no] {
			return no, nil
		}
	}
	return 0, domain.ConsistencyError{Msg: fmt.Sprintf("no free %s berth number in range %d..%d", t, r.Start, r.End)}
}
