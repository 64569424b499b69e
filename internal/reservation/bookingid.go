package reservation

import (
	"math/rand"
	"strconv"

	"github.com/HimanshuMishir/railway-reservation-api/internal/domain"
)

const bookingCodeAttempts = 5

// generateBookingCode draws random 5-digit codes until one is unused.
// Attempts are bounded; exhausting them surfaces as IDGenerationError.
func generateBookingCode(exists func(string) (bool, error)) (string, error) {
	for i := 0; i < bookingCodeAttempts; i++ {
		code := strconv.Itoa(10000 + rand.Intn(90000))
		taken, err := exists(code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", domain.IDGenerationError{Attempts: bookingCodeAttempts}
}
