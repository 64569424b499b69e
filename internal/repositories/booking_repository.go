package repositories

import (
	"github.com/HimanshuMishir/railway-reservation-api/internal/domain/models"
)

// BookingRepository persists booking rows. DB may be the pool or an open
// transaction.
type BookingRepository struct {
	DB Querier
}

func (r BookingRepository) Create(code string, userID int64, bookingDate string) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO bookings (booking_code, user_id, booking_date)
		VALUES (?, ?, ?)
	`, code, userID, bookingDate)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	var b models.Booking
	err := r.DB.QueryRow(`
		SELECT id, booking_code, user_id, DATE_FORMAT(booking_date, '%Y-%m-%d'), created_at
		FROM bookings
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&b.ID, &b.BookingCode, &b.UserID, &b.BookingDate, &b.CreatedAt)
	return b, err
}

func (r BookingRepository) GetByCode(code string) (models.Booking, error) {
	var b models.Booking
	err := r.DB.QueryRow(`
		SELECT id, booking_code, user_id, DATE_FORMAT(booking_date, '%Y-%m-%d'), created_at
		FROM bookings
		WHERE booking_code = ?
		LIMIT 1
	`, code).Scan(&b.ID, &b.BookingCode, &b.UserID, &b.BookingDate, &b.CreatedAt)
	return b, err
}

// CodeExists reports whether a booking code is already taken.
func (r BookingRepository) CodeExists(code string) (bool, error) {
	var n int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM bookings WHERE booking_code = ?`, code).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}
