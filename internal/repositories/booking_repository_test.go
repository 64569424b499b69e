package repositories

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCodeExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM bookings WHERE booking_code")).
		WithArgs("12345").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM bookings WHERE booking_code")).
		WithArgs("54321").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	repo := BookingRepository{DB: db}
	taken, err := repo.CodeExists("12345")
	if err != nil || !taken {
		t.Fatalf("expected 12345 taken, got taken=%v err=%v", taken, err)
	}
	free, err := repo.CodeExists("54321")
	if err != nil || free {
		t.Fatalf("expected 54321 free, got taken=%v err=%v", free, err)
	}
}

func TestCreateBookingReturnsInsertID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs("12345", int64(3), "2026-09-01").
		WillReturnResult(sqlmock.NewResult(42, 1))

	id, err := BookingRepository{DB: db}.Create("12345", 3, "2026-09-01")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if id != 42 {
		t.Fatalf("got id %d, want 42", id)
	}
}
