package repositories

import (
	"testing"
	"time"

	"github.com/HimanshuMishir/railway-reservation-api/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCountsAggregatesByStatusAndType(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT status, berth_type").WithArgs(domain.ChildAgeLimit).
		WillReturnRows(sqlmock.NewRows([]string{"status", "berth_type"}).
			AddRow("CONFIRMED", "LOWER").
			AddRow("CONFIRMED", "LOWER").
			AddRow("CONFIRMED", "SIDE_LOWER").
			AddRow("RAC", nil).
			AddRow("WAITLIST", nil).
			AddRow("WAITLIST", nil))

	counts, err := TicketRepository{DB: db}.Counts()
	if err != nil {
		t.Fatalf("Counts returned error: %v", err)
	}

	if counts.ConfirmedByType[domain.BerthLower] != 2 {
		t.Fatalf("LOWER count = %d, want 2", counts.ConfirmedByType[domain.BerthLower])
	}
	if counts.ConfirmedByType[domain.BerthSideLower] != 1 {
		t.Fatalf("SIDE_LOWER count = %d, want 1", counts.ConfirmedByType[domain.BerthSideLower])
	}
	if counts.ConfirmedByType[domain.BerthMiddle] != 0 || counts.ConfirmedByType[domain.BerthUpper] != 0 {
		t.Fatalf("empty types must stay zero: %+v", counts.ConfirmedByType)
	}
	if counts.RAC != 1 || counts.Waitlist != 2 {
		t.Fatalf("rac=%d waitlist=%d, want 1 and 2", counts.RAC, counts.Waitlist)
	}
}

func TestUsedBerthNumbers(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT berth_no").WithArgs("MIDDLE").
		WillReturnRows(sqlmock.NewRows([]string{"berth_no"}).AddRow(19).AddRow(21))

	used, err := TicketRepository{DB: db}.UsedBerthNumbers(domain.BerthMiddle)
	if err != nil {
		t.Fatalf("UsedBerthNumbers returned error: %v", err)
	}
	if !used[19] || !used[21] || used[20] {
		t.Fatalf("unexpected used set: %v", used)
	}
}

func TestFirstByStatusEmptyQueue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("WHERE status = ").WithArgs("RAC").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "booking_id", "name", "age", "gender", "status", "berth_no", "berth_type", "created_at",
		}))

	_, ok, err := TicketRepository{DB: db}.FirstByStatus(domain.StatusRAC)
	if err != nil {
		t.Fatalf("FirstByStatus returned error: %v", err)
	}
	if ok {
		t.Fatalf("empty queue should report ok=false")
	}
}

func TestGetByIDScansNullBerth(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM tickets WHERE id = ").WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "booking_id", "name", "age", "gender", "status", "berth_no", "berth_type", "created_at",
		}).AddRow(2, 1, "Queued", 30, "FEMALE", "RAC", nil, nil, time.Now()))

	tk, err := TicketRepository{DB: db}.GetByID(2)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if tk.BerthNo != nil || tk.BerthType != nil {
		t.Fatalf("RAC ticket should carry no berth: %+v", tk)
	}
	if tk.Status != domain.StatusRAC || tk.Gender != domain.GenderFemale {
		t.Fatalf("enum fields scanned wrong: %+v", tk)
	}
}

func TestUpdateTierClearsBerthFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE tickets SET status").
		WithArgs("CANCELLED", nil, nil, int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := (TicketRepository{DB: db}).UpdateTier(9, domain.StatusCancelled, nil, nil); err != nil {
		t.Fatalf("UpdateTier returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
