package repositories

import (
	"database/sql"

	"github.com/HimanshuMishir/railway-reservation-api/internal/domain"
	"github.com/HimanshuMishir/railway-reservation-api/internal/domain/models"
)

const ticketColumns = `id, booking_id, name, age, gender, status, berth_no, berth_type, created_at`

// TicketRepository persists tickets. DB may be the pool or an open
// transaction; mutating flows always pass a transaction.
type TicketRepository struct {
	DB Querier
}

func (r TicketRepository) Create(t models.Ticket) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO tickets (booking_id, name, age, gender, status, berth_no, berth_type)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, t.BookingID, t.Name, t.Age, string(t.Gender), string(t.Status), nullableInt(t.BerthNo), nullableBerth(t.BerthType))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r TicketRepository) GetByID(id int64) (models.Ticket, error) {
	row := r.DB.QueryRow(`SELECT `+ticketColumns+` FROM tickets WHERE id = ? LIMIT 1`, id)
	return scanTicket(row)
}

// Counts derives the occupancy snapshot: non-cancelled tickets whose
// passenger is old enough to consume capacity.
func (r TicketRepository) Counts() (models.CapacityCounts, error) {
	counts := models.NewCapacityCounts()

	rows, err := r.DB.Query(`
		SELECT status, berth_type
		FROM tickets
		WHERE status <> 'CANCELLED' AND age >= ?
	`, domain.ChildAgeLimit)
	if err != nil {
		return counts, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var berthType sql.NullString
		if err := rows.Scan(&status, &berthType); err != nil {
			return counts, err
		}
		switch domain.TicketStatus(status) {
		case domain.StatusConfirmed:
			if berthType.Valid {
				counts.ConfirmedByType[domain.BerthType(berthType.String)]++
			}
		case domain.StatusRAC:
			counts.RAC++
		case domain.StatusWaitlist:
			counts.Waitlist++
		}
	}
	return counts, rows.Err()
}

// UsedBerthNumbers returns the berth numbers held by confirmed tickets of
// one berth type.
func (r TicketRepository) UsedBerthNumbers(t domain.BerthType) (map[int]bool, error) {
	rows, err := r.DB.Query(`
		SELECT berth_no
		FROM tickets
		WHERE status = 'CONFIRMED' AND berth_type = ? AND berth_no IS NOT NULL
	`, string(t))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	used := make(map[int]bool)
	for rows.Next() {
		var no int
		if err := rows.Scan(&no); err != nil {
			return nil, err
		}
		used[no] = true
	}
	return used, rows.Err()
}

// FirstByStatus returns the longest-waiting ticket of a status. Queue
// position is creation time, ties broken by id.
func (r TicketRepository) FirstByStatus(status domain.TicketStatus) (models.Ticket, bool, error) {
	row := r.DB.QueryRow(`
		SELECT `+ticketColumns+`
		FROM tickets
		WHERE status = ?
		ORDER BY created_at ASC, id ASC
		LIMIT 1
	`, string(status))
	t, err := scanTicket(row)
	if err == sql.ErrNoRows {
		return models.Ticket{}, false, nil
	}
	if err != nil {
		return models.Ticket{}, false, err
	}
	return t, true, nil
}

// UpdateTier moves a ticket to a new status and berth assignment. Passing
// nil berth fields clears them.
func (r TicketRepository) UpdateTier(id int64, status domain.TicketStatus, berthNo *int, berthType *domain.BerthType) error {
	_, err := r.DB.Exec(`
		UPDATE tickets SET status = ?, berth_no = ?, berth_type = ? WHERE id = ?
	`, string(status), nullableInt(berthNo), nullableBerth(berthType), id)
	return err
}

// ListActive returns all non-cancelled tickets in creation order.
func (r TicketRepository) ListActive() ([]models.Ticket, error) {
	return r.list(`
		SELECT `+ticketColumns+`
		FROM tickets
		WHERE status <> 'CANCELLED'
		ORDER BY created_at ASC, id ASC
	`)
}

func (r TicketRepository) ListByBookingID(bookingID int64) ([]models.Ticket, error) {
	return r.list(`
		SELECT `+ticketColumns+`
		FROM tickets
		WHERE booking_id = ?
		ORDER BY created_at ASC, id ASC
	`, bookingID)
}

// ListByBookingDate returns tickets of every booking made on a date.
func (r TicketRepository) ListByBookingDate(date string) ([]models.Ticket, error) {
	return r.list(`
		SELECT t.id, t.booking_id, t.name, t.age, t.gender, t.status, t.berth_no, t.berth_type, t.created_at
		FROM tickets t
		JOIN bookings b ON b.id = t.booking_id
		WHERE b.booking_date = ?
		ORDER BY t.created_at ASC, t.id ASC
	`, date)
}

func (r TicketRepository) list(query string, args ...any) ([]models.Ticket, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Ticket{}
	for rows.Next() {
		t, err := scanTicketRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func scanTicket(row *sql.Row) (models.Ticket, error) {
	var t models.Ticket
	var gender, status string
	var berthNo sql.NullInt64
	var berthType sql.NullString
	if err := row.Scan(&t.ID, &t.BookingID, &t.Name, &t.Age, &gender, &status, &berthNo, &berthType, &t.CreatedAt); err != nil {
		return models.Ticket{}, err
	}
	fillTicket(&t, gender, status, berthNo, berthType)
	return t, nil
}

func scanTicketRows(rows *sql.Rows) (models.Ticket, error) {
	var t models.Ticket
	var gender, status string
	var berthNo sql.NullInt64
	var berthType sql.NullString
	if err := rows.Scan(&t.ID, &t.BookingID, &t.Name, &t.Age, &gender, &status, &berthNo, &berthType, &t.CreatedAt); err != nil {
		return models.Ticket{}, err
	}
	fillTicket(&t, gender, status, berthNo, berthType)
	return t, nil
}

func fillTicket(t *models.Ticket, gender, status string, berthNo sql.NullInt64, berthType sql.NullString) {
	t.Gender = domain.Gender(gender)
	t.Status = domain.TicketStatus(status)
	if berthNo.Valid {
		no := int(berthNo.Int64)
		t.BerthNo = &no
	}
	if berthType.Valid {
		bt := domain.BerthType(berthType.String)
		t.BerthType = &bt
	}
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableBerth(v *domain.BerthType) any {
	if v == nil {
		return nil
	}
	return string(*v)
}
