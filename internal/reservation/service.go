package reservation

import (
	"context"
	"database/sql"
	"strings"
	"sync"
	"time"

	"github.com/HimanshuMishir/railway-reservation-api/internal/domain"
	"github.com/HimanshuMishir/railway-reservation-api/internal/domain/models"
	"github.com/HimanshuMishir/railway-reservation-api/internal/repositories"
	"github.com/HimanshuMishir/railway-reservation-api/internal/utils"
)

// Service runs the booking and cancellation flows. Mutations take a
// serializable transaction and hold mu for the whole read-decide-write
// sequence, so no two of them can interleave their capacity reads with
// their writes. Reads go straight to the pool.
type Service struct {
	db *sql.DB
	mu sync.Mutex

	// now is swappable in tests.
	now func() time.Time
}

func NewService(db *sql.DB) *Service {
	return &Service{db: db, now: time.Now}
}

// Book admits one batch atomically: either every passenger gets a tier or
// nothing is persisted. Returned tickets follow priority-processing order,
// not input order.
func (s *Service) Book(ctx context.Context, userID int64, passengers []models.PassengerRequest) (models.BookingResult, error) {
	if err := validateBatch(userID, passengers); err != nil {
		return models.BookingResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return models.BookingResult{}, domain.InternalError{Msg: "failed to begin transaction", Err: err}
	}
	defer tx.Rollback()

	bookings := repositories.BookingRepository{DB: tx}
	tickets := repositories.TicketRepository{DB: tx}

	code, err := generateBookingCode(bookings.CodeExists)
	if err != nil {
		return models.BookingResult{}, asDomainError(err)
	}

	bookingID, err := bookings.Create(code, userID, utils.FormatDate(s.now()))
	if err != nil {
		return models.BookingResult{}, domain.InternalError{Msg: "failed to create booking", Err: err}
	}

	counts, err := tickets.Counts()
	if err != nil {
		return models.BookingResult{}, domain.InternalError{Msg: "failed to read capacity counts", Err: err}
	}
	used := make(map[domain.BerthType]map[int]bool, len(domain.BerthFallback))
	for _, t := range domain.BerthFallback {
		if used[t], err = tickets.UsedBerthNumbers(t); err != nil {
			return models.BookingResult{}, domain.InternalError{Msg: "failed to read berth numbers", Err: err}
		}
	}

	alloc := newAllocator(counts, used)
	created := make([]models.Ticket, 0, len(passengers))
	for _, req := range OrderByPriority(passengers) {
		pl, err := alloc.place(req)
		if err != nil {
			return models.BookingResult{}, asDomainError(err)
		}

		id, err := tickets.Create(models.Ticket{
			BookingID: bookingID,
			Name:      req.Name,
			Age:       req.Age,
			Gender:    req.Gender,
			Status:    pl.Status,
			BerthNo:   pl.BerthNo,
			BerthType: pl.BerthType,
		})
		if err != nil {
			return models.BookingResult{}, domain.InternalError{Msg: "failed to create ticket", Err: err}
		}
		// re-read for the DB-assigned creation timestamp
		row, err := tickets.GetByID(id)
		if err != nil {
			return models.BookingResult{}, domain.InternalError{Msg: "failed to read created ticket", Err: err}
		}
		created = append(created, row)
	}

	if err := tx.Commit(); err != nil {
		return models.BookingResult{}, domain.InternalError{Msg: "failed to commit booking", Err: err}
	}
	return models.BookingResult{BookingCode: code, Tickets: created}, nil
}

// Cancel marks one ticket CANCELLED and, in the same transaction, promotes
// the longest-waiting RAC ticket to CONFIRMED and the longest-waiting
// waitlisted ticket to RAC. Any failure rolls back the cancellation too.
func (s *Service) Cancel(ctx context.Context, ticketID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return domain.InternalError{Msg: "failed to begin transaction", Err: err}
	}
	defer tx.Rollback()

	tickets := repositories.TicketRepository{DB: tx}

	t, err := tickets.GetByID(ticketID)
	if err == sql.ErrNoRows {
		return domain.NotFoundError{Resource: "ticket"}
	}
	if err != nil {
		return domain.InternalError{Msg: "failed to load ticket", Err: err}
	}
	if t.Status == domain.StatusCancelled {
		return domain.NotFoundError{Resource: "ticket"}
	}

	if err := tickets.UpdateTier(ticketID, domain.StatusCancelled, nil, nil); err != nil {
		return domain.InternalError{Msg: "failed to cancel ticket", Err: err}
	}

	if err := promoteAfterCancel(tickets); err != nil {
		return asDomainError(err)
	}

	if err := tx.Commit(); err != nil {
		return domain.InternalError{Msg: "failed to commit cancellation", Err: err}
	}
	return nil
}

// promoteAfterCancel cascades at most one upgrade per queue: the earliest
// RAC ticket takes the first confirmed type with a spare slot (not
// necessarily the cancelled ticket's type), then the earliest waitlisted
// ticket takes the vacated RAC slot.
func promoteAfterCancel(tickets repositories.TicketRepository) error {
	next, ok, err := tickets.FirstByStatus(domain.StatusRAC)
	if err != nil {
		return domain.InternalError{Msg: "failed to scan RAC queue", Err: err}
	}
	if !ok {
		return nil
	}

	counts, err := tickets.Counts()
	if err != nil {
		return domain.InternalError{Msg: "failed to read capacity counts", Err: err}
	}
	bt, ok := nextConfirmedType(counts)
	if !ok {
		// cancelled ticket held no confirmed slot; the queues stay as they are
		return nil
	}

	usedNos, err := tickets.UsedBerthNumbers(bt)
	if err != nil {
		return domain.InternalError{Msg: "failed to read berth numbers", Err: err}
	}
	no, err := AssignBerth(bt, usedNos)
	if err != nil {
		return err
	}
	if err := tickets.UpdateTier(next.ID, domain.StatusConfirmed, &no, &bt); err != nil {
		return domain.InternalError{Msg: "failed to promote RAC ticket", Err: err}
	}

	wl, ok, err := tickets.FirstByStatus(domain.StatusWaitlist)
	if err != nil {
		return domain.InternalError{Msg: "failed to scan waitlist", Err: err}
	}
	if ok {
		if err := tickets.UpdateTier(wl.ID, domain.StatusRAC, nil, nil); err != nil {
			return domain.InternalError{Msg: "failed to promote waitlisted ticket", Err: err}
		}
	}
	return nil
}

// Availability summarizes used/free slots per tier. Plain read, no lock.
func (s *Service) Availability() (models.Availability, error) {
	counts, err := repositories.TicketRepository{DB: s.db}.Counts()
	if err != nil {
		return models.Availability{}, domain.InternalError{Msg: "failed to read capacity counts", Err: err}
	}

	av := models.Availability{Confirmed: make(map[domain.BerthType]models.TierUsage, len(domain.BerthFallback))}
	for _, t := range domain.BerthFallback {
		usedN := counts.ConfirmedByType[t]
		av.Confirmed[t] = models.TierUsage{Used: usedN, Free: domain.ConfirmedCap(t) - usedN}
	}
	av.RAC = models.TierUsage{Used: counts.RAC, Free: domain.RACCap - counts.RAC}
	av.Waitlist = models.TierUsage{Used: counts.Waitlist, Free: domain.WaitlistCap - counts.Waitlist}
	return av, nil
}

// ListTickets returns every non-cancelled ticket in creation order.
func (s *Service) ListTickets() ([]models.Ticket, error) {
	rows, err := repositories.TicketRepository{DB: s.db}.ListActive()
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list tickets", Err: err}
	}
	return rows, nil
}

// TicketsByBookingCode resolves a 5-digit booking code to its tickets.
func (s *Service) TicketsByBookingCode(code string) ([]models.Ticket, error) {
	b, err := repositories.BookingRepository{DB: s.db}.GetByCode(strings.TrimSpace(code))
	if err == sql.ErrNoRows {
		return nil, domain.NotFoundError{Resource: "booking"}
	}
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to load booking", Err: err}
	}
	rows, err := repositories.TicketRepository{DB: s.db}.ListByBookingID(b.ID)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list tickets", Err: err}
	}
	return rows, nil
}

// TicketsByDate returns tickets of every booking made on a YYYY-MM-DD date.
func (s *Service) TicketsByDate(date string) ([]models.Ticket, error) {
	if _, err := utils.ParseDate(date); err != nil {
		return nil, domain.ValidationError{Field: "date", Msg: "expected YYYY-MM-DD", Err: err}
	}
	rows, err := repositories.TicketRepository{DB: s.db}.ListByBookingDate(strings.TrimSpace(date))
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list tickets", Err: err}
	}
	return rows, nil
}

// GetTicket loads one ticket regardless of status.
func (s *Service) GetTicket(id int64) (models.Ticket, error) {
	t, err := repositories.TicketRepository{DB: s.db}.GetByID(id)
	if err == sql.ErrNoRows {
		return models.Ticket{}, domain.NotFoundError{Resource: "ticket"}
	}
	if err != nil {
		return models.Ticket{}, domain.InternalError{Msg: "failed to load ticket", Err: err}
	}
	return t, nil
}

func validateBatch(userID int64, passengers []models.PassengerRequest) error {
	if userID <= 0 {
		return domain.ValidationError{Field: "user_id", Msg: "required"}
	}
	if len(passengers) == 0 {
		return domain.ValidationError{Field: "passengers", Msg: "at least one passenger required"}
	}
	for _, p := range passengers {
		if strings.TrimSpace(p.Name) == "" {
			return domain.ValidationError{Field: "name", Msg: "required"}
		}
		if p.Age < 0 {
			return domain.ValidationError{Field: "age", Msg: "must be zero or positive"}
		}
		if !p.Gender.Valid() {
			return domain.ValidationError{Field: "gender", Msg: "must be MALE, FEMALE or OTHER"}
		}
	}
	return nil
}

// asDomainError keeps typed domain errors intact and wraps anything else.
func asDomainError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case domain.IsValidation(err), domain.IsNotFound(err), domain.IsCapacity(err),
		domain.IsConsistency(err), domain.IsIDGeneration(err), domain.IsInternal(err):
		return err
	}
	return domain.InternalError{Err: err}
}
