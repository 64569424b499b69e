package services

import (
	"bytes"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/HimanshuMishir/railway-reservation-api/internal/domain"
	"github.com/HimanshuMishir/railway-reservation-api/internal/repositories"
	"github.com/HimanshuMishir/railway-reservation-api/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the e-ticket PDF for one passenger.
type DocsService struct {
	DB        *sql.DB
	RequestID string
	Loader    func(int64) (ticketDocData, error)
}

type ticketDocData struct {
	TicketID    int64
	BookingCode string
	BookingDate string
	Name        string
	Age         int
	Gender      domain.Gender
	Status      domain.TicketStatus
	BerthNo     *int
	BerthType   *domain.BerthType
}

func (s DocsService) GenerateETicket(ticketID int64) ([]byte, string, error) {
	data, err := s.loadTicketDocData(ticketID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", fmt.Sprintf("ticket_id=%d", ticketID))
	return buildETicketPDF(data)
}

func (s DocsService) loadTicketDocData(ticketID int64) (ticketDocData, error) {
	if s.Loader != nil {
		return s.Loader(ticketID)
	}

	var out ticketDocData
	t, err := repositories.TicketRepository{DB: s.DB}.GetByID(ticketID)
	if err == sql.ErrNoRows {
		return out, domain.NotFoundError{Resource: "ticket"}
	}
	if err != nil {
		return out, domain.InternalError{Msg: "failed to load ticket", Err: err}
	}
	if t.Status == domain.StatusCancelled {
		return out, domain.NotFoundError{Resource: "ticket"}
	}

	out.TicketID = t.ID
	out.Name = t.Name
	out.Age = t.Age
	out.Gender = t.Gender
	out.Status = t.Status
	out.BerthNo = t.BerthNo
	out.BerthType = t.BerthType

	// booking lookup is best-effort; the ticket alone is enough for a stub
	if b, err := (repositories.BookingRepository{DB: s.DB}).GetByID(t.BookingID); err == nil {
		out.BookingCode = b.BookingCode
		out.BookingDate = b.BookingDate
	}
	return out, nil
}

func buildETicketPDF(d ticketDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RAILWAY E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Passenger    : %s", safe(d.Name, "-")),
		fmt.Sprintf("Age / Gender : %d / %s", d.Age, safe(string(d.Gender), "-")),
		fmt.Sprintf("Status       : %s", safe(string(d.Status), "-")),
		fmt.Sprintf("Berth        : %s", berthLabel(d)),
		fmt.Sprintf("Booking Code : %s", safe(d.BookingCode, "-")),
		fmt.Sprintf("Booking Date : %s", safe(d.BookingDate, "-")),
		fmt.Sprintf("Ticket No    : TKT-%d", d.TicketID),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Note: RAC and waitlisted passengers are upgraded automatically when a berth frees up. Carry a valid ID while boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "failed to render e-ticket", Err: err}
	}
	return buf.Bytes(), fmt.Sprintf("e-ticket-%d.pdf", d.TicketID), nil
}

func berthLabel(d ticketDocData) string {
	if d.BerthNo != nil && d.BerthType != nil {
		return string(*d.BerthType) + " " + strconv.Itoa(*d.BerthNo)
	}
	switch d.Status {
	case domain.StatusRAC, domain.StatusWaitlist:
		return string(d.Status)
	}
	return "NOT ASSIGNED"
}

func safe(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
