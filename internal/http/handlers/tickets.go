package handlers

import (
	"net/http"
	"strconv"

	"github.com/HimanshuMishir/railway-reservation-api/internal/domain/models"
	"github.com/HimanshuMishir/railway-reservation-api/internal/http/middleware"
	"github.com/HimanshuMishir/railway-reservation-api/internal/reservation"
	"github.com/HimanshuMishir/railway-reservation-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// TicketHandler exposes the reservation flows over HTTP.
type TicketHandler struct {
	Service *reservation.Service
}

type bookRequest struct {
	UserID     int64                     `json:"user_id"`
	Passengers []models.PassengerRequest `json:"passengers"`
}

// POST /api/tickets/book
func (h TicketHandler) Book(c *gin.Context) {
	var req bookRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	// a verified bearer token wins over the user_id in the payload
	if id := middleware.GetAuthUserID(c); id > 0 {
		req.UserID = id
	}

	result, err := h.Service.Book(c.Request.Context(), req.UserID, req.Passengers)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "tickets", "book",
		"booking_id="+result.BookingCode+" count="+strconv.Itoa(len(result.Tickets)))
	c.JSON(http.StatusCreated, result)
}

// POST /api/tickets/cancel/:id
func (h TicketHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid ticket id")
		return
	}

	if err := h.Service.Cancel(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "tickets", "cancel", "ticket_id="+strconv.FormatInt(id, 10))
	c.JSON(http.StatusOK, gin.H{"message": "ticket cancelled, promotions applied"})
}

// GET /api/tickets
func (h TicketHandler) List(c *gin.Context) {
	rows, err := h.Service.ListTickets()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /api/tickets/available
func (h TicketHandler) Available(c *gin.Context) {
	av, err := h.Service.Availability()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, av)
}

// GET /api/bookings/:bookingId/tickets
func (h TicketHandler) ByBooking(c *gin.Context) {
	rows, err := h.Service.TicketsByBookingCode(c.Param("bookingId"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /api/bookings/by-date/:date
func (h TicketHandler) ByDate(c *gin.Context) {
	rows, err := h.Service.TicketsByDate(c.Param("date"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
