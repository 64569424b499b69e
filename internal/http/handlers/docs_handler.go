package handlers

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/HimanshuMishir/railway-reservation-api/internal/http/middleware"
	"github.com/HimanshuMishir/railway-reservation-api/internal/services"

	"github.com/gin-gonic/gin"
)

// DocsHandler serves e-ticket PDFs.
type DocsHandler struct {
	DB *sql.DB
}

// GET /api/tickets/:id/e-ticket
func (h DocsHandler) ETicket(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid ticket id")
		return
	}

	svc := services.DocsService{DB: h.DB, RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerateETicket(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
