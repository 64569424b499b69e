package handlers

import (
	"database/sql"
	"net/http"

	"github.com/HimanshuMishir/railway-reservation-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// SystemHandler serves health and database checks.
type SystemHandler struct {
	DB *sql.DB
}

// GET /api/health
func (h SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET /api/db-check
func (h SystemHandler) DBCheck(c *gin.Context) {
	if err := h.DB.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "up",
		"tickets": utils.HasTable(h.DB, "tickets"),
	})
}
