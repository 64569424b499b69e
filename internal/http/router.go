package api

import (
	"database/sql"
	"log"
	stdhttp "net/http"

	intconfig "github.com/HimanshuMishir/railway-reservation-api/internal/config"
	h "github.com/HimanshuMishir/railway-reservation-api/internal/http/handlers"
	"github.com/HimanshuMishir/railway-reservation-api/internal/http/middleware"
	"github.com/HimanshuMishir/railway-reservation-api/internal/reservation"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, db *sql.DB) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	secret := []byte(env.JWTSecret)
	system := h.SystemHandler{DB: db}
	authH := h.AuthHandler{DB: db, Secret: secret}
	tickets := h.TicketHandler{Service: reservation.NewService(db)}
	docs := h.DocsHandler{DB: db}

	api := r.Group("/api")
	{
		api.GET("/health", system.Health)
		api.GET("/db-check", system.DBCheck)

		auth := api.Group("/auth")
		auth.POST("/login", authH.Login)
		auth.POST("/register", authH.Register)

		tg := api.Group("/tickets", middleware.AuthOptional(secret))
		tg.POST("/book", tickets.Book)
		tg.POST("/cancel/:id", tickets.Cancel)
		tg.GET("", tickets.List)
		tg.GET("/available", tickets.Available)
		tg.GET("/:id/e-ticket", docs.ETicket)

		bookings := api.Group("/bookings")
		bookings.GET("/:bookingId/tickets", tickets.ByBooking)
		bookings.GET("/by-date/:date", tickets.ByDate)
	}

	return r
}
