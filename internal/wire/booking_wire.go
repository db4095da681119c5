package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/booking", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /booking - current user's booking with its room
		r.Get("/", bookingHandler.GetBooking)

		// POST /booking - book a room
		r.Post("/", bookingHandler.CreateBooking)

		// PUT /booking/{bookingId} - move the booking to another room
		r.Put("/{bookingId}", bookingHandler.UpdateBooking)
	})
}
