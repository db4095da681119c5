package repository

import (
	"hotel-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Booking    BookingRepository
	Room       RoomRepository
	Enrollment EnrollmentRepository
	Ticket     TicketRepository
	Session    SessionRepository
	Tx         Transactor
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Booking:    NewBookingRepository(db, log),
		Room:       NewRoomRepository(db, log),
		Enrollment: NewEnrollmentRepository(db, log),
		Ticket:     NewTicketRepository(db, log),
		Session:    NewSessionRepository(db, log),
		Tx:         NewTransactor(db),
	}
}
