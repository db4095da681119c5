package repository

import (
	"context"
	"errors"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TicketRepository interface {
	FindByEnrollmentID(ctx context.Context, enrollmentID int) (*entity.Ticket, error)
	// FindWithTypeByID loads the ticket together with its TicketType.
	FindWithTypeByID(ctx context.Context, id int) (*entity.Ticket, error)
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

func (r *ticketRepository) FindByEnrollmentID(ctx context.Context, enrollmentID int) (*entity.Ticket, error) {
	query := `
		SELECT id, enrollment_id, ticket_type_id, status, created_at, updated_at
		FROM tickets
		WHERE enrollment_id = $1
	`

	var ticket entity.Ticket
	err := conn(ctx, r.db).QueryRow(ctx, query, enrollmentID).Scan(
		&ticket.ID,
		&ticket.EnrollmentID,
		&ticket.TicketTypeID,
		&ticket.Status,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket by enrollment ID",
			zap.Error(err),
			zap.Int("enrollment_id", enrollmentID),
		)
		return nil, fmt.Errorf("find ticket by enrollment ID %d: %w", enrollmentID, err)
	}

	return &ticket, nil
}

func (r *ticketRepository) FindWithTypeByID(ctx context.Context, id int) (*entity.Ticket, error) {
	query := `
		SELECT t.id, t.enrollment_id, t.ticket_type_id, t.status, t.created_at, t.updated_at,
		       tt.id, tt.name, tt.price, tt.is_remote, tt.includes_hotel, tt.created_at, tt.updated_at
		FROM tickets t
		JOIN ticket_types tt ON tt.id = t.ticket_type_id
		WHERE t.id = $1
	`

	var ticket entity.Ticket
	var ticketType entity.TicketType
	err := conn(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.EnrollmentID,
		&ticket.TicketTypeID,
		&ticket.Status,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
		&ticketType.ID,
		&ticketType.Name,
		&ticketType.Price,
		&ticketType.IsRemote,
		&ticketType.IncludesHotel,
		&ticketType.CreatedAt,
		&ticketType.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket with type",
			zap.Error(err),
			zap.Int("ticket_id", id),
		)
		return nil, fmt.Errorf("find ticket with type %d: %w", id, err)
	}

	ticket.TicketType = &ticketType
	return &ticket, nil
}
