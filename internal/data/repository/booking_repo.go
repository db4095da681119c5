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

type BookingRepository interface {
	// FindByUserID returns the user's booking with its room, or nil.
	FindByUserID(ctx context.Context, userID int) (*entity.Booking, error)
	Create(ctx context.Context, roomID, userID int) (*entity.Booking, error)
	// UpdateRoom moves a booking to another room. Returns nil when the
	// booking does not exist.
	UpdateRoom(ctx context.Context, roomID, bookingID int) (*entity.Booking, error)
	FindByRoomID(ctx context.Context, roomID int) ([]*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID int) (*entity.Booking, error) {
	query := `
		SELECT b.id, b.user_id, b.room_id, b.created_at, b.updated_at,
		       r.id, r.name, r.capacity, r.hotel_id, r.created_at, r.updated_at
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.user_id = $1
		ORDER BY b.id
		LIMIT 1
	`

	var booking entity.Booking
	var room entity.Room
	err := conn(ctx, r.db).QueryRow(ctx, query, userID).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RoomID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
		&room.ID,
		&room.Name,
		&room.Capacity,
		&room.HotelID,
		&room.CreatedAt,
		&room.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by user ID",
			zap.Error(err),
			zap.Int("user_id", userID),
		)
		return nil, fmt.Errorf("find booking by user ID %d: %w", userID, err)
	}

	booking.Room = &room
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, roomID, userID int) (*entity.Booking, error) {
	query := `
		INSERT INTO bookings (user_id, room_id)
		VALUES ($1, $2)
		RETURNING id, user_id, room_id, created_at, updated_at
	`

	var booking entity.Booking
	err := conn(ctx, r.db).QueryRow(ctx, query, userID, roomID).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RoomID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if isUniqueViolation(err) {
		r.log.Warn("Booking already exists for user",
			zap.Int("user_id", userID),
			zap.Int("room_id", roomID),
		)
		return nil, fmt.Errorf("create booking for user %d: %w", userID, ErrDuplicate)
	}
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.Int("user_id", userID),
			zap.Int("room_id", roomID),
		)
		return nil, fmt.Errorf("create booking for user %d: %w", userID, err)
	}

	return &booking, nil
}

func (r *bookingRepository) UpdateRoom(ctx context.Context, roomID, bookingID int) (*entity.Booking, error) {
	query := `
		UPDATE bookings
		SET room_id = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, user_id, room_id, created_at, updated_at
	`

	var booking entity.Booking
	err := conn(ctx, r.db).QueryRow(ctx, query, roomID, bookingID).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RoomID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update booking room",
			zap.Error(err),
			zap.Int("booking_id", bookingID),
			zap.Int("room_id", roomID),
		)
		return nil, fmt.Errorf("update booking %d: %w", bookingID, err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindByRoomID(ctx context.Context, roomID int) ([]*entity.Booking, error) {
	query := `
		SELECT id, user_id, room_id, created_at, updated_at
		FROM bookings
		WHERE room_id = $1
		ORDER BY id
	`

	rows, err := conn(ctx, r.db).Query(ctx, query, roomID)
	if err != nil {
		r.log.Error("Failed to find bookings by room ID",
			zap.Error(err),
			zap.Int("room_id", roomID),
		)
		return nil, fmt.Errorf("find bookings by room ID %d: %w", roomID, err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.RoomID,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}
