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

type RoomRepository interface {
	FindByID(ctx context.Context, id int) (*entity.Room, error)
	// FindByIDForUpdate locks the room row until the surrounding
	// transaction ends. Must be called inside Transactor.WithTx.
	FindByIDForUpdate(ctx context.Context, id int) (*entity.Room, error)
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

const selectRoom = `
	SELECT id, name, capacity, hotel_id, created_at, updated_at
	FROM rooms
	WHERE id = $1
`

func (r *roomRepository) FindByID(ctx context.Context, id int) (*entity.Room, error) {
	return r.findOne(ctx, selectRoom, id)
}

func (r *roomRepository) FindByIDForUpdate(ctx context.Context, id int) (*entity.Room, error) {
	return r.findOne(ctx, selectRoom+" FOR UPDATE", id)
}

func (r *roomRepository) findOne(ctx context.Context, query string, id int) (*entity.Room, error) {
	var room entity.Room
	err := conn(ctx, r.db).QueryRow(ctx, query, id).Scan(
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
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.Int("room_id", id),
		)
		return nil, fmt.Errorf("find room by ID %d: %w", id, err)
	}

	return &room, nil
}
