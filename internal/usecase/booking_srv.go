package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	GetBooking(ctx context.Context, userID int) (*response.BookingResponse, error)
	CreateBooking(ctx context.Context, roomID, userID int) (BookingResult, error)
	UpdateBooking(ctx context.Context, roomID, userID, bookingID int) (BookingResult, error)
}

type bookingService struct {
	repo   *repository.Repository
	config utils.BookingConfig
	log    *zap.Logger
}

func NewBookingService(repo *repository.Repository, config utils.BookingConfig, log *zap.Logger) BookingService {
	return &bookingService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) GetBooking(ctx context.Context, userID int) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get booking for user %d: %w", userID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking for user %d: %w", userID, ErrNotFound)
	}

	room := booking.Room
	if room == nil {
		room, err = s.repo.Room.FindByID(ctx, booking.RoomID)
		if err != nil {
			return nil, fmt.Errorf("get room %d: %w", booking.RoomID, err)
		}
		if room == nil {
			return nil, fmt.Errorf("room %d: %w", booking.RoomID, ErrNotFound)
		}
	}

	return &response.BookingResponse{
		ID:   booking.ID,
		Room: room,
	}, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, roomID, userID int) (BookingResult, error) {
	if _, err := s.findRoom(ctx, roomID); err != nil {
		return BookingResult{}, err
	}

	reason, err := s.checkTicket(ctx, userID)
	if err != nil {
		return BookingResult{}, err
	}
	if reason != "" {
		return s.reject(reason, "create", roomID, userID), nil
	}

	existing, err := s.repo.Booking.FindByUserID(ctx, userID)
	if err != nil {
		return BookingResult{}, fmt.Errorf("get booking for user %d: %w", userID, err)
	}
	if existing != nil {
		return s.reject(ReasonAlreadyBooked, "create", roomID, userID), nil
	}

	var booking *entity.Booking
	err = s.repo.Tx.WithTx(ctx, func(txCtx context.Context) error {
		full, err := s.roomIsFull(txCtx, roomID)
		if err != nil || full {
			return err
		}
		booking, err = s.repo.Booking.Create(txCtx, roomID, userID)
		return err
	})
	if errors.Is(err, repository.ErrDuplicate) {
		return s.reject(ReasonAlreadyBooked, "create", roomID, userID), nil
	}
	if err != nil {
		return BookingResult{}, err
	}
	if booking == nil {
		return s.reject(ReasonRoomFull, "create", roomID, userID), nil
	}

	s.log.Info("Booking created",
		zap.Int("booking_id", booking.ID),
		zap.Int("room_id", roomID),
		zap.Int("user_id", userID),
	)

	return created(booking.ID), nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, roomID, userID, bookingID int) (BookingResult, error) {
	if _, err := s.findRoom(ctx, roomID); err != nil {
		return BookingResult{}, err
	}

	current, err := s.repo.Booking.FindByUserID(ctx, userID)
	if err != nil {
		return BookingResult{}, fmt.Errorf("get booking for user %d: %w", userID, err)
	}

	if s.config.UpdateRequiresEligibleTicket {
		reason, err := s.checkTicket(ctx, userID)
		if err != nil {
			return BookingResult{}, err
		}
		if reason != "" {
			return s.reject(reason, "update", roomID, userID), nil
		}
	}

	if current == nil {
		return s.reject(ReasonNoBooking, "update", roomID, userID), nil
	}
	if current.ID != bookingID {
		return s.reject(ReasonNotOwner, "update", roomID, userID), nil
	}
	if current.RoomID == roomID {
		return updated(current.ID), nil
	}

	var moved *entity.Booking
	err = s.repo.Tx.WithTx(ctx, func(txCtx context.Context) error {
		full, err := s.roomIsFull(txCtx, roomID)
		if err != nil || full {
			return err
		}
		moved, err = s.repo.Booking.UpdateRoom(txCtx, roomID, bookingID)
		if err != nil {
			return err
		}
		if moved == nil {
			return fmt.Errorf("booking %d: %w", bookingID, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return BookingResult{}, err
	}
	if moved == nil {
		return s.reject(ReasonRoomFull, "update", roomID, userID), nil
	}

	s.log.Info("Booking room changed",
		zap.Int("booking_id", bookingID),
		zap.Int("from_room_id", current.RoomID),
		zap.Int("to_room_id", roomID),
		zap.Int("user_id", userID),
	)

	return updated(moved.ID), nil
}

func (s *bookingService) findRoom(ctx context.Context, roomID int) (*entity.Room, error) {
	// room ids are int4 in storage; anything outside that range names no room
	if roomID <= 0 || roomID > math.MaxInt32 {
		return nil, fmt.Errorf("room %d: %w", roomID, ErrNotFound)
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("get room %d: %w", roomID, err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %d: %w", roomID, ErrNotFound)
	}
	return room, nil
}

// checkTicket walks enrollment -> ticket -> ticket type and returns the
// first rule the user's ticket breaks, or "" when the user may book.
func (s *bookingService) checkTicket(ctx context.Context, userID int) (ForbiddenReason, error) {
	enrollment, err := s.repo.Enrollment.FindByUserID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("get enrollment for user %d: %w", userID, err)
	}
	if enrollment == nil {
		return ReasonNoTicket, nil
	}

	ticket, err := s.repo.Ticket.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		return "", fmt.Errorf("get ticket for enrollment %d: %w", enrollment.ID, err)
	}
	if ticket == nil {
		return ReasonNoTicket, nil
	}

	withType, err := s.repo.Ticket.FindWithTypeByID(ctx, ticket.ID)
	if err != nil {
		return "", fmt.Errorf("get ticket type for ticket %d: %w", ticket.ID, err)
	}
	if withType == nil || withType.TicketType == nil {
		return ReasonNoTicket, nil
	}

	return eligibility(ticket.Status, withType.TicketType), nil
}

func eligibility(status entity.TicketStatus, ticketType *entity.TicketType) ForbiddenReason {
	switch {
	case status != entity.TicketStatusPaid:
		return ReasonTicketNotPaid
	case !ticketType.IncludesHotel:
		return ReasonNoHotel
	case ticketType.IsRemote:
		return ReasonRemoteTicket
	default:
		return ""
	}
}

// roomIsFull locks the room row and compares its bookings to capacity.
// Must run inside a transaction so the following write sees the same count.
func (s *bookingService) roomIsFull(ctx context.Context, roomID int) (bool, error) {
	room, err := s.repo.Room.FindByIDForUpdate(ctx, roomID)
	if err != nil {
		return false, fmt.Errorf("lock room %d: %w", roomID, err)
	}
	if room == nil {
		return false, fmt.Errorf("room %d: %w", roomID, ErrNotFound)
	}

	bookings, err := s.repo.Booking.FindByRoomID(ctx, roomID)
	if err != nil {
		return false, fmt.Errorf("get bookings for room %d: %w", roomID, err)
	}

	return len(bookings) >= room.Capacity, nil
}

func (s *bookingService) reject(reason ForbiddenReason, operation string, roomID, userID int) BookingResult {
	s.log.Info("Booking rejected",
		zap.String("operation", operation),
		zap.String("reason", string(reason)),
		zap.Int("room_id", roomID),
		zap.Int("user_id", userID),
	)
	return forbidden(reason)
}
