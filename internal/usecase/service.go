package usecase

import (
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Booking BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Booking: NewBookingService(repo, config.Booking, log),
	}
}
