package usecase

import (
	"fmt"

	"zyro-visual/internal/entity"
	"zyro-visual/internal/repo"
	"zyro-visual/pkg/logger"
)

type BookingUseCase interface {
	CreateBooking(booking *entity.Booking) (*entity.Booking, error)
	ListBookings() ([]*entity.Booking, error)
	GetBooking(id int) (*entity.Booking, error)
	UpdateBookingStatus(id int, status entity.BookingStatus) (*entity.Booking, error)
}

type bookingUseCase struct {
	bookings repo.BookingRepository
	logger   *logger.Logger
}

func NewBookingUseCase(bookings repo.BookingRepository, logger *logger.Logger) BookingUseCase {
	return &bookingUseCase{
		bookings: bookings,
		logger:   logger,
	}
}

func (uc *bookingUseCase) CreateBooking(booking *entity.Booking) (*entity.Booking, error) {
	booking.Status = entity.BookingPending

	created, err := uc.bookings.Create(booking)
	if err != nil {
		uc.logger.Error("Failed to create booking: %v", err)
		return nil, fmt.Errorf("failed to create booking")
	}
	return created, nil
}

func (uc *bookingUseCase) ListBookings() ([]*entity.Booking, error) {
	return uc.bookings.List()
}

func (uc *bookingUseCase) GetBooking(id int) (*entity.Booking, error) {
	return uc.bookings.GetByID(id)
}

func (uc *bookingUseCase) UpdateBookingStatus(id int, status entity.BookingStatus) (*entity.Booking, error) {
	updated, err := uc.bookings.UpdateStatus(id, status)
	if err != nil {
		uc.logger.Error("Failed to update booking %d status: %v", id, err)
		return nil, fmt.Errorf("failed to update booking status")
	}
	return updated, nil
}
