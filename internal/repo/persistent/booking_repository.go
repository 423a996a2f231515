package persistent

import (
	"zyro-visual/internal/entity"
	"zyro-visual/internal/model"

	"gorm.io/gorm"
)

type bookingRepository struct {
	db *gorm.DB
}

func (r *bookingRepository) List() ([]*entity.Booking, error) {
	var bookingModels []model.BookingModel
	if err := r.db.Order("id asc").Find(&bookingModels).Error; err != nil {
		return nil, err
	}

	bookings := make([]*entity.Booking, len(bookingModels))
	for i := range bookingModels {
		bookings[i] = toBookingEntity(&bookingModels[i])
	}
	return bookings, nil
}

func (r *bookingRepository) GetByID(id int) (*entity.Booking, error) {
	var bookingModel model.BookingModel
	if err := r.db.Where("id = ?", id).First(&bookingModel).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toBookingEntity(&bookingModel), nil
}

func (r *bookingRepository) Create(booking *entity.Booking) (*entity.Booking, error) {
	bookingModel := toBookingModel(booking)
	bookingModel.ID = 0
	if bookingModel.Status == "" {
		bookingModel.Status = string(entity.BookingPending)
	}
	if err := r.db.Create(bookingModel).Error; err != nil {
		return nil, err
	}
	return toBookingEntity(bookingModel), nil
}

func (r *bookingRepository) UpdateStatus(id int, status entity.BookingStatus) (*entity.Booking, error) {
	result := r.db.Model(&model.BookingModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(id)
}
