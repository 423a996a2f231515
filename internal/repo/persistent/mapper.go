package persistent

import (
	"zyro-visual/internal/entity"
	"zyro-visual/internal/model"
)

func toUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}
	return &entity.User{
		ID:        m.ID,
		Username:  m.Username,
		Password:  m.Password,
		IsAdmin:   m.IsAdmin,
		CreatedAt: m.CreatedAt,
	}
}

func toUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}
	return &model.UserModel{
		ID:        e.ID,
		Username:  e.Username,
		Password:  e.Password,
		IsAdmin:   e.IsAdmin,
		CreatedAt: e.CreatedAt,
	}
}

func toBookingEntity(m *model.BookingModel) *entity.Booking {
	if m == nil {
		return nil
	}
	return &entity.Booking{
		ID:             m.ID,
		Name:           m.Name,
		Email:          m.Email,
		Channel:        m.Channel,
		ServiceType:    m.ServiceType,
		ProjectDetails: m.ProjectDetails,
		BudgetRange:    m.BudgetRange,
		Status:         entity.BookingStatus(m.Status),
		CreatedAt:      m.CreatedAt,
	}
}

func toBookingModel(e *entity.Booking) *model.BookingModel {
	if e == nil {
		return nil
	}
	return &model.BookingModel{
		ID:             e.ID,
		Name:           e.Name,
		Email:          e.Email,
		Channel:        e.Channel,
		ServiceType:    e.ServiceType,
		ProjectDetails: e.ProjectDetails,
		BudgetRange:    e.BudgetRange,
		Status:         string(e.Status),
		CreatedAt:      e.CreatedAt,
	}
}

func toPortfolioEntity(m *model.PortfolioItemModel) *entity.PortfolioItem {
	if m == nil {
		return nil
	}
	return &entity.PortfolioItem{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		VideoURL:     m.VideoURL,
		ThumbnailURL: m.ThumbnailURL,
		Category:     m.Category,
		Featured:     m.Featured,
		CreatedAt:    m.CreatedAt,
	}
}

func toPortfolioModel(e *entity.PortfolioItem) *model.PortfolioItemModel {
	if e == nil {
		return nil
	}
	return &model.PortfolioItemModel{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		VideoURL:     e.VideoURL,
		ThumbnailURL: e.ThumbnailURL,
		Category:     e.Category,
		Featured:     e.Featured,
		CreatedAt:    e.CreatedAt,
	}
}

func toCreatorEntity(m *model.CreatorModel) *entity.Creator {
	if m == nil {
		return nil
	}
	return &entity.Creator{
		ID:          m.ID,
		Name:        m.Name,
		Subscribers: m.Subscribers,
		Testimonial: m.Testimonial,
		AvatarURL:   m.AvatarURL,
		Featured:    m.Featured,
		CreatedAt:   m.CreatedAt,
	}
}

func toCreatorModel(e *entity.Creator) *model.CreatorModel {
	if e == nil {
		return nil
	}
	return &model.CreatorModel{
		ID:          e.ID,
		Name:        e.Name,
		Subscribers: e.Subscribers,
		Testimonial: e.Testimonial,
		AvatarURL:   e.AvatarURL,
		Featured:    e.Featured,
		CreatedAt:   e.CreatedAt,
	}
}

func toTestimonialEntity(m *model.TestimonialModel) *entity.Testimonial {
	if m == nil {
		return nil
	}
	return &entity.Testimonial{
		ID:        m.ID,
		Quote:     m.Quote,
		CreatorID: m.CreatorID,
		Rating:    m.Rating,
		Featured:  m.Featured,
		CreatedAt: m.CreatedAt,
	}
}

func toTestimonialModel(e *entity.Testimonial) *model.TestimonialModel {
	if e == nil {
		return nil
	}
	return &model.TestimonialModel{
		ID:        e.ID,
		Quote:     e.Quote,
		CreatorID: e.CreatorID,
		Rating:    e.Rating,
		Featured:  e.Featured,
		CreatedAt: e.CreatedAt,
	}
}

func toVideoContentEntity(m *model.VideoContentModel) *entity.VideoContent {
	if m == nil {
		return nil
	}
	return &entity.VideoContent{
		ID:             m.ID,
		Section:        entity.VideoSection(m.Section),
		Title:          m.Title,
		Description:    m.Description,
		VideoURL:       m.VideoURL,
		BeforeVideoURL: m.BeforeVideoURL,
		AfterVideoURL:  m.AfterVideoURL,
		ThumbnailURL:   m.ThumbnailURL,
		Active:         m.Active,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toVideoContentModel(e *entity.VideoContent) *model.VideoContentModel {
	if e == nil {
		return nil
	}
	return &model.VideoContentModel{
		ID:             e.ID,
		Section:        string(e.Section),
		Title:          e.Title,
		Description:    e.Description,
		VideoURL:       e.VideoURL,
		BeforeVideoURL: e.BeforeVideoURL,
		AfterVideoURL:  e.AfterVideoURL,
		ThumbnailURL:   e.ThumbnailURL,
		Active:         e.Active,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
