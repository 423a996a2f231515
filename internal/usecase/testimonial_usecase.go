package usecase

import (
	"fmt"

	"zyro-visual/internal/entity"
	"zyro-visual/internal/repo"
	"zyro-visual/pkg/logger"
)

type TestimonialUseCase interface {
	ListTestimonials() ([]*entity.Testimonial, error)
	GetTestimonial(id int) (*entity.Testimonial, error)
	CreateTestimonial(testimonial *entity.Testimonial) (*entity.Testimonial, error)
	UpdateTestimonial(id int, patch repo.TestimonialPatch) (*entity.Testimonial, error)
	DeleteTestimonial(id int) (bool, error)
}

type testimonialUseCase struct {
	testimonials repo.TestimonialRepository
	logger       *logger.Logger
}

func NewTestimonialUseCase(testimonials repo.TestimonialRepository, logger *logger.Logger) TestimonialUseCase {
	return &testimonialUseCase{
		testimonials: testimonials,
		logger:       logger,
	}
}

func (uc *testimonialUseCase) ListTestimonials() ([]*entity.Testimonial, error) {
	// CreatorID may point at a deleted creator; records are returned as-is and
	// the client resolves the reference best-effort.
	return uc.testimonials.List()
}

func (uc *testimonialUseCase) GetTestimonial(id int) (*entity.Testimonial, error) {
	return uc.testimonials.GetByID(id)
}

func (uc *testimonialUseCase) CreateTestimonial(testimonial *entity.Testimonial) (*entity.Testimonial, error) {
	created, err := uc.testimonials.Create(testimonial)
	if err != nil {
		uc.logger.Error("Failed to create testimonial: %v", err)
		return nil, fmt.Errorf("failed to create testimonial")
	}
	return created, nil
}

func (uc *testimonialUseCase) UpdateTestimonial(id int, patch repo.TestimonialPatch) (*entity.Testimonial, error) {
	updated, err := uc.testimonials.Update(id, patch)
	if err != nil {
		uc.logger.Error("Failed to update testimonial %d: %v", id, err)
		return nil, fmt.Errorf("failed to update testimonial")
	}
	return updated, nil
}

func (uc *testimonialUseCase) DeleteTestimonial(id int) (bool, error) {
	deleted, err := uc.testimonials.Delete(id)
	if err != nil {
		uc.logger.Error("Failed to delete testimonial %d: %v", id, err)
		return false, fmt.Errorf("failed to delete testimonial")
	}
	return deleted, nil
}
