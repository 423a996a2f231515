package persistent

import (
	"zyro-visual/internal/entity"
	"zyro-visual/internal/model"
	"zyro-visual/internal/repo"

	"gorm.io/gorm"
)

type testimonialRepository struct {
	db *gorm.DB
}

func (r *testimonialRepository) List() ([]*entity.Testimonial, error) {
	var testimonialModels []model.TestimonialModel
	if err := r.db.Order("id asc").Find(&testimonialModels).Error; err != nil {
		return nil, err
	}

	testimonials := make([]*entity.Testimonial, len(testimonialModels))
	for i := range testimonialModels {
		testimonials[i] = toTestimonialEntity(&testimonialModels[i])
	}
	return testimonials, nil
}

func (r *testimonialRepository) GetByID(id int) (*entity.Testimonial, error) {
	var testimonialModel model.TestimonialModel
	if err := r.db.Where("id = ?", id).First(&testimonialModel).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toTestimonialEntity(&testimonialModel), nil
}

func (r *testimonialRepository) Create(testimonial *entity.Testimonial) (*entity.Testimonial, error) {
	testimonialModel := toTestimonialModel(testimonial)
	testimonialModel.ID = 0
	if err := r.db.Create(testimonialModel).Error; err != nil {
		return nil, err
	}
	return toTestimonialEntity(testimonialModel), nil
}

func (r *testimonialRepository) Update(id int, patch repo.TestimonialPatch) (*entity.Testimonial, error) {
	updates := map[string]interface{}{}
	if patch.Quote != nil {
		updates["quote"] = *patch.Quote
	}
	if patch.CreatorID != nil {
		updates["creator_id"] = *patch.CreatorID
	}
	if patch.Rating != nil {
		updates["rating"] = *patch.Rating
	}
	if patch.Featured != nil {
		updates["featured"] = *patch.Featured
	}
	if len(updates) == 0 {
		return r.GetByID(id)
	}

	result := r.db.Model(&model.TestimonialModel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(id)
}

func (r *testimonialRepository) Delete(id int) (bool, error) {
	result := r.db.Where("id = ?", id).Delete(&model.TestimonialModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
