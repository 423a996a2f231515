package persistent

import (
	"zyro-visual/internal/entity"
	"zyro-visual/internal/model"
	"zyro-visual/internal/repo"

	"gorm.io/gorm"
)

type creatorRepository struct {
	db *gorm.DB
}

func (r *creatorRepository) List() ([]*entity.Creator, error) {
	var creatorModels []model.CreatorModel
	if err := r.db.Order("id asc").Find(&creatorModels).Error; err != nil {
		return nil, err
	}

	creators := make([]*entity.Creator, len(creatorModels))
	for i := range creatorModels {
		creators[i] = toCreatorEntity(&creatorModels[i])
	}
	return creators, nil
}

func (r *creatorRepository) GetByID(id int) (*entity.Creator, error) {
	var creatorModel model.CreatorModel
	if err := r.db.Where("id = ?", id).First(&creatorModel).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toCreatorEntity(&creatorModel), nil
}

func (r *creatorRepository) Create(creator *entity.Creator) (*entity.Creator, error) {
	creatorModel := toCreatorModel(creator)
	creatorModel.ID = 0
	if err := r.db.Create(creatorModel).Error; err != nil {
		return nil, err
	}
	return toCreatorEntity(creatorModel), nil
}

func (r *creatorRepository) Update(id int, patch repo.CreatorPatch) (*entity.Creator, error) {
	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Subscribers != nil {
		updates["subscribers"] = *patch.Subscribers
	}
	if patch.Testimonial != nil {
		updates["testimonial"] = *patch.Testimonial
	}
	if patch.AvatarURL != nil {
		updates["avatar_url"] = *patch.AvatarURL
	}
	if patch.Featured != nil {
		updates["featured"] = *patch.Featured
	}
	if len(updates) == 0 {
		return r.GetByID(id)
	}

	result := r.db.Model(&model.CreatorModel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(id)
}

func (r *creatorRepository) Delete(id int) (bool, error) {
	result := r.db.Where("id = ?", id).Delete(&model.CreatorModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
