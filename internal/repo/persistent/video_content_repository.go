package persistent

import (
	"zyro-visual/internal/entity"
	"zyro-visual/internal/model"
	"zyro-visual/internal/repo"

	"gorm.io/gorm"
)

type videoContentRepository struct {
	db *gorm.DB
}

func (r *videoContentRepository) List() ([]*entity.VideoContent, error) {
	var contentModels []model.VideoContentModel
	if err := r.db.Order("id asc").Find(&contentModels).Error; err != nil {
		return nil, err
	}

	contents := make([]*entity.VideoContent, len(contentModels))
	for i := range contentModels {
		contents[i] = toVideoContentEntity(&contentModels[i])
	}
	return contents, nil
}

func (r *videoContentRepository) GetByID(id int) (*entity.VideoContent, error) {
	var contentModel model.VideoContentModel
	if err := r.db.Where("id = ?", id).First(&contentModel).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toVideoContentEntity(&contentModel), nil
}

func (r *videoContentRepository) Create(content *entity.VideoContent) (*entity.VideoContent, error) {
	contentModel := toVideoContentModel(content)
	contentModel.ID = 0
	if err := r.db.Create(contentModel).Error; err != nil {
		return nil, err
	}
	return toVideoContentEntity(contentModel), nil
}

func (r *videoContentRepository) Update(id int, patch repo.VideoContentPatch) (*entity.VideoContent, error) {
	updates := map[string]interface{}{}
	if patch.Section != nil {
		updates["section"] = string(*patch.Section)
	}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.VideoURL != nil {
		updates["video_url"] = *patch.VideoURL
	}
	if patch.BeforeVideoURL != nil {
		updates["before_video_url"] = *patch.BeforeVideoURL
	}
	if patch.AfterVideoURL != nil {
		updates["after_video_url"] = *patch.AfterVideoURL
	}
	if patch.ThumbnailURL != nil {
		updates["thumbnail_url"] = *patch.ThumbnailURL
	}
	if patch.Active != nil {
		updates["active"] = *patch.Active
	}
	if len(updates) == 0 {
		return r.GetByID(id)
	}

	result := r.db.Model(&model.VideoContentModel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(id)
}

func (r *videoContentRepository) Delete(id int) (bool, error) {
	result := r.db.Where("id = ?", id).Delete(&model.VideoContentModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
