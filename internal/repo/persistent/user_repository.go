package persistent

import (
	"zyro-visual/internal/entity"
	"zyro-visual/internal/model"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func (r *userRepository) GetByID(id int) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toUserEntity(&userModel), nil
}

func (r *userRepository) GetByUsername(username string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("username = ?", username).First(&userModel).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toUserEntity(&userModel), nil
}

func (r *userRepository) Create(user *entity.User) (*entity.User, error) {
	userModel := toUserModel(user)
	userModel.ID = 0
	if err := r.db.Create(userModel).Error; err != nil {
		return nil, err
	}
	return toUserEntity(userModel), nil
}
