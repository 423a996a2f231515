package usecase

import (
	"fmt"

	"zyro-visual/internal/entity"
	"zyro-visual/internal/repo"
	"zyro-visual/pkg/logger"
)

type AuthUseCase interface {
	Login(username, password string) (*entity.User, error)
	Register(username, password string, isAdmin bool) (*entity.User, error)
	GetUser(id int) (*entity.User, error)
}

type authUseCase struct {
	users  repo.UserRepository
	logger *logger.Logger
}

func NewAuthUseCase(users repo.UserRepository, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		users:  users,
		logger: logger,
	}
}

// Login compares the submitted password byte-for-byte with the stored one.
// Plaintext comparison is the inherited contract of this system; see the
// known-weaknesses note in DESIGN.md.
func (uc *authUseCase) Login(username, password string) (*entity.User, error) {
	user, err := uc.users.GetByUsername(username)
	if err != nil {
		uc.logger.Error("Failed to look up user %s: %v", username, err)
		return nil, fmt.Errorf("failed to process login")
	}
	if user == nil || user.Password != password {
		return nil, fmt.Errorf("invalid credentials")
	}
	return user, nil
}

func (uc *authUseCase) Register(username, password string, isAdmin bool) (*entity.User, error) {
	existing, err := uc.users.GetByUsername(username)
	if err != nil {
		uc.logger.Error("Failed to look up user %s: %v", username, err)
		return nil, fmt.Errorf("failed to process registration")
	}
	if existing != nil {
		return nil, fmt.Errorf("username already taken")
	}

	user := &entity.User{
		Username: username,
		Password: password,
		IsAdmin:  isAdmin,
	}
	created, err := uc.users.Create(user)
	if err != nil {
		uc.logger.Error("Failed to create user %s: %v", username, err)
		return nil, fmt.Errorf("failed to create user")
	}
	return created, nil
}

func (uc *authUseCase) GetUser(id int) (*entity.User, error) {
	return uc.users.GetByID(id)
}
