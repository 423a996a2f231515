package usecase

import (
	"testing"

	"zyro-visual/internal/entity"
	"zyro-visual/internal/repo/memory"
	"zyro-visual/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestLogin_Success(t *testing.T) {
	storage := memory.NewStorage()
	uc := NewAuthUseCase(storage.Users, logger.New())

	_, err := storage.Users.Create(&entity.User{Username: "shakti", Password: "shivit721", IsAdmin: true})
	assert.NoError(t, err)

	user, err := uc.Login("shakti", "shivit721")
	assert.NoError(t, err)
	assert.Equal(t, "shakti", user.Username)
	assert.True(t, user.IsAdmin)
}

func TestLogin_WrongPassword(t *testing.T) {
	storage := memory.NewStorage()
	uc := NewAuthUseCase(storage.Users, logger.New())

	storage.Users.Create(&entity.User{Username: "shakti", Password: "shivit721"})

	user, err := uc.Login("shakti", "wrong")
	assert.Nil(t, user)
	assert.EqualError(t, err, "invalid credentials")
}

func TestLogin_UnknownUser(t *testing.T) {
	storage := memory.NewStorage()
	uc := NewAuthUseCase(storage.Users, logger.New())

	user, err := uc.Login("nobody", "whatever")
	assert.Nil(t, user)
	assert.EqualError(t, err, "invalid credentials")
}

func TestRegister_Success(t *testing.T) {
	storage := memory.NewStorage()
	uc := NewAuthUseCase(storage.Users, logger.New())

	user, err := uc.Register("editor", "secret123", false)
	assert.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.False(t, user.IsAdmin)

	// The new account can log straight in.
	loggedIn, err := uc.Login("editor", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	storage := memory.NewStorage()
	uc := NewAuthUseCase(storage.Users, logger.New())

	_, err := uc.Register("editor", "secret123", false)
	assert.NoError(t, err)

	user, err := uc.Register("editor", "other456", true)
	assert.Nil(t, user)
	assert.EqualError(t, err, "username already taken")
}
