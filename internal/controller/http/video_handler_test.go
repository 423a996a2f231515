package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"zyro-visual/internal/entity"
	"zyro-visual/internal/repo"
	"zyro-visual/internal/usecase"
	"zyro-visual/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockVideoContentUseCase is a mock implementation of VideoContentUseCase
type MockVideoContentUseCase struct {
	mock.Mock
}

func (m *MockVideoContentUseCase) ListVideoContent() ([]*entity.VideoContent, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.VideoContent), args.Error(1)
}

func (m *MockVideoContentUseCase) GetVideoContent(id int) (*entity.VideoContent, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VideoContent), args.Error(1)
}

func (m *MockVideoContentUseCase) CreateVideoContent(content *entity.VideoContent) (*entity.VideoContent, error) {
	args := m.Called(content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VideoContent), args.Error(1)
}

func (m *MockVideoContentUseCase) UpdateVideoContent(id int, patch repo.VideoContentPatch) (*entity.VideoContent, error) {
	args := m.Called(id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VideoContent), args.Error(1)
}

func (m *MockVideoContentUseCase) DeleteVideoContent(id int) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

var _ usecase.VideoContentUseCase = (*MockVideoContentUseCase)(nil)

func TestCreateVideoContent_InvalidSection(t *testing.T) {
	mockUseCase := new(MockVideoContentUseCase)
	logger := logger.New()
	handler := NewVideoContentHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.POST("/video-content", handler.CreateVideoContent)

	body := `{"section":"sidebar","title":"Showreel","videoUrl":"https://youtube.com/watch?v=reel"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/video-content", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "CreateVideoContent")
}

func TestCreateVideoContent_BeforeAfterWithoutPairIsAccepted(t *testing.T) {
	mockUseCase := new(MockVideoContentUseCase)
	logger := logger.New()
	handler := NewVideoContentHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.POST("/video-content", handler.CreateVideoContent)

	created := &entity.VideoContent{
		ID:             1,
		Section:        entity.SectionBeforeAfter,
		Title:          "Raw vs Final",
		BeforeVideoURL: "https://youtube.com/watch?v=before",
	}
	mockUseCase.On("CreateVideoContent", mock.AnythingOfType("*entity.VideoContent")).Return(created, nil)

	// Only the before side is set. The pairing is a concern of the admin
	// form, not this endpoint.
	body := `{"section":"before_after","title":"Raw vs Final","beforeVideoUrl":"https://youtube.com/watch?v=before"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/video-content", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUpdateVideoContent_TogglesActive(t *testing.T) {
	mockUseCase := new(MockVideoContentUseCase)
	logger := logger.New()
	handler := NewVideoContentHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.PATCH("/video-content/:id", handler.UpdateVideoContent)

	active := false
	expected := repo.VideoContentPatch{Active: &active}
	updated := &entity.VideoContent{ID: 1, Section: entity.SectionHero, Title: "Showreel", Active: false}
	mockUseCase.On("UpdateVideoContent", 1, expected).Return(updated, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/video-content/1", bytes.NewBufferString(`{"active":false}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, false, response["active"])

	mockUseCase.AssertExpectations(t)
}

func TestDeleteVideoContent_NotFound(t *testing.T) {
	mockUseCase := new(MockVideoContentUseCase)
	logger := logger.New()
	handler := NewVideoContentHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.DELETE("/video-content/:id", handler.DeleteVideoContent)

	mockUseCase.On("DeleteVideoContent", 42).Return(false, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/video-content/42", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}
