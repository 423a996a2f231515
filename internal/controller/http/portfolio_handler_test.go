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

// MockPortfolioUseCase is a mock implementation of PortfolioUseCase
type MockPortfolioUseCase struct {
	mock.Mock
}

func (m *MockPortfolioUseCase) ListItems() ([]*entity.PortfolioItem, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioUseCase) GetItem(id int) (*entity.PortfolioItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioUseCase) CreateItem(item *entity.PortfolioItem) (*entity.PortfolioItem, error) {
	args := m.Called(item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioUseCase) UpdateItem(id int, patch repo.PortfolioPatch) (*entity.PortfolioItem, error) {
	args := m.Called(id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PortfolioItem), args.Error(1)
}

func (m *MockPortfolioUseCase) DeleteItem(id int) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

var _ usecase.PortfolioUseCase = (*MockPortfolioUseCase)(nil)

func TestCreatePortfolioItem_Success(t *testing.T) {
	mockUseCase := new(MockPortfolioUseCase)
	logger := logger.New()
	handler := NewPortfolioHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.POST("/portfolio", handler.CreatePortfolioItem)

	created := &entity.PortfolioItem{
		ID:       1,
		Title:    "Montage Reel",
		VideoURL: "https://youtube.com/watch?v=abc",
		Category: "montage",
		Featured: true,
	}
	mockUseCase.On("CreateItem", mock.AnythingOfType("*entity.PortfolioItem")).Return(created, nil)

	body := `{"title":"Montage Reel","videoUrl":"https://youtube.com/watch?v=abc","category":"montage","featured":true}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/portfolio", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(1), response["id"])
	assert.Equal(t, "Montage Reel", response["title"])

	mockUseCase.AssertExpectations(t)
}

func TestCreatePortfolioItem_InvalidURL(t *testing.T) {
	mockUseCase := new(MockPortfolioUseCase)
	logger := logger.New()
	handler := NewPortfolioHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.POST("/portfolio", handler.CreatePortfolioItem)

	body := `{"title":"Montage Reel","videoUrl":"not a url"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/portfolio", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Validation error", response["message"])

	mockUseCase.AssertNotCalled(t, "CreateItem")
}

func TestUpdatePortfolioItem_PartialPatch(t *testing.T) {
	mockUseCase := new(MockPortfolioUseCase)
	logger := logger.New()
	handler := NewPortfolioHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.PATCH("/portfolio/:id", handler.UpdatePortfolioItem)

	title := "New Title"
	expected := repo.PortfolioPatch{Title: &title}
	updated := &entity.PortfolioItem{ID: 1, Title: "New Title", Category: "montage"}
	mockUseCase.On("UpdateItem", 1, expected).Return(updated, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/portfolio/1", bytes.NewBufferString(`{"title":"New Title"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "New Title", response["title"])
	assert.Equal(t, "montage", response["category"])

	mockUseCase.AssertExpectations(t)
}

func TestUpdatePortfolioItem_NotFound(t *testing.T) {
	mockUseCase := new(MockPortfolioUseCase)
	logger := logger.New()
	handler := NewPortfolioHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.PATCH("/portfolio/:id", handler.UpdatePortfolioItem)

	mockUseCase.On("UpdateItem", 99, mock.AnythingOfType("repo.PortfolioPatch")).Return(nil, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/portfolio/99", bytes.NewBufferString(`{"title":"New Title"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestDeletePortfolioItem_Success(t *testing.T) {
	mockUseCase := new(MockPortfolioUseCase)
	logger := logger.New()
	handler := NewPortfolioHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.DELETE("/portfolio/:id", handler.DeletePortfolioItem)

	mockUseCase.On("DeleteItem", 1).Return(true, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/portfolio/1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Portfolio item deleted")
	mockUseCase.AssertExpectations(t)
}

func TestDeletePortfolioItem_NotFound(t *testing.T) {
	mockUseCase := new(MockPortfolioUseCase)
	logger := logger.New()
	handler := NewPortfolioHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.DELETE("/portfolio/:id", handler.DeletePortfolioItem)

	mockUseCase.On("DeleteItem", 99).Return(false, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/portfolio/99", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestGetPortfolioItem_Success(t *testing.T) {
	mockUseCase := new(MockPortfolioUseCase)
	logger := logger.New()
	handler := NewPortfolioHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.GET("/portfolio/:id", handler.GetPortfolioItem)

	item := &entity.PortfolioItem{ID: 3, Title: "Trailer", VideoURL: "https://youtube.com/watch?v=t"}
	mockUseCase.On("GetItem", 3).Return(item, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/portfolio/3", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Trailer")
	mockUseCase.AssertExpectations(t)
}

func TestListPortfolio_Empty(t *testing.T) {
	mockUseCase := new(MockPortfolioUseCase)
	logger := logger.New()
	handler := NewPortfolioHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.GET("/portfolio", handler.ListPortfolio)

	mockUseCase.On("ListItems").Return([]*entity.PortfolioItem{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/portfolio", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
	mockUseCase.AssertExpectations(t)
}
