package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"zyro-visual/internal/entity"
	"zyro-visual/internal/usecase"
	"zyro-visual/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBookingUseCase is a mock implementation of BookingUseCase
type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) CreateBooking(booking *entity.Booking) (*entity.Booking, error) {
	args := m.Called(booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingUseCase) ListBookings() ([]*entity.Booking, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *MockBookingUseCase) GetBooking(id int) (*entity.Booking, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingUseCase) UpdateBookingStatus(id int, status entity.BookingStatus) (*entity.Booking, error) {
	args := m.Called(id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

var _ usecase.BookingUseCase = (*MockBookingUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestCreateBooking_Success(t *testing.T) {
	mockUseCase := new(MockBookingUseCase)
	logger := logger.New()
	handler := NewBookingHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.POST("/bookings", handler.CreateBooking)

	created := &entity.Booking{
		ID:             1,
		Name:           "Alex",
		Email:          "alex@example.com",
		Channel:        "AlexPlays",
		ServiceType:    "montage",
		ProjectDetails: "10 minute ranked montage with VFX",
		BudgetRange:    "$200-$500",
		Status:         entity.BookingPending,
	}
	mockUseCase.On("CreateBooking", mock.AnythingOfType("*entity.Booking")).Return(created, nil)

	body := `{"name":"Alex","email":"alex@example.com","channel":"AlexPlays","serviceType":"montage","projectDetails":"10 minute ranked montage with VFX","budgetRange":"$200-$500"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/bookings", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Booking created successfully", response["message"])
	booking := response["booking"].(map[string]interface{})
	assert.Equal(t, float64(1), booking["id"])
	assert.Equal(t, "pending", booking["status"])

	mockUseCase.AssertExpectations(t)
}

func TestCreateBooking_ValidationError(t *testing.T) {
	mockUseCase := new(MockBookingUseCase)
	logger := logger.New()
	handler := NewBookingHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.POST("/bookings", handler.CreateBooking)

	body := `{"name":"A","email":"not-an-email","channel":"AlexPlays","serviceType":"montage","projectDetails":"too short","budgetRange":"$200"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/bookings", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Validation error", response["message"])
	assert.NotEmpty(t, response["errors"])

	mockUseCase.AssertNotCalled(t, "CreateBooking")
}

func TestListBookings_Success(t *testing.T) {
	mockUseCase := new(MockBookingUseCase)
	logger := logger.New()
	handler := NewBookingHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.GET("/bookings", handler.ListBookings)

	mockBookings := []*entity.Booking{
		{ID: 1, Name: "Alex", Status: entity.BookingPending},
		{ID: 2, Name: "Sam", Status: entity.BookingApproved},
	}
	mockUseCase.On("ListBookings").Return(mockBookings, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/bookings", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response, 2)

	mockUseCase.AssertExpectations(t)
}

func TestGetBooking_NotFound(t *testing.T) {
	mockUseCase := new(MockBookingUseCase)
	logger := logger.New()
	handler := NewBookingHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.GET("/bookings/:id", handler.GetBooking)

	mockUseCase.On("GetBooking", 99).Return(nil, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/bookings/99", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestGetBooking_InvalidID(t *testing.T) {
	mockUseCase := new(MockBookingUseCase)
	logger := logger.New()
	handler := NewBookingHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.GET("/bookings/:id", handler.GetBooking)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/bookings/abc", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "GetBooking")
}

func TestUpdateBookingStatus_Success(t *testing.T) {
	mockUseCase := new(MockBookingUseCase)
	logger := logger.New()
	handler := NewBookingHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.PATCH("/bookings/:id/status", handler.UpdateBookingStatus)

	updated := &entity.Booking{ID: 1, Name: "Alex", Status: entity.BookingApproved}
	mockUseCase.On("UpdateBookingStatus", 1, entity.BookingApproved).Return(updated, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/bookings/1/status", bytes.NewBufferString(`{"status":"approved"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "approved", response["status"])

	mockUseCase.AssertExpectations(t)
}

func TestUpdateBookingStatus_InvalidValue(t *testing.T) {
	mockUseCase := new(MockBookingUseCase)
	logger := logger.New()
	handler := NewBookingHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.PATCH("/bookings/:id/status", handler.UpdateBookingStatus)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/bookings/1/status", bytes.NewBufferString(`{"status":"archived"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "UpdateBookingStatus")
}

func TestUpdateBookingStatus_NotFound(t *testing.T) {
	mockUseCase := new(MockBookingUseCase)
	logger := logger.New()
	handler := NewBookingHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.PATCH("/bookings/:id/status", handler.UpdateBookingStatus)

	mockUseCase.On("UpdateBookingStatus", 99, entity.BookingCancelled).Return(nil, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/bookings/99/status", bytes.NewBufferString(`{"status":"cancelled"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestListBookings_Error(t *testing.T) {
	mockUseCase := new(MockBookingUseCase)
	logger := logger.New()
	handler := NewBookingHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.GET("/bookings", handler.ListBookings)

	mockUseCase.On("ListBookings").Return(nil, errors.New("db down"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/bookings", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	mockUseCase.AssertExpectations(t)
}
