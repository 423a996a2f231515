package http

import (
	"net/http"

	"zyro-visual/internal/entity"
	"zyro-visual/internal/usecase"
	"zyro-visual/pkg/logger"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
	logger         *logger.Logger
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase, logger *logger.Logger) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
		logger:         logger,
	}
}

type CreateBookingRequest struct {
	Name           string `json:"name" binding:"required,min=2"`
	Email          string `json:"email" binding:"required,email"`
	Channel        string `json:"channel" binding:"required"`
	ServiceType    string `json:"serviceType" binding:"required"`
	ProjectDetails string `json:"projectDetails" binding:"required,min=10"`
	BudgetRange    string `json:"budgetRange" binding:"required"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved completed rejected cancelled"`
}

// CreateBooking godoc
// @Summary      Submit a booking
// @Description  Public booking form intake; new bookings start as pending
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request body CreateBookingRequest true "Booking details"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	booking, err := h.bookingUseCase.CreateBooking(&entity.Booking{
		Name:           req.Name,
		Email:          req.Email,
		Channel:        req.Channel,
		ServiceType:    req.ServiceType,
		ProjectDetails: req.ProjectDetails,
		BudgetRange:    req.BudgetRange,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create booking"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully",
		"booking": booking,
	})
}

// ListBookings godoc
// @Summary      List bookings
// @Tags         bookings
// @Produce      json
// @Success      200  {array}   entity.Booking
// @Failure      401  {object}  map[string]string
// @Router       /api/bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.bookingUseCase.ListBookings()
	if err != nil {
		h.logger.Error("Failed to list bookings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBooking godoc
// @Summary      Get a booking
// @Tags         bookings
// @Produce      json
// @Param        id path int true "Booking ID"
// @Success      200  {object}  entity.Booking
// @Failure      404  {object}  map[string]string
// @Router       /api/bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	booking, err := h.bookingUseCase.GetBooking(id)
	if err != nil {
		h.logger.Error("Failed to get booking %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch booking"})
		return
	}
	if booking == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
		return
	}

	c.JSON(http.StatusOK, booking)
}

// UpdateBookingStatus godoc
// @Summary      Update booking status
// @Description  Move a booking between the five workflow statuses
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id path int true "Booking ID"
// @Param        request body UpdateBookingStatusRequest true "New status"
// @Success      200  {object}  entity.Booking
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /api/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	booking, err := h.bookingUseCase.UpdateBookingStatus(id, entity.BookingStatus(req.Status))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update booking status"})
		return
	}
	if booking == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
		return
	}

	c.JSON(http.StatusOK, booking)
}
