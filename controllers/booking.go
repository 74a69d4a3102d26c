package controllers

import (
	"errors"
	"net/http"
	"time"

	"carligo-backend/config"
	"carligo-backend/models"
	"carligo-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateBookingInput defines the expected JSON structure for patching a
// booking. Bookings originate from the storefront; this layer only
// mutates them, so there is no create input.
type UpdateBookingInput struct {
	StartDate        *time.Time `json:"from"`
	EndDate          *time.Time `json:"to"`
	Status           *string    `json:"status"`
	InvoiceReference *string    `json:"invoice_reference"`
	City             *string    `json:"city"`
	AmountTotal      *float64   `json:"amount_total"`
}

func parseBookingID(c *gin.Context) (uuid.UUID, bool) {
	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return uuid.Nil, false
	}
	return bookingUUID, true
}

// GetBookings retrieves all bookings with their vehicle and client,
// most recent rental first
func GetBookings(c *gin.Context) {
	var bookings []models.Booking
	if err := config.DB.Preload("Vehicle").Preload("Client").
		Order("\"from\" desc").
		Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBooking retrieves a specific booking with its vehicle and client
func GetBooking(c *gin.Context) {
	bookingUUID, ok := parseBookingID(c)
	if !ok {
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Vehicle").Preload("Client").
		First(&booking, "id = ?", bookingUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}

// UpdateBooking applies a partial patch to an existing booking
func UpdateBooking(c *gin.Context) {
	bookingUUID, ok := parseBookingID(c)
	if !ok {
		return
	}

	var input UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, "id = ?", bookingUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Status != nil {
		if !models.ValidBookingStatus(*input.Status) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking status")
			return
		}
		booking.Status = *input.Status
	}
	if input.StartDate != nil {
		booking.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		booking.EndDate = *input.EndDate
	}
	if input.InvoiceReference != nil {
		booking.InvoiceReference = *input.InvoiceReference
	}
	if input.City != nil {
		booking.City = *input.City
	}
	if input.AmountTotal != nil {
		booking.AmountTotal = *input.AmountTotal
	}

	if err := config.DB.Save(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, booking)
}
