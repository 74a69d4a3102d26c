package controllers

import (
	"errors"
	"net/http"

	"carligo-backend/config"
	"carligo-backend/models"
	"carligo-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateClientInput defines the expected JSON structure for creating a client
type CreateClientInput struct {
	Firstname   string `json:"firstname" binding:"required"`
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phone_number"`
	Mail        string `json:"mail" binding:"required,email"`
}

// UpdateClientInput defines the expected JSON structure for updating a client
type UpdateClientInput struct {
	Firstname   *string `json:"firstname"`
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phone_number"`
	Mail        *string `json:"mail"`
}

// ClientWithBookingCount decorates a client with how many bookings
// reference it. Read-time convenience for the roster screen.
type ClientWithBookingCount struct {
	models.Client
	BookingsCount int64 `json:"bookings_count"`
}

func parseClientID(c *gin.Context) (uuid.UUID, bool) {
	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return uuid.Nil, false
	}
	return clientUUID, true
}

// CreateClient creates a new client record
func CreateClient(c *gin.Context) {
	var input CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.PhoneNumber != "" && !utils.ValidatePhone(input.PhoneNumber) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	client := models.Client{
		Firstname:   input.Firstname,
		Name:        input.Name,
		PhoneNumber: input.PhoneNumber,
		Mail:        input.Mail,
	}

	if err := config.DB.Create(&client).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create client")
		return
	}

	c.JSON(http.StatusCreated, client)
}

// GetClients retrieves the client roster, most recent first, each with
// its booking count
func GetClients(c *gin.Context) {
	var clients []models.Client
	if err := config.DB.Order("created_at desc").Find(&clients).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}

	type countRow struct {
		ClientID uuid.UUID
		Count    int64
	}
	var counts []countRow
	if err := config.DB.Model(&models.Booking{}).
		Select("client_id, COUNT(*) as count").
		Group("client_id").
		Scan(&counts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}

	byClient := make(map[uuid.UUID]int64, len(counts))
	for _, row := range counts {
		byClient[row.ClientID] = row.Count
	}

	response := make([]ClientWithBookingCount, 0, len(clients))
	for _, client := range clients {
		response = append(response, ClientWithBookingCount{
			Client:        client,
			BookingsCount: byClient[client.ID],
		})
	}

	c.JSON(http.StatusOK, response)
}

// GetClient retrieves a client together with its bookings, vehicle-joined,
// most recent rental first
func GetClient(c *gin.Context) {
	clientUUID, ok := parseClientID(c)
	if !ok {
		return
	}

	var client models.Client
	if err := config.DB.First(&client, "id = ?", clientUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var bookings []models.Booking
	if err := config.DB.Preload("Vehicle").
		Where("client_id = ?", clientUUID).
		Order("\"from\" desc").
		Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"client":   client,
		"bookings": bookings,
	})
}

// UpdateClient updates an existing client
func UpdateClient(c *gin.Context) {
	clientUUID, ok := parseClientID(c)
	if !ok {
		return
	}

	var input UpdateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var client models.Client
	if err := config.DB.First(&client, "id = ?", clientUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Firstname != nil {
		client.Firstname = *input.Firstname
	}
	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.PhoneNumber != nil {
		if *input.PhoneNumber != "" && !utils.ValidatePhone(*input.PhoneNumber) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		client.PhoneNumber = *input.PhoneNumber
	}
	if input.Mail != nil {
		client.Mail = *input.Mail
	}

	if err := config.DB.Save(&client).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update client")
		return
	}

	c.JSON(http.StatusOK, client)
}

// DeleteClient removes a client. Refused while bookings still reference
// the client.
func DeleteClient(c *gin.Context) {
	clientUUID, ok := parseClientID(c)
	if !ok {
		return
	}

	var bookingCount int64
	if err := config.DB.Model(&models.Booking{}).
		Where("client_id = ?", clientUUID).
		Count(&bookingCount).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if bookingCount > 0 {
		utils.RespondWithError(c, http.StatusConflict, "Client is referenced by existing bookings")
		return
	}

	result := config.DB.Delete(&models.Client{}, "id = ?", clientUUID)

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete client")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}
