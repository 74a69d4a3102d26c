package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"carligo-backend/config"
	"carligo-backend/models"
	"carligo-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateVehicleInput defines the expected JSON structure for creating a vehicle
type CreateVehicleInput struct {
	Brand        string  `json:"brand" binding:"required"`
	Model        string  `json:"model" binding:"required"`
	VehicleType  string  `json:"vehicle_type"`
	PricePerDay  float64 `json:"price_per_day" binding:"required,min=0"`
	Caution      float64 `json:"caution" binding:"min=0"`
	City         string  `json:"city"`
	ImageURL     string  `json:"image_url"`
	Gallery      string  `json:"gallery"`
	SeatCount    int     `json:"seat_count"`
	Transmission string  `json:"transmission"`
	FuelType     string  `json:"fuel_type"`
}

// UpdateVehicleInput defines the expected JSON structure for updating a vehicle
type UpdateVehicleInput struct {
	Brand        *string  `json:"brand"`
	Model        *string  `json:"model"`
	VehicleType  *string  `json:"vehicle_type"`
	PricePerDay  *float64 `json:"price_per_day"`
	Caution      *float64 `json:"caution"`
	City         *string  `json:"city"`
	ImageURL     *string  `json:"image_url"`
	Gallery      *string  `json:"gallery"`
	SeatCount    *int     `json:"seat_count"`
	Transmission *string  `json:"transmission"`
	FuelType     *string  `json:"fuel_type"`
}

func parseVehicleID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid vehicle ID format")
		return 0, false
	}
	return uint(id), true
}

// CreateVehicle creates a new fleet vehicle
func CreateVehicle(c *gin.Context) {
	var input CreateVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.VehicleType == "" {
		input.VehicleType = models.VehicleTypeTourisme
	}
	if !models.ValidVehicleType(input.VehicleType) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid vehicle type")
		return
	}

	// image_url must stay one of the gallery entries
	if input.ImageURL != "" && !utils.GalleryContains(input.Gallery, input.ImageURL) {
		utils.RespondWithError(c, http.StatusBadRequest, "Image URL must be one of the gallery entries")
		return
	}

	vehicle := models.Vehicle{
		Brand:        input.Brand,
		Model:        input.Model,
		VehicleType:  input.VehicleType,
		PricePerDay:  input.PricePerDay,
		Caution:      input.Caution,
		City:         input.City,
		ImageURL:     input.ImageURL,
		Gallery:      input.Gallery,
		SeatCount:    input.SeatCount,
		Transmission: input.Transmission,
		FuelType:     input.FuelType,
	}

	if err := config.DB.Create(&vehicle).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create vehicle")
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

// GetVehicles retrieves the fleet, most recent first
func GetVehicles(c *gin.Context) {
	var vehicles []models.Vehicle
	if err := config.DB.Order("created_at desc").Find(&vehicles).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve vehicles")
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

// GetVehicle retrieves a specific vehicle by ID
func GetVehicle(c *gin.Context) {
	vehicleID, ok := parseVehicleID(c)
	if !ok {
		return
	}

	var vehicle models.Vehicle
	if err := config.DB.First(&vehicle, vehicleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Vehicle not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// UpdateVehicle updates an existing vehicle
func UpdateVehicle(c *gin.Context) {
	vehicleID, ok := parseVehicleID(c)
	if !ok {
		return
	}

	var input UpdateVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var vehicle models.Vehicle
	if err := config.DB.First(&vehicle, vehicleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Vehicle not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Brand != nil {
		vehicle.Brand = *input.Brand
	}
	if input.Model != nil {
		vehicle.Model = *input.Model
	}
	if input.VehicleType != nil {
		if !models.ValidVehicleType(*input.VehicleType) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid vehicle type")
			return
		}
		vehicle.VehicleType = *input.VehicleType
	}
	if input.PricePerDay != nil {
		vehicle.PricePerDay = *input.PricePerDay
	}
	if input.Caution != nil {
		vehicle.Caution = *input.Caution
	}
	if input.City != nil {
		vehicle.City = *input.City
	}
	if input.Gallery != nil {
		vehicle.Gallery = *input.Gallery
	}
	if input.ImageURL != nil {
		vehicle.ImageURL = *input.ImageURL
	}
	if input.SeatCount != nil {
		vehicle.SeatCount = *input.SeatCount
	}
	if input.Transmission != nil {
		vehicle.Transmission = *input.Transmission
	}
	if input.FuelType != nil {
		vehicle.FuelType = *input.FuelType
	}

	if vehicle.ImageURL != "" && !utils.GalleryContains(vehicle.Gallery, vehicle.ImageURL) {
		utils.RespondWithError(c, http.StatusBadRequest, "Image URL must be one of the gallery entries")
		return
	}

	if err := config.DB.Save(&vehicle).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update vehicle")
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// DeleteVehicle removes a vehicle. Deletion is refused while bookings
// still reference the vehicle, so booking history stays intact.
func DeleteVehicle(c *gin.Context) {
	vehicleID, ok := parseVehicleID(c)
	if !ok {
		return
	}

	var bookingCount int64
	if err := config.DB.Model(&models.Booking{}).
		Where("vehicle_id = ?", vehicleID).
		Count(&bookingCount).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if bookingCount > 0 {
		utils.RespondWithError(c, http.StatusConflict, "Vehicle is referenced by existing bookings")
		return
	}

	result := config.DB.Delete(&models.Vehicle{}, vehicleID)

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete vehicle")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Vehicle not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted successfully"})
}
