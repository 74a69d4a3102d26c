package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"carligo-backend/config"
	"carligo-backend/models"
	"carligo-backend/services"
	"carligo-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateSupplementInput defines the expected JSON structure for creating
// a supplement. vehicle_ids, when given, becomes the initial association
// set right after the row gains its generated id.
type CreateSupplementInput struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,min=0"`
	Description string  `json:"description"`
	Active      *bool   `json:"active"`
	VehicleIDs  []uint  `json:"vehicle_ids"`
}

// UpdateSupplementInput defines the expected JSON structure for updating
// a supplement. A present vehicle_ids (even empty) replaces the
// association set; an absent one leaves it untouched.
type UpdateSupplementInput struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Active      *bool    `json:"active"`
	VehicleIDs  *[]uint  `json:"vehicle_ids"`
}

func parseSupplementID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid supplement ID format")
		return 0, false
	}
	return uint(id), true
}

// CreateSupplement creates a paid add-on, optionally restricted to a set
// of vehicles
func CreateSupplement(c *gin.Context) {
	var input CreateSupplementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	supplement := models.Supplement{
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		Active:      true,
	}
	if input.Active != nil {
		supplement.Active = *input.Active
	}

	if err := config.DB.Create(&supplement).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create supplement")
		return
	}

	svc := services.SupplementService{DB: config.DB}
	if len(input.VehicleIDs) > 0 {
		if err := svc.SyncVehicles(supplement.ID, input.VehicleIDs); err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to link vehicles")
			return
		}
		supplement.VehicleIDs = input.VehicleIDs
	} else {
		supplement.VehicleIDs = []uint{}
	}

	c.JSON(http.StatusCreated, supplement)
}

// GetSupplements retrieves all supplements, each enriched with the ids of
// the vehicles it applies to
func GetSupplements(c *gin.Context) {
	var supplements []models.Supplement
	if err := config.DB.Order("id").Find(&supplements).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve supplements")
		return
	}

	svc := services.SupplementService{DB: config.DB}
	if err := svc.AttachVehicleIDs(supplements); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve supplements")
		return
	}

	c.JSON(http.StatusOK, supplements)
}

// UpdateSupplement updates a supplement and, when vehicle_ids is present,
// replaces its vehicle associations
func UpdateSupplement(c *gin.Context) {
	supplementID, ok := parseSupplementID(c)
	if !ok {
		return
	}

	var input UpdateSupplementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var supplement models.Supplement
	if err := config.DB.First(&supplement, supplementID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Supplement not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		supplement.Name = *input.Name
	}
	if input.Price != nil {
		supplement.Price = *input.Price
	}
	if input.Description != nil {
		supplement.Description = *input.Description
	}
	if input.Active != nil {
		supplement.Active = *input.Active
	}

	if err := config.DB.Save(&supplement).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update supplement")
		return
	}

	svc := services.SupplementService{DB: config.DB}
	if input.VehicleIDs != nil {
		if err := svc.SyncVehicles(supplement.ID, *input.VehicleIDs); err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to sync vehicles")
			return
		}
	}

	ids, err := svc.VehicleIDs(supplement.ID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	supplement.VehicleIDs = ids

	c.JSON(http.StatusOK, supplement)
}

// DeleteSupplement removes a supplement and its vehicle associations
func DeleteSupplement(c *gin.Context) {
	supplementID, ok := parseSupplementID(c)
	if !ok {
		return
	}

	// Associations first, the supplement owns them.
	if err := config.DB.Where("supplement_id = ?", supplementID).
		Delete(&models.VehicleSupplement{}).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete supplement")
		return
	}

	result := config.DB.Delete(&models.Supplement{}, supplementID)

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete supplement")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Supplement not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Supplement deleted successfully"})
}
