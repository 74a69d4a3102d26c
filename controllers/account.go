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

// CreateAccountInput defines the expected JSON structure for creating an
// admin account
type CreateAccountInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// UpdateAccountInput defines the expected JSON structure for updating an
// admin account
type UpdateAccountInput struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

func parseAccountID(c *gin.Context) (uuid.UUID, bool) {
	accountUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid account ID format")
		return uuid.Nil, false
	}
	return accountUUID, true
}

// GetAccounts retrieves all admin accounts, oldest first, without hashes
func GetAccounts(c *gin.Context) {
	var accounts []models.AdminUser
	if err := config.DB.Order("created_at asc").Find(&accounts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve accounts")
		return
	}

	c.JSON(http.StatusOK, accounts)
}

// CreateAccount creates a new admin account
func CreateAccount(c *gin.Context) {
	var input CreateAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	// Check if email already exists
	var existingAccount models.AdminUser
	result := config.DB.Where("email = ?", input.Email).First(&existingAccount)

	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email already in use")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	account := models.AdminUser{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
	}

	if err := config.DB.Create(&account).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create account")
		return
	}

	c.JSON(http.StatusCreated, account)
}

// UpdateAccount updates an account's name and/or password. A new
// password is rehashed at the same cost factor as account creation.
func UpdateAccount(c *gin.Context) {
	accountUUID, ok := parseAccountID(c)
	if !ok {
		return
	}

	var input UpdateAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var account models.AdminUser
	if err := config.DB.First(&account, "id = ?", accountUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Account not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		account.Name = *input.Name
	}
	if input.Password != nil {
		hash, err := utils.HashPassword(*input.Password)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to hash password")
			return
		}
		account.PasswordHash = hash
	}

	if err := config.DB.Save(&account).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update account")
		return
	}

	c.JSON(http.StatusOK, account)
}

// DeleteAccount removes an admin account. Deleting your own account is a
// distinct business-rule rejection, not a generic failure.
func DeleteAccount(c *gin.Context) {
	accountUUID, ok := parseAccountID(c)
	if !ok {
		return
	}

	callerID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	if callerID == accountUUID.String() {
		utils.RespondWithError(c, http.StatusForbidden, "Cannot delete your own account")
		return
	}

	result := config.DB.Delete(&models.AdminUser{}, "id = ?", accountUUID)

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete account")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Account not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}
