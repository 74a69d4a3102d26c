// Bootstrap the first back-office admin account.
// Usage: go run ./cmd/create-admin [name] [email] [password]
// Email and password fall back to ADMIN_EMAIL / ADMIN_PASSWORD.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"carligo-backend/config"
	"carligo-backend/models"
	"carligo-backend/utils"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()
	config.DB.AutoMigrate(&models.AdminUser{})

	name := "Admin"
	if len(os.Args) > 1 {
		name = os.Args[1]
	}
	email := os.Getenv("ADMIN_EMAIL")
	if len(os.Args) > 2 {
		email = os.Args[2]
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if len(os.Args) > 3 {
		password = os.Args[3]
	}

	if email == "" || password == "" {
		log.Fatal("Usage: create-admin [name] [email] [password]")
	}

	var existing models.AdminUser
	err := config.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Fatalf("An account with email %s already exists", email)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Database error: %v", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	account := models.AdminUser{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := config.DB.Create(&account).Error; err != nil {
		log.Fatalf("Failed to create account: %v", err)
	}

	fmt.Printf("Account created:\n  Name:  %s\n  Email: %s\n  ID:    %s\n",
		account.Name, account.Email, account.ID)
}
