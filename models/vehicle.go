package models

import (
	"time"
)

const (
	VehicleTypeTourisme   = "tourisme"
	VehicleTypeUtilitaire = "utilitaire"
	VehicleTypeOther      = "other"
)

type Vehicle struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Brand       string `gorm:"not null" json:"brand"`
	Model       string `gorm:"not null" json:"model"`
	VehicleType string `gorm:"type:varchar(20);default:'tourisme'" json:"vehicle_type"`

	PricePerDay float64 `gorm:"type:decimal(10,2);not null" json:"price_per_day"`
	Caution     float64 `gorm:"type:decimal(10,2);default:0.0" json:"caution"`

	City     string `json:"city"`
	ImageURL string `json:"image_url"`
	// Gallery is stored as a comma-delimited list of image URLs.
	// ImageURL must be empty or one of the gallery entries.
	Gallery string `gorm:"type:text" json:"gallery"`

	SeatCount    int    `json:"seat_count"`
	Transmission string `json:"transmission"`
	FuelType     string `json:"fuel_type"`

	CreatedAt time.Time `json:"created_at"`
}

// ValidVehicleType reports whether t is one of the allowed vehicle types.
func ValidVehicleType(t string) bool {
	return t == VehicleTypeTourisme || t == VehicleTypeUtilitaire || t == VehicleTypeOther
}
