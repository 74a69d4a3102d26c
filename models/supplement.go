package models

import (
	"time"
)

// Supplement is a paid add-on (GPS, child seat...) priced per rental day,
// optionally restricted to a subset of vehicles via VehicleSupplement rows.
type Supplement struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Description string  `json:"description"`
	Active      bool    `gorm:"default:true" json:"active"`

	// Materialized from the association table, never stored on this row.
	VehicleIDs []uint `gorm:"-" json:"vehicle_ids"`

	CreatedAt time.Time `json:"created_at"`
}

type VehicleSupplement struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	VehicleID    uint `gorm:"not null;uniqueIndex:idx_vehicle_supplement" json:"vehicle_id"`
	SupplementID uint `gorm:"not null;uniqueIndex:idx_vehicle_supplement" json:"supplement_id"`
}
