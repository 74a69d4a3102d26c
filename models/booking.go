package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingStatusConfirmed = "CONFIRME"
	BookingStatusCancelled = "ANNULE"
	BookingStatusPending   = "EN_ATTENTE"
)

// Booking references a vehicle and a client but owns neither; bookings
// are created by the storefront and only mutated here.
type Booking struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	VehicleID uint      `gorm:"index;not null" json:"vehicle_id"`
	ClientID  uuid.UUID `gorm:"type:uuid;index;not null" json:"client_id"`

	StartDate time.Time `gorm:"column:from;not null" json:"from"`
	EndDate   time.Time `gorm:"column:to;not null" json:"to"`

	Status           string  `gorm:"type:varchar(20);default:'EN_ATTENTE'" json:"status"`
	InvoiceReference string  `json:"invoice_reference"`
	City             string  `json:"city"`
	AmountTotal      float64 `gorm:"type:decimal(10,2);default:0.0" json:"amount_total"`

	Vehicle *Vehicle `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	Client  *Client  `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}

// ValidBookingStatus reports whether s is one of the allowed statuses.
func ValidBookingStatus(s string) bool {
	return s == BookingStatusConfirmed || s == BookingStatusCancelled || s == BookingStatusPending
}
