package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Client struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Firstname   string    `gorm:"not null" json:"firstname"`
	Name        string    `gorm:"not null" json:"name"`
	PhoneNumber string    `json:"phone_number"`
	Mail        string    `gorm:"not null" json:"mail"`

	Bookings []Booking `gorm:"foreignKey:ClientID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
