package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking is one client's reservation of a barber's time for a service.
// Date is the slot start, always stored in UTC.
type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	ClientID uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id"`
	Client   User      `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"client"`

	BarberID uuid.UUID `gorm:"type:uuid;not null;index" json:"barber_id"`
	Barber   User      `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"barber"`

	ServiceID uuid.UUID `gorm:"type:uuid;not null;index" json:"service_id"`
	Service   Service   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`

	Date   time.Time `gorm:"not null;index" json:"date"`
	Status string    `gorm:"size:20;not null;index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	ensureID(&b.ID)
	return nil
}
