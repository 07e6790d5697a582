package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BarberSchedule holds one weekday (0=Sunday) of a barber's opening hours.
type BarberSchedule struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BarberID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_schedule_barber_weekday" json:"barber_id"`

	Weekday int `gorm:"not null;uniqueIndex:idx_schedule_barber_weekday" json:"weekday"`

	Start  string `gorm:"size:5" json:"start"`
	End    string `gorm:"size:5" json:"end"`
	Active bool   `gorm:"not null" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *BarberSchedule) BeforeCreate(tx *gorm.DB) error {
	ensureID(&s.ID)
	return nil
}
