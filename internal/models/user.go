package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Avatar       string `gorm:"size:255" json:"avatar"`
	Role         string `gorm:"size:20;not null;index" json:"role"`
	Active       bool   `gorm:"not null" json:"active"`

	Schedule []BarberSchedule `gorm:"foreignKey:BarberID" json:"schedule,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	ensureID(&u.ID)
	return nil
}

func (u *User) IsBarber() bool {
	return u.Role == RoleBarber
}
