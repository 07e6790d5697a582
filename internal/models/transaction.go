package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionPaid = "PAID"
	PaymentCash     = "CASH"
)

// Transaction is the financial record of a completed booking.
// At most one exists per booking (unique booking_id).
type Transaction struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	BookingID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"booking_id"`
	Booking   *Booking  `gorm:"foreignKey:BookingID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"booking,omitempty"`
	BarberID  uuid.UUID `gorm:"type:uuid;not null;index" json:"barber_id"`

	Amount       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	BarberAmount decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"barber_amount"`
	ShopAmount   decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"shop_amount"`

	PaymentMethod string `gorm:"size:20;not null" json:"payment_method"`
	Status        string `gorm:"size:20;not null;index" json:"status"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	ensureID(&t.ID)
	return nil
}
