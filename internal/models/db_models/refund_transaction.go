package db_models

import (
	"time"

	"github.com/google/uuid"
)

// RefundTransaction records a completed refund. Written once at
// settlement, never mutated afterward.
type RefundTransaction struct {
	BaseModel
	CancellationID uuid.UUID `gorm:"type:uuid;index"`
	BookingID      uuid.UUID `gorm:"type:uuid;index"`
	GuestID        uuid.UUID `gorm:"type:uuid;index"`

	Amount          float64
	Percentage      float64
	ReferenceNumber string `gorm:"size:80"`
	Method          string `gorm:"size:40"`
	Notes           string `gorm:"type:text"`

	ProcessedBy uuid.UUID `gorm:"type:uuid"`
	ProcessedAt time.Time
}
