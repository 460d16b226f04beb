package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PayoutTransaction records one settled payout batch. Written once,
// never mutated. Amount is the operator-entered figure; ComputedTotal
// is the sum of host earnings at settlement time so discrepancies stay
// visible.
type PayoutTransaction struct {
	BaseModel
	HostID   uuid.UUID `gorm:"type:uuid;index"`
	MethodID uuid.UUID `gorm:"type:uuid"`

	// Method snapshot.
	AccountName  string `gorm:"size:120"`
	MobileNumber string `gorm:"size:11"`

	Amount          float64
	ComputedTotal   float64
	ReferenceNumber string `gorm:"size:80"`
	Notes           string `gorm:"type:text"`

	BookingIDs   datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	BookingCount int

	// Per-tier service-fee breakdown at settlement time.
	FeeBreakdown datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	ProcessedBy uuid.UUID `gorm:"type:uuid"`
	ProcessedAt time.Time
}
