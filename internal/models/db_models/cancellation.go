package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Cancellation is created exactly once per cancelled booking. Later
// writes only flip RefundStatus to processed and attach the reference.
type Cancellation struct {
	BaseModel
	BookingID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	GuestID   uuid.UUID `gorm:"type:uuid;index"`
	HostID    uuid.UUID `gorm:"type:uuid;index"`

	// Snapshot of the booking at cancellation time.
	VehicleTitle string `gorm:"size:160"`
	GuestName    string `gorm:"size:120"`
	HostName     string `gorm:"size:120"`
	StartDate    time.Time

	OriginalAmount     float64
	RefundAmount       float64
	RefundPercentage   float64
	HoursBeforeBooking int
	Reason             string `gorm:"type:text"`
	CancelledBy        string `gorm:"size:20"`

	RefundStatus      RefundStatus `gorm:"size:20;index"`
	RefundReference   string       `gorm:"size:80"`
	RefundMethod      string       `gorm:"size:40"`
	RefundProcessedAt *time.Time
	ProcessedBy       *uuid.UUID `gorm:"type:uuid"`
}
