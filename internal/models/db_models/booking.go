package db_models

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingOngoing   BookingStatus = "ongoing"   // derived, never stored
	BookingCompleted BookingStatus = "completed" // derived, never stored
	BookingCancelled BookingStatus = "cancelled"
)

type RefundStatus string

const (
	RefundNotApplicable RefundStatus = "not_applicable"
	RefundPending       RefundStatus = "pending"
	RefundProcessed     RefundStatus = "processed"
)

// ServiceFeeSnapshot is the fee schedule applied at confirmation time.
// It is never recomputed, so historical bookings keep the percentages
// that were in effect when the host confirmed.
type ServiceFeeSnapshot struct {
	Percentage float64
	Tier       string `gorm:"size:10"`
	Amount     float64
}

type Booking struct {
	BaseModel
	GuestID   uuid.UUID `gorm:"type:uuid;index"`
	HostID    uuid.UUID `gorm:"type:uuid;index"`
	VehicleID uuid.UUID `gorm:"type:uuid;index"`

	// Snapshots for display, copied at booking time.
	VehicleTitle string `gorm:"size:160"`
	GuestName    string `gorm:"size:120"`
	HostName     string `gorm:"size:120"`

	StartDate time.Time `gorm:"index"`
	EndDate   time.Time

	TotalPrice   float64
	ServiceFee   ServiceFeeSnapshot `gorm:"embedded;embeddedPrefix:service_fee_"`
	HostEarnings float64

	Status BookingStatus `gorm:"size:20;index"`

	// Payout bookkeeping. A set PaidOutAt means earnings were disbursed.
	PaidOutAt            *time.Time `gorm:"index"`
	PaidOutTransactionID *uuid.UUID `gorm:"type:uuid"`

	// Cancellation bookkeeping.
	CancelledAt        *time.Time
	CancelledBy        string `gorm:"size:20"`
	CancellationReason string `gorm:"type:text"`
	RefundAmount       float64
	RefundPercentage   float64
	RefundStatus       RefundStatus `gorm:"size:20"`

	Guest   User    `gorm:"foreignKey:GuestID"`
	Host    User    `gorm:"foreignKey:HostID"`
	Vehicle Vehicle `gorm:"foreignKey:VehicleID"`
}

// DerivedStatus folds wall-clock time into the stored status. Confirmed
// bookings read as ongoing once started and completed once ended; the
// derived states are never written back.
func (b *Booking) DerivedStatus(now time.Time) BookingStatus {
	if b.Status != BookingConfirmed {
		return b.Status
	}
	if !now.Before(b.EndDate) {
		return BookingCompleted
	}
	if !now.Before(b.StartDate) {
		return BookingOngoing
	}
	return BookingConfirmed
}
