package services

import (
	"math"
	"time"
)

const (
	TierAbove = "above"
	TierBelow = "below"
)

// FeeSettings is the fee schedule read from platform settings.
type FeeSettings struct {
	Threshold    float64
	AbovePercent float64
	BelowPercent float64
}

// DefaultFeeSettings applies when no settings row exists yet.
var DefaultFeeSettings = FeeSettings{
	Threshold:    2000,
	AbovePercent: 5,
	BelowPercent: 3,
}

type ServiceFeeQuote struct {
	Percentage float64
	Tier       string
	Amount     float64
}

// ComputeServiceFee picks the tier from the booking price. A price
// exactly equal to the threshold stays on the below tier.
func ComputeServiceFee(totalPrice float64, s FeeSettings) ServiceFeeQuote {
	tier := TierBelow
	pct := s.BelowPercent
	if totalPrice > s.Threshold {
		tier = TierAbove
		pct = s.AbovePercent
	}
	return ServiceFeeQuote{
		Percentage: pct,
		Tier:       tier,
		Amount:     totalPrice * pct / 100,
	}
}

type RefundQuote struct {
	Percentage  float64
	Amount      float64
	PolicyLabel string
	// HoursUntilBooking is floored for display; the tier decision uses
	// the fractional value.
	HoursUntilBooking int
}

// ComputeRefund maps time-to-booking onto the refund schedule:
// 24 hours or more ahead refunds everything, 10 to 24 hours refunds
// half, anything closer (or already started) refunds nothing. Both
// boundaries are inclusive on the upper tier.
func ComputeRefund(now, startDate time.Time, totalPrice float64) RefundQuote {
	hours := startDate.Sub(now).Hours()

	var pct float64
	var label string
	switch {
	case hours >= 24:
		pct = 100
		label = "Full refund"
	case hours >= 10:
		pct = 50
		label = "Partial refund (50%)"
	default:
		pct = 0
		label = "No refund"
	}

	return RefundQuote{
		Percentage:        pct,
		Amount:            totalPrice * pct / 100,
		PolicyLabel:       label,
		HoursUntilBooking: int(math.Floor(hours)),
	}
}
