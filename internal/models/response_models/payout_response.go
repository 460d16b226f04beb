package response_models

import "time"

type TierBreakdown struct {
	Count    int     `json:"count"`
	FeeTotal float64 `json:"fee_total"`
}

// FeeBreakdown summarizes service fees per tier across a booking set.
type FeeBreakdown struct {
	Below TierBreakdown `json:"below"`
	Above TierBreakdown `json:"above"`
}

// UnpaidEarnings is the read-time fold over a host's confirmed,
// not-yet-paid-out bookings. Recomputed on every call, never cached.
type UnpaidEarnings struct {
	HostID        string       `json:"host_id"`
	TotalEarnings float64      `json:"total_earnings"`
	BookingIDs    []string     `json:"booking_ids"`
	BookingCount  int          `json:"booking_count"`
	Breakdown     FeeBreakdown `json:"service_fee_breakdown"`
}

type PayoutResult struct {
	TransactionID   string    `json:"transaction_id"`
	HostID          string    `json:"host_id"`
	Amount          float64   `json:"amount"`
	ComputedTotal   float64   `json:"computed_total"`
	ReferenceNumber string    `json:"reference_number"`
	BookingIDs      []string  `json:"booking_ids"`
	BookingCount    int       `json:"booking_count"`
	ProcessedAt     time.Time `json:"processed_at"`
}

type PayoutMethodResponse struct {
	ID           string `json:"id"`
	AccountName  string `json:"account_name"`
	MobileNumber string `json:"mobile_number"`
	IsPrimary    bool   `json:"is_primary"`
	Verified     bool   `json:"verified"`
}
