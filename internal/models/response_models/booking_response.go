package response_models

import "time"

type BookingResponse struct {
	ID           string    `json:"id"`
	VehicleID    string    `json:"vehicle_id"`
	VehicleTitle string    `json:"vehicle_title"`
	GuestName    string    `json:"guest_name"`
	HostName     string    `json:"host_name"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	TotalPrice   float64   `json:"total_price"`
	Status       string    `json:"status"` // derived at read time

	ServiceFeePercentage float64 `json:"service_fee_percentage,omitempty"`
	ServiceFeeTier       string  `json:"service_fee_tier,omitempty"`
	ServiceFeeAmount     float64 `json:"service_fee_amount,omitempty"`
	HostEarnings         float64 `json:"host_earnings,omitempty"`

	PaidOut          bool    `json:"paid_out"`
	RefundStatus     string  `json:"refund_status,omitempty"`
	RefundAmount     float64 `json:"refund_amount,omitempty"`
	RefundPercentage float64 `json:"refund_percentage,omitempty"`
}

type RefundQuoteResponse struct {
	Percentage        float64 `json:"percentage"`
	Amount            float64 `json:"amount"`
	AmountDisplay     string  `json:"amount_display"`
	PolicyLabel       string  `json:"policy_label"`
	HoursUntilBooking int     `json:"hours_until_booking"`
}
