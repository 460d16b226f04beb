package request_models

import "time"

type CreateBookingRequest struct {
	VehicleID string    `json:"vehicle_id" binding:"required,uuid4"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"required"`
}
