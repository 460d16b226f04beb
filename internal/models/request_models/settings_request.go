package request_models

type UpdateSettingsRequest struct {
	ServiceFeeThreshold   float64 `json:"service_fee_threshold" binding:"gte=0"`
	AboveThresholdPercent float64 `json:"above_threshold_percent" binding:"gte=0,lte=100"`
	BelowThresholdPercent float64 `json:"below_threshold_percent" binding:"gte=0,lte=100"`
}
