package db_models

// PlatformSettings is a singleton row. When absent, engines fall back
// to the default schedule (threshold 2000, 5% above, 3% below).
type PlatformSettings struct {
	BaseModel
	ServiceFeeThreshold   float64
	AboveThresholdPercent float64
	BelowThresholdPercent float64
}
