package response_models

type VehicleResponse struct {
	ID           string   `json:"id"`
	HostID       string   `json:"host_id"`
	Title        string   `json:"title"`
	Slug         string   `json:"slug"`
	Type         string   `json:"type"`
	Make         string   `json:"make"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	City         string   `json:"city"`
	DailyPrice   float64  `json:"daily_price"`
	PriceDisplay string   `json:"price_display"`
	Description  string   `json:"description,omitempty"`
	Photos       []string `json:"photos"`
	IsListed     bool     `json:"is_listed"`
}
