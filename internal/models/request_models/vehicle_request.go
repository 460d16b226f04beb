package request_models

type CreateVehicleRequest struct {
	Title       string   `json:"title" binding:"required"`
	Type        string   `json:"type" binding:"required,oneof=car motorcycle"`
	Make        string   `json:"make" binding:"required"`
	Model       string   `json:"model" binding:"required"`
	Year        int      `json:"year" binding:"required,gte=1950"`
	PlateNumber string   `json:"plate_number" binding:"required"`
	City        string   `json:"city" binding:"required"`
	DailyPrice  float64  `json:"daily_price" binding:"required,gt=0"`
	Description string   `json:"description"`
	Photos      []string `json:"photos"`
}

type UpdateVehicleRequest struct {
	Title       *string  `json:"title"`
	DailyPrice  *float64 `json:"daily_price" binding:"omitempty,gt=0"`
	City        *string  `json:"city"`
	Description *string  `json:"description"`
	Photos      []string `json:"photos"`
	IsListed    *bool    `json:"is_listed"`
}
