package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type VehicleType string

const (
	VehicleCar        VehicleType = "car"
	VehicleMotorcycle VehicleType = "motorcycle"
)

type Vehicle struct {
	BaseModel
	HostID      uuid.UUID   `gorm:"type:uuid;index"`
	Title       string      `gorm:"size:160"`
	Slug        string      `gorm:"size:180;index"`
	Type        VehicleType `gorm:"size:20;index"`
	Make        string      `gorm:"size:60"`
	Model       string      `gorm:"size:60"`
	Year        int
	PlateNumber string  `gorm:"size:20"`
	City        string  `gorm:"size:80;index"`
	DailyPrice  float64 // PHP per day
	Description string  `gorm:"type:text"`

	// Photo URLs; binary storage lives outside this service.
	Photos datatypes.JSON `gorm:"type:jsonb;default:'[]'"`

	IsListed bool `gorm:"default:true;index"`

	Host User `gorm:"foreignKey:HostID"`
}
