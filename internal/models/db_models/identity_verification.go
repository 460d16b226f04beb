package db_models

import (
	"time"

	"github.com/google/uuid"
)

type IdentityVerification struct {
	BaseModel
	UserID       uuid.UUID          `gorm:"type:uuid;index"`
	DocumentType string             `gorm:"size:50"`
	DocumentURL  string             `gorm:"size:512"`
	Status       VerificationStatus `gorm:"size:20;default:'pending';index"`

	RejectionReason string `gorm:"type:text"`
	ReviewedBy      *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt      *time.Time
	Notes           string `gorm:"type:text"`

	User User `gorm:"foreignKey:UserID"`
}
