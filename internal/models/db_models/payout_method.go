package db_models

import (
	"github.com/google/uuid"
)

// PayoutMethod is a GCash-style disbursement account. At most one
// method per user carries IsPrimary; the repository enforces this by
// demoting siblings in the same transaction as any promotion.
type PayoutMethod struct {
	BaseModel
	UserID       uuid.UUID `gorm:"type:uuid;index"`
	AccountName  string    `gorm:"size:120"`
	MobileNumber string    `gorm:"size:11"`
	IsPrimary    bool      `gorm:"index"`
	Verified     bool

	User User `gorm:"foreignKey:UserID"`
}
