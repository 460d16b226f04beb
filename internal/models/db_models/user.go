package db_models

type VerificationStatus string

const (
	VerificationUnset    VerificationStatus = ""
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

type User struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Mobile       string `gorm:"size:11"`
	Role         string `gorm:"size:20;default:'user';index"`

	// Mirrored from the latest identity-verification review.
	IDVerificationStatus VerificationStatus `gorm:"size:20;index"`
	IDRejectionReason    string
}
