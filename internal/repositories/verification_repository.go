package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sakay/internal/models/db_models"
)

type VerificationRepository interface {
	// Insert stores the submission and mirrors the pending status onto
	// the user in the same transaction.
	Insert(ctx context.Context, v *db_models.IdentityVerification) error
	FindByID(ctx context.Context, id string) (*db_models.IdentityVerification, error)
	ListByStatus(ctx context.Context, status db_models.VerificationStatus) ([]db_models.IdentityVerification, error)
	FindLatestByUser(ctx context.Context, userID string) (*db_models.IdentityVerification, error)

	// Review updates the verification record and mirrors the outcome
	// onto the user in one transaction, so the two documents can never
	// disagree.
	Review(ctx context.Context, id string, status db_models.VerificationStatus, reason string, reviewerID uuid.UUID) error
}

type verificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &verificationRepository{db: db}
}

func (r *verificationRepository) Insert(ctx context.Context, v *db_models.IdentityVerification) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(v).Error; err != nil {
			return err
		}
		return tx.Model(&db_models.User{}).
			Where("id = ?", v.UserID).
			Updates(map[string]interface{}{
				"id_verification_status": db_models.VerificationPending,
				"id_rejection_reason":    "",
			}).Error
	})
}

func (r *verificationRepository) FindByID(ctx context.Context, id string) (*db_models.IdentityVerification, error) {
	var v db_models.IdentityVerification
	err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *verificationRepository) ListByStatus(ctx context.Context, status db_models.VerificationStatus) ([]db_models.IdentityVerification, error) {
	var list []db_models.IdentityVerification
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

func (r *verificationRepository) FindLatestByUser(ctx context.Context, userID string) (*db_models.IdentityVerification, error) {
	var v db_models.IdentityVerification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&v).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *verificationRepository) Review(ctx context.Context, id string, status db_models.VerificationStatus, reason string, reviewerID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var v db_models.IdentityVerification
		if err := tx.First(&v, "id = ?", id).Error; err != nil {
			return err
		}

		now := time.Now()
		res := tx.Model(&db_models.IdentityVerification{}).
			Where("id = ? AND status = ?", id, db_models.VerificationPending).
			Updates(map[string]interface{}{
				"status":           status,
				"rejection_reason": reason,
				"reviewed_by":      reviewerID,
				"reviewed_at":      now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return ErrStaleWrite
		}

		return tx.Model(&db_models.User{}).
			Where("id = ?", v.UserID).
			Updates(map[string]interface{}{
				"id_verification_status": status,
				"id_rejection_reason":    reason,
			}).Error
	})
}
