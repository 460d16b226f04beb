package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sakay/internal/models/db_models"
)

type PayoutRepository interface {
	// Settle writes the payout transaction and claims every booking in
	// the batch with a conditional update on paid_out_at. If any booking
	// was already claimed by a concurrent payout the row count comes up
	// short and the whole transaction rolls back (ErrStaleWrite).
	Settle(ctx context.Context, txn *db_models.PayoutTransaction, bookingIDs []uuid.UUID, paidAt time.Time) error

	FindTransaction(ctx context.Context, id string) (*db_models.PayoutTransaction, error)
	ListTransactionsByHost(ctx context.Context, hostID string) ([]db_models.PayoutTransaction, error)
	ListTransactions(ctx context.Context) ([]db_models.PayoutTransaction, error)
}

type payoutRepository struct {
	db *gorm.DB
}

func NewPayoutRepository(db *gorm.DB) PayoutRepository {
	return &payoutRepository{db: db}
}

func (r *payoutRepository) Settle(ctx context.Context, txn *db_models.PayoutTransaction, bookingIDs []uuid.UUID, paidAt time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(txn).Error; err != nil {
			return err
		}

		res := tx.Model(&db_models.Booking{}).
			Where("id IN ? AND paid_out_at IS NULL", bookingIDs).
			Updates(map[string]interface{}{
				"paid_out_at":             paidAt,
				"paid_out_transaction_id": txn.ID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != int64(len(bookingIDs)) {
			return ErrStaleWrite
		}
		return nil
	})
}

func (r *payoutRepository) FindTransaction(ctx context.Context, id string) (*db_models.PayoutTransaction, error) {
	var txn db_models.PayoutTransaction
	err := r.db.WithContext(ctx).First(&txn, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

func (r *payoutRepository) ListTransactionsByHost(ctx context.Context, hostID string) ([]db_models.PayoutTransaction, error) {
	var txns []db_models.PayoutTransaction
	err := r.db.WithContext(ctx).
		Where("host_id = ?", hostID).
		Order("created_at DESC").
		Find(&txns).Error
	return txns, err
}

func (r *payoutRepository) ListTransactions(ctx context.Context) ([]db_models.PayoutTransaction, error) {
	var txns []db_models.PayoutTransaction
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&txns).Error
	return txns, err
}
