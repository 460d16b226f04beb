package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sakay/internal/models/db_models"
)

type CancellationRepository interface {
	// Cancel creates the cancellation record and flips the booking to
	// cancelled in one transaction. The booking update is conditional on
	// the stored status still being cancellable; if another writer beat
	// us the whole group rolls back and no cancellation record survives.
	Cancel(ctx context.Context, c *db_models.Cancellation, bookingUpdates map[string]interface{}) error

	FindByID(ctx context.Context, id string) (*db_models.Cancellation, error)
	FindByBooking(ctx context.Context, bookingID string) (*db_models.Cancellation, error)
	ListByRefundStatus(ctx context.Context, status db_models.RefundStatus) ([]db_models.Cancellation, error)

	// Settle writes the immutable refund transaction, marks the
	// cancellation processed and mirrors the refund fields onto the
	// booking, all in one transaction. The cancellation update is
	// conditional on refund_status still being pending, so a second
	// settlement attempt rolls back without a duplicate transaction row.
	Settle(ctx context.Context, txn *db_models.RefundTransaction, cancellationUpdates, bookingUpdates map[string]interface{}) error
}

type cancellationRepository struct {
	db *gorm.DB
}

func NewCancellationRepository(db *gorm.DB) CancellationRepository {
	return &cancellationRepository{db: db}
}

func (r *cancellationRepository) Cancel(ctx context.Context, c *db_models.Cancellation, bookingUpdates map[string]interface{}) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}

		res := tx.Model(&db_models.Booking{}).
			Where("id = ? AND status IN ?", c.BookingID,
				[]db_models.BookingStatus{db_models.BookingPending, db_models.BookingConfirmed}).
			Updates(bookingUpdates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return ErrStaleWrite
		}
		return nil
	})
}

func (r *cancellationRepository) FindByID(ctx context.Context, id string) (*db_models.Cancellation, error) {
	var c db_models.Cancellation
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *cancellationRepository) FindByBooking(ctx context.Context, bookingID string) (*db_models.Cancellation, error) {
	var c db_models.Cancellation
	err := r.db.WithContext(ctx).First(&c, "booking_id = ?", bookingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *cancellationRepository) ListByRefundStatus(ctx context.Context, status db_models.RefundStatus) ([]db_models.Cancellation, error) {
	var list []db_models.Cancellation
	err := r.db.WithContext(ctx).
		Where("refund_status = ?", status).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

func (r *cancellationRepository) Settle(ctx context.Context, txn *db_models.RefundTransaction, cancellationUpdates, bookingUpdates map[string]interface{}) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(txn).Error; err != nil {
			return err
		}

		res := tx.Model(&db_models.Cancellation{}).
			Where("id = ? AND refund_status = ?", txn.CancellationID, db_models.RefundPending).
			Updates(cancellationUpdates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return ErrStaleWrite
		}

		return tx.Model(&db_models.Booking{}).
			Where("id = ?", txn.BookingID).
			Updates(bookingUpdates).Error
	})
}
