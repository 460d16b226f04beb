package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"sakay/internal/models/db_models"
)

type BookingRepository interface {
	Insert(ctx context.Context, b *db_models.Booking) error
	FindByID(ctx context.Context, id string) (*db_models.Booking, error)
	ListByGuest(ctx context.Context, guestID string) ([]db_models.Booking, error)
	ListByHost(ctx context.Context, hostID string) ([]db_models.Booking, error)

	// Confirm stamps the service-fee snapshot and host earnings onto a
	// pending booking. The WHERE on status keeps a double confirm from
	// rewriting the snapshot; zero rows affected means the booking was
	// not pending anymore.
	Confirm(ctx context.Context, id string, fee db_models.ServiceFeeSnapshot, hostEarnings float64) (int64, error)

	// ListUnpaidConfirmed returns a host's confirmed bookings whose
	// earnings have not been disbursed yet.
	ListUnpaidConfirmed(ctx context.Context, hostID string) ([]db_models.Booking, error)

	HasOverlap(ctx context.Context, vehicleID string, start, end time.Time) (bool, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Insert(ctx context.Context, b *db_models.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id string) (*db_models.Booking, error) {
	var b db_models.Booking
	err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) ListByGuest(ctx context.Context, guestID string) ([]db_models.Booking, error) {
	var bookings []db_models.Booking
	err := r.db.WithContext(ctx).
		Where("guest_id = ?", guestID).
		Order("start_date DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) ListByHost(ctx context.Context, hostID string) ([]db_models.Booking, error) {
	var bookings []db_models.Booking
	err := r.db.WithContext(ctx).
		Where("host_id = ?", hostID).
		Order("start_date DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) Confirm(ctx context.Context, id string, fee db_models.ServiceFeeSnapshot, hostEarnings float64) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.Booking{}).
		Where("id = ? AND status = ?", id, db_models.BookingPending).
		Updates(map[string]interface{}{
			"status":                 db_models.BookingConfirmed,
			"service_fee_percentage": fee.Percentage,
			"service_fee_tier":       fee.Tier,
			"service_fee_amount":     fee.Amount,
			"host_earnings":          hostEarnings,
		})
	return res.RowsAffected, res.Error
}

func (r *bookingRepository) ListUnpaidConfirmed(ctx context.Context, hostID string) ([]db_models.Booking, error) {
	var bookings []db_models.Booking
	err := r.db.WithContext(ctx).
		Where("host_id = ? AND status = ? AND paid_out_at IS NULL", hostID, db_models.BookingConfirmed).
		Order("start_date ASC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) HasOverlap(ctx context.Context, vehicleID string, start, end time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Booking{}).
		Where("vehicle_id = ? AND status IN ? AND start_date < ? AND end_date > ?",
			vehicleID,
			[]db_models.BookingStatus{db_models.BookingPending, db_models.BookingConfirmed},
			end, start).
		Count(&count).Error
	return count > 0, err
}
