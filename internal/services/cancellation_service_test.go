package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"sakay/internal/models/db_models"
	"sakay/internal/models/request_models"
	"sakay/internal/repositories"
	"sakay/pkg/utils"
)

func futureBooking(hoursAhead time.Duration, price float64) *db_models.Booking {
	now := time.Now()
	b := &db_models.Booking{
		GuestID:      uuid.New(),
		HostID:       uuid.New(),
		VehicleID:    uuid.New(),
		StartDate:    now.Add(hoursAhead),
		EndDate:      now.Add(hoursAhead + 48*time.Hour),
		TotalPrice:   price,
		Status:       db_models.BookingConfirmed,
		RefundStatus: db_models.RefundNotApplicable,
	}
	b.ID = uuid.New()
	return b
}

func TestCancellationService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a reason", func(t *testing.T) {
		svc := NewCancellationService(&mockCancellationRepo{}, &mockBookingRepo{})
		_, err := svc.Cancel(ctx, uuid.NewString(), uuid.NewString(), "")
		require.ErrorIs(t, err, utils.ErrValidation)
	})

	t.Run("unknown booking is not found", func(t *testing.T) {
		bookingRepo := &mockBookingRepo{
			FindByIDFunc: func(ctx context.Context, id string) (*db_models.Booking, error) {
				return nil, nil
			},
		}
		svc := NewCancellationService(&mockCancellationRepo{}, bookingRepo)
		_, err := svc.Cancel(ctx, uuid.NewString(), uuid.NewString(), "change of plans")
		require.ErrorIs(t, err, utils.ErrNotFound)
	})

	t.Run("already cancelled booking is rejected", func(t *testing.T) {
		booking := futureBooking(72*time.Hour, 3000)
		booking.Status = db_models.BookingCancelled
		bookingRepo := &mockBookingRepo{
			FindByIDFunc: func(ctx context.Context, id string) (*db_models.Booking, error) {
				return booking, nil
			},
		}
		svc := NewCancellationService(&mockCancellationRepo{}, bookingRepo)
		_, err := svc.Cancel(ctx, booking.GuestID.String(), booking.ID.String(), "change of plans")
		require.ErrorIs(t, err, utils.ErrPrecondition)
	})

	t.Run("completed booking is rejected", func(t *testing.T) {
		booking := futureBooking(-100*time.Hour, 3000)
		bookingRepo := &mockBookingRepo{
			FindByIDFunc: func(ctx context.Context, id string) (*db_models.Booking, error) {
				return booking, nil
			},
		}
		svc := NewCancellationService(&mockCancellationRepo{}, bookingRepo)
		_, err := svc.Cancel(ctx, booking.GuestID.String(), booking.ID.String(), "too late")
		require.ErrorIs(t, err, utils.ErrPrecondition)
	})

	t.Run("ongoing rental is rejected", func(t *testing.T) {
		booking := futureBooking(-2*time.Hour, 3000)
		bookingRepo := &mockBookingRepo{
			FindByIDFunc: func(ctx context.Context, id string) (*db_models.Booking, error) {
				return booking, nil
			},
		}
		svc := NewCancellationService(&mockCancellationRepo{}, bookingRepo)
		_, err := svc.Cancel(ctx, booking.GuestID.String(), booking.ID.String(), "too late")
		require.ErrorIs(t, err, utils.ErrPrecondition)
	})

	t.Run("far ahead cancellation gets a pending full refund", func(t *testing.T) {
		booking := futureBooking(72*time.Hour, 3000)
		var savedCancellation *db_models.Cancellation
		var savedUpdates map[string]interface{}
		bookingRepo := &mockBookingRepo{
			FindByIDFunc: func(ctx context.Context, id string) (*db_models.Booking, error) {
				return booking, nil
			},
		}
		cancellationRepo := &mockCancellationRepo{
			CancelFunc: func(ctx context.Context, c *db_models.Cancellation, bookingUpdates map[string]interface{}) error {
				savedCancellation = c
				savedUpdates = bookingUpdates
				return nil
			},
		}
		svc := NewCancellationService(cancellationRepo, bookingRepo)

		result, err := svc.Cancel(ctx, booking.GuestID.String(), booking.ID.String(), "change of plans")
		require.NoError(t, err)
		require.Equal(t, 3000.0, result.RefundAmount)
		require.Equal(t, 100.0, result.RefundPercentage)
		require.Equal(t, db_models.RefundPending, result.RefundStatus)
		require.Equal(t, "guest", result.CancelledBy)
		require.Equal(t, savedCancellation, result)
		require.Equal(t, db_models.BookingCancelled, savedUpdates["status"])
		require.Equal(t, db_models.RefundPending, savedUpdates["refund_status"])
	})

	t.Run("late cancellation needs no refund settlement", func(t *testing.T) {
		booking := futureBooking(5*time.Hour, 3000)
		bookingRepo := &mockBookingRepo{
			FindByIDFunc: func(ctx context.Context, id string) (*db_models.Booking, error) {
				return booking, nil
			},
		}
		cancellationRepo := &mockCancellationRepo{
			CancelFunc: func(ctx context.Context, c *db_models.Cancellation, bookingUpdates map[string]interface{}) error {
				return nil
			},
		}
		svc := NewCancellationService(cancellationRepo, bookingRepo)

		result, err := svc.Cancel(ctx, booking.HostID.String(), booking.ID.String(), "vehicle broke down")
		require.NoError(t, err)
		require.Equal(t, 0.0, result.RefundAmount)
		require.Equal(t, db_models.RefundNotApplicable, result.RefundStatus)
		require.Equal(t, "host", result.CancelledBy)
	})

	t.Run("unrelated actor records admin", func(t *testing.T) {
		booking := futureBooking(72*time.Hour, 1000)
		bookingRepo := &mockBookingRepo{
			FindByIDFunc: func(ctx context.Context, id string) (*db_models.Booking, error) {
				return booking, nil
			},
		}
		cancellationRepo := &mockCancellationRepo{
			CancelFunc: func(ctx context.Context, c *db_models.Cancellation, bookingUpdates map[string]interface{}) error {
				return nil
			},
		}
		svc := NewCancellationService(cancellationRepo, bookingRepo)

		result, err := svc.Cancel(ctx, uuid.NewString(), booking.ID.String(), "fraud report")
		require.NoError(t, err)
		require.Equal(t, "admin", result.CancelledBy)
	})

	t.Run("concurrent cancellation surfaces as a precondition failure", func(t *testing.T) {
		booking := futureBooking(72*time.Hour, 3000)
		bookingRepo := &mockBookingRepo{
			FindByIDFunc: func(ctx context.Context, id string) (*db_models.Booking, error) {
				return booking, nil
			},
		}
		cancellationRepo := &mockCancellationRepo{
			CancelFunc: func(ctx context.Context, c *db_models.Cancellation, bookingUpdates map[string]interface{}) error {
				return repositories.ErrStaleWrite
			},
		}
		svc := NewCancellationService(cancellationRepo, bookingRepo)
		_, err := svc.Cancel(ctx, booking.GuestID.String(), booking.ID.String(), "change of plans")
		require.ErrorIs(t, err, utils.ErrPrecondition)
	})
}

func TestCancellationService_SettleRefund(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.NewString()

	pendingCancellation := func() *db_models.Cancellation {
		c := &db_models.Cancellation{
			BookingID:        uuid.New(),
			GuestID:          uuid.New(),
			RefundAmount:     1500,
			RefundPercentage: 50,
			RefundStatus:     db_models.RefundPending,
		}
		c.ID = uuid.New()
		return c
	}

	t.Run("requires a reference number", func(t *testing.T) {
		svc := NewCancellationService(&mockCancellationRepo{}, &mockBookingRepo{})
		_, err := svc.SettleRefund(ctx, adminID, uuid.NewString(), request_models.SettleRefundRequest{})
		require.ErrorIs(t, err, utils.ErrValidation)
	})

	t.Run("records the transaction and marks everything processed", func(t *testing.T) {
		cancellation := pendingCancellation()
		var savedTxn *db_models.RefundTransaction
		var cancellationUpdates, bookingUpdates map[string]interface{}
		repo := &mockCancellationRepo{
			FindByIDFunc: func(ctx context.Context, id string) (*db_models.Cancellation, error) {
				return cancellation, nil
			},
			SettleFunc: func(ctx context.Context, txn *db_models.RefundTransaction, cu, bu map[string]interface{}) error {
				savedTxn = txn
				cancellationUpdates = cu
				bookingUpdates = bu
				return nil
			},
		}
		svc := NewCancellationService(repo, &mockBookingRepo{})

		txn, err := svc.SettleRefund(ctx, adminID, cancellation.ID.String(), request_models.SettleRefundRequest{
			ReferenceNumber: "GC-20260310-001",
		})
		require.NoError(t, err)
		require.Equal(t, savedTxn, txn)
		require.Equal(t, 1500.0, txn.Amount)
		require.Equal(t, "GC-20260310-001", txn.ReferenceNumber)
		require.Equal(t, "gcash", txn.Method)
		require.Equal(t, adminID, txn.ProcessedBy.String())
		require.Equal(t, db_models.RefundProcessed, cancellationUpdates["refund_status"])
		require.Equal(t, db_models.RefundProcessed, bookingUpdates["refund_status"])
	})

	t.Run("settling twice fails on the pending precondition", func(t *testing.T) {
		cancellation := pendingCancellation()
		cancellation.RefundStatus = db_models.RefundProcessed
		repo := &mockCancellationRepo{
			FindByIDFunc: func(ctx context.Context, id string) (*db_models.Cancellation, error) {
				return cancellation, nil
			},
		}
		svc := NewCancellationService(repo, &mockBookingRepo{})
		_, err := svc.SettleRefund(ctx, adminID, cancellation.ID.String(), request_models.SettleRefundRequest{
			ReferenceNumber: "GC-20260310-002",
		})
		require.ErrorIs(t, err, utils.ErrPrecondition)
	})

	t.Run("zero refund has nothing to settle", func(t *testing.T) {
		cancellation := pendingCancellation()
		cancellation.RefundAmount = 0
		repo := &mockCancellationRepo{
			FindByIDFunc: func(ctx context.Context, id string) (*db_models.Cancellation, error) {
				return cancellation, nil
			},
		}
		svc := NewCancellationService(repo, &mockBookingRepo{})
		_, err := svc.SettleRefund(ctx, adminID, cancellation.ID.String(), request_models.SettleRefundRequest{
			ReferenceNumber: "GC-20260310-003",
		})
		require.ErrorIs(t, err, utils.ErrPrecondition)
	})

	t.Run("losing the settle race reports already processed", func(t *testing.T) {
		cancellation := pendingCancellation()
		repo := &mockCancellationRepo{
			FindByIDFunc: func(ctx context.Context, id string) (*db_models.Cancellation, error) {
				return cancellation, nil
			},
			SettleFunc: func(ctx context.Context, txn *db_models.RefundTransaction, cu, bu map[string]interface{}) error {
				return repositories.ErrStaleWrite
			},
		}
		svc := NewCancellationService(repo, &mockBookingRepo{})
		_, err := svc.SettleRefund(ctx, adminID, cancellation.ID.String(), request_models.SettleRefundRequest{
			ReferenceNumber: "GC-20260310-004",
		})
		require.ErrorIs(t, err, utils.ErrPrecondition)
	})
}
