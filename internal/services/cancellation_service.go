package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"sakay/internal/models/db_models"
	"sakay/internal/models/request_models"
	"sakay/internal/repositories"
	"sakay/pkg/utils"
)

type CancellationServiceInterface interface {
	// Cancel computes the refund from the time remaining before the
	// booking starts, writes the cancellation record and flips the
	// booking, all atomically.
	Cancel(ctx context.Context, actorID, bookingID, reason string) (*db_models.Cancellation, error)

	GetByID(ctx context.Context, id string) (*db_models.Cancellation, error)
	ListPendingRefunds(ctx context.Context) ([]db_models.Cancellation, error)

	// SettleRefund records the manually reconciled refund (GCash
	// reference number) and marks cancellation and booking processed.
	// Settling twice fails on the pending precondition.
	SettleRefund(ctx context.Context, actorID, cancellationID string, request request_models.SettleRefundRequest) (*db_models.RefundTransaction, error)
}

type CancellationService struct {
	cancellationRepo repositories.CancellationRepository
	bookingRepo      repositories.BookingRepository
}

func NewCancellationService(
	cancellationRepo repositories.CancellationRepository,
	bookingRepo repositories.BookingRepository,
) CancellationServiceInterface {
	return &CancellationService{
		cancellationRepo: cancellationRepo,
		bookingRepo:      bookingRepo,
	}
}

func (s *CancellationService) Cancel(ctx context.Context, actorID, bookingID, reason string) (*db_models.Cancellation, error) {
	if reason == "" {
		return nil, utils.ValidationError("a cancellation reason is required")
	}

	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, utils.CollaboratorError(err)
	}
	if booking == nil {
		return nil, utils.NotFoundError("booking")
	}

	now := time.Now()
	switch booking.DerivedStatus(now) {
	case db_models.BookingCancelled:
		return nil, utils.PreconditionError("this booking is already cancelled")
	case db_models.BookingCompleted:
		return nil, utils.PreconditionError("a completed booking cannot be cancelled")
	case db_models.BookingOngoing:
		return nil, utils.PreconditionError("the rental has already started and cannot be cancelled")
	}
	if !now.Before(booking.StartDate) {
		return nil, utils.PreconditionError("the rental has already started and cannot be cancelled")
	}

	cancelledBy := "admin"
	switch actorID {
	case booking.GuestID.String():
		cancelledBy = "guest"
	case booking.HostID.String():
		cancelledBy = "host"
	}

	quote := ComputeRefund(now, booking.StartDate, booking.TotalPrice)
	refundStatus := db_models.RefundNotApplicable
	if quote.Amount > 0 {
		refundStatus = db_models.RefundPending
	}

	cancellation := &db_models.Cancellation{
		BookingID:          booking.ID,
		GuestID:            booking.GuestID,
		HostID:             booking.HostID,
		VehicleTitle:       booking.VehicleTitle,
		GuestName:          booking.GuestName,
		HostName:           booking.HostName,
		StartDate:          booking.StartDate,
		OriginalAmount:     booking.TotalPrice,
		RefundAmount:       quote.Amount,
		RefundPercentage:   quote.Percentage,
		HoursBeforeBooking: quote.HoursUntilBooking,
		Reason:             reason,
		CancelledBy:        cancelledBy,
		RefundStatus:       refundStatus,
	}

	bookingUpdates := map[string]interface{}{
		"status":              db_models.BookingCancelled,
		"cancelled_at":        now,
		"cancelled_by":        cancelledBy,
		"cancellation_reason": reason,
		"refund_amount":       quote.Amount,
		"refund_percentage":   quote.Percentage,
		"refund_status":       refundStatus,
	}

	if err := s.cancellationRepo.Cancel(ctx, cancellation, bookingUpdates); err != nil {
		if errors.Is(err, repositories.ErrStaleWrite) {
			return nil, utils.PreconditionError("the booking changed while cancelling, reload and try again")
		}
		return nil, utils.CollaboratorError(err)
	}
	return cancellation, nil
}

func (s *CancellationService) GetByID(ctx context.Context, id string) (*db_models.Cancellation, error) {
	c, err := s.cancellationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.CollaboratorError(err)
	}
	if c == nil {
		return nil, utils.NotFoundError("cancellation")
	}
	return c, nil
}

func (s *CancellationService) ListPendingRefunds(ctx context.Context) ([]db_models.Cancellation, error) {
	list, err := s.cancellationRepo.ListByRefundStatus(ctx, db_models.RefundPending)
	if err != nil {
		return nil, utils.CollaboratorError(err)
	}
	return list, nil
}

func (s *CancellationService) SettleRefund(ctx context.Context, actorID, cancellationID string, request request_models.SettleRefundRequest) (*db_models.RefundTransaction, error) {
	if request.ReferenceNumber == "" {
		return nil, utils.ValidationError("a reference number is required")
	}

	cancellation, err := s.cancellationRepo.FindByID(ctx, cancellationID)
	if err != nil {
		return nil, utils.CollaboratorError(err)
	}
	if cancellation == nil {
		return nil, utils.NotFoundError("cancellation")
	}
	if cancellation.RefundStatus != db_models.RefundPending {
		return nil, utils.PreconditionError("this refund has already been processed")
	}
	if cancellation.RefundAmount <= 0 {
		return nil, utils.PreconditionError("this cancellation has no refund to settle")
	}

	actor, err := uuid.Parse(actorID)
	if err != nil {
		return nil, utils.ValidationError("invalid actor id")
	}

	method := request.Method
	if method == "" {
		method = "gcash"
	}

	now := time.Now()
	txn := &db_models.RefundTransaction{
		CancellationID:  cancellation.ID,
		BookingID:       cancellation.BookingID,
		GuestID:         cancellation.GuestID,
		Amount:          cancellation.RefundAmount,
		Percentage:      cancellation.RefundPercentage,
		ReferenceNumber: request.ReferenceNumber,
		Method:          method,
		Notes:           request.Notes,
		ProcessedBy:     actor,
		ProcessedAt:     now,
	}

	cancellationUpdates := map[string]interface{}{
		"refund_status":       db_models.RefundProcessed,
		"refund_reference":    request.ReferenceNumber,
		"refund_method":       method,
		"refund_processed_at": now,
		"processed_by":        actor,
	}
	bookingUpdates := map[string]interface{}{
		"refund_status": db_models.RefundProcessed,
	}

	if err := s.cancellationRepo.Settle(ctx, txn, cancellationUpdates, bookingUpdates); err != nil {
		if errors.Is(err, repositories.ErrStaleWrite) {
			return nil, utils.PreconditionError("this refund has already been processed")
		}
		return nil, utils.CollaboratorError(err)
	}
	return txn, nil
}
