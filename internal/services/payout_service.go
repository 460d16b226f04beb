package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"sakay/internal/models/db_models"
	"sakay/internal/models/request_models"
	"sakay/internal/models/response_models"
	"sakay/internal/repositories"
	"sakay/pkg/utils"
)

type PayoutServiceInterface interface {
	// AggregateUnpaidEarnings folds over the host's confirmed bookings
	// without a paid_out_at. Recomputed on every call.
	AggregateUnpaidEarnings(ctx context.Context, hostID string) (*response_models.UnpaidEarnings, error)

	// ProcessPayout re-fetches the unpaid set at call time (never the
	// caller-supplied list), writes one payout transaction and claims
	// every booking in the same atomic write. The operator amount is
	// recorded as entered; the computed total rides along for display.
	ProcessPayout(ctx context.Context, actorID string, request request_models.ProcessPayoutRequest) (*response_models.PayoutResult, error)

	ListTransactions(ctx context.Context, hostID string) ([]db_models.PayoutTransaction, error)
}

type PayoutService struct {
	payoutRepo  repositories.PayoutRepository
	methodRepo  repositories.PayoutMethodRepository
	bookingRepo repositories.BookingRepository
}

func NewPayoutService(
	payoutRepo repositories.PayoutRepository,
	methodRepo repositories.PayoutMethodRepository,
	bookingRepo repositories.BookingRepository,
) PayoutServiceInterface {
	return &PayoutService{
		payoutRepo:  payoutRepo,
		methodRepo:  methodRepo,
		bookingRepo: bookingRepo,
	}
}

func (s *PayoutService) AggregateUnpaidEarnings(ctx context.Context, hostID string) (*response_models.UnpaidEarnings, error) {
	bookings, err := s.bookingRepo.ListUnpaidConfirmed(ctx, hostID)
	if err != nil {
		return nil, utils.CollaboratorError(err)
	}
	agg := foldEarnings(hostID, bookings)
	return &agg, nil
}

func (s *PayoutService) ProcessPayout(ctx context.Context, actorID string, request request_models.ProcessPayoutRequest) (*response_models.PayoutResult, error) {
	if request.Amount <= 0 {
		return nil, utils.ValidationError("payout amount must be greater than zero")
	}
	if request.ReferenceNumber == "" {
		return nil, utils.ValidationError("a reference number is required")
	}
	actor, err := uuid.Parse(actorID)
	if err != nil {
		return nil, utils.ValidationError("invalid actor id")
	}

	method, err := s.methodRepo.FindByID(ctx, request.MethodID)
	if err != nil {
		return nil, utils.CollaboratorError(err)
	}
	if method == nil {
		return nil, utils.NotFoundError("payout method")
	}
	if !method.Verified {
		return nil, utils.PreconditionError("this payout method is not yet verified")
	}

	hostID := method.UserID.String()
	bookings, err := s.bookingRepo.ListUnpaidConfirmed(ctx, hostID)
	if err != nil {
		return nil, utils.CollaboratorError(err)
	}
	if len(bookings) == 0 {
		return nil, utils.PreconditionError("this host has no unpaid bookings")
	}

	agg := foldEarnings(hostID, bookings)
	bookingIDs := make([]uuid.UUID, 0, len(bookings))
	for i := range bookings {
		bookingIDs = append(bookingIDs, bookings[i].ID)
	}

	idsJSON, err := json.Marshal(agg.BookingIDs)
	if err != nil {
		return nil, utils.CollaboratorError(err)
	}
	breakdownJSON, err := json.Marshal(agg.Breakdown)
	if err != nil {
		return nil, utils.CollaboratorError(err)
	}

	now := time.Now()
	txn := &db_models.PayoutTransaction{
		HostID:          method.UserID,
		MethodID:        method.ID,
		AccountName:     method.AccountName,
		MobileNumber:    method.MobileNumber,
		Amount:          request.Amount,
		ComputedTotal:   agg.TotalEarnings,
		ReferenceNumber: request.ReferenceNumber,
		Notes:           request.Notes,
		BookingIDs:      idsJSON,
		BookingCount:    len(bookings),
		FeeBreakdown:    breakdownJSON,
		ProcessedBy:     actor,
		ProcessedAt:     now,
	}

	if err := s.payoutRepo.Settle(ctx, txn, bookingIDs, now); err != nil {
		if errors.Is(err, repositories.ErrStaleWrite) {
			return nil, utils.PreconditionError("the unpaid bookings changed while settling, reload and try again")
		}
		return nil, utils.CollaboratorError(err)
	}

	return &response_models.PayoutResult{
		TransactionID:   txn.ID.String(),
		HostID:          hostID,
		Amount:          txn.Amount,
		ComputedTotal:   txn.ComputedTotal,
		ReferenceNumber: txn.ReferenceNumber,
		BookingIDs:      agg.BookingIDs,
		BookingCount:    txn.BookingCount,
		ProcessedAt:     now,
	}, nil
}

func (s *PayoutService) ListTransactions(ctx context.Context, hostID string) ([]db_models.PayoutTransaction, error) {
	var (
		txns []db_models.PayoutTransaction
		err  error
	)
	if hostID == "" {
		txns, err = s.payoutRepo.ListTransactions(ctx)
	} else {
		txns, err = s.payoutRepo.ListTransactionsByHost(ctx, hostID)
	}
	if err != nil {
		return nil, utils.CollaboratorError(err)
	}
	return txns, nil
}

func foldEarnings(hostID string, bookings []db_models.Booking) response_models.UnpaidEarnings {
	agg := response_models.UnpaidEarnings{
		HostID:     hostID,
		BookingIDs: make([]string, 0, len(bookings)),
	}
	for i := range bookings {
		b := &bookings[i]
		agg.TotalEarnings += b.HostEarnings
		agg.BookingIDs = append(agg.BookingIDs, b.ID.String())
		switch b.ServiceFee.Tier {
		case TierAbove:
			agg.Breakdown.Above.Count++
			agg.Breakdown.Above.FeeTotal += b.ServiceFee.Amount
		default:
			agg.Breakdown.Below.Count++
			agg.Breakdown.Below.FeeTotal += b.ServiceFee.Amount
		}
	}
	agg.BookingCount = len(bookings)
	return agg
}
