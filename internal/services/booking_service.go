package services

import (
	"context"
	"math"
	"time"

	"sakay/internal/models/db_models"
	"sakay/internal/models/request_models"
	"sakay/internal/models/response_models"
	"sakay/internal/repositories"
	"sakay/pkg/utils"
)

type BookingServiceInterface interface {
	Create(ctx context.Context, guestID string, request request_models.CreateBookingRequest) (*response_models.BookingResponse, error)

	// Confirm locks in the service-fee snapshot and host earnings. The
	// fee schedule is read fresh at this moment and never recomputed.
	Confirm(ctx context.Context, hostID, bookingID string) (*response_models.BookingResponse, error)

	GetByID(ctx context.Context, bookingID string) (*response_models.BookingResponse, error)
	ListForGuest(ctx context.Context, guestID string) ([]response_models.BookingResponse, error)
	ListForHost(ctx context.Context, hostID string) ([]response_models.BookingResponse, error)

	// QuoteRefund previews what a cancellation right now would return.
	QuoteRefund(ctx context.Context, bookingID string) (*response_models.RefundQuoteResponse, error)
}

type BookingService struct {
	bookingRepo repositories.BookingRepository
	vehicleRepo repositories.VehicleRepository
	userRepo    repositories.UserRepository
	settings    SettingsServiceInterface
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	vehicleRepo repositories.VehicleRepository,
	userRepo repositories.UserRepository,
	settings SettingsServiceInterface,
) BookingServiceInterface {
	return &BookingService{
		bookingRepo: bookingRepo,
		vehicleRepo: vehicleRepo,
		userRepo:    userRepo,
		settings:    settings,
	}
}

func (s *BookingService) Create(ctx context.Context, guestID string, request request_models.CreateBookingRequest) (*response_models.BookingResponse, error) {
	now := time.Now()
	if !request.StartDate.After(now) {
		return nil, utils.ValidationError("start date must be in the future")
	}
	if !request.EndDate.After(request.StartDate) {
		return nil, utils.ValidationError("end date must be after start date")
	}

	guest, err := s.userRepo.FindByID(ctx, guestID)
	if err != nil {
		return nil, utils.CollaboratorError(err)
	}
	if guest == nil {
		return nil, utils.NotFoundError("guest")
	}
	if !CanPerformAction(guest, ActionBook) {
		return nil, utils.PreconditionError(ActionErrorMessage(guest, ActionBook))
	}

	vehicle, err := s.vehicleRepo.FindByID(ctx, request.VehicleID)
	if err != nil {
		return nil, utils.CollaboratorError(err)
	}
	if vehicle == nil {
		return nil, utils.NotFoundError("vehicle")
	}
	if !vehicle.IsListed {
		return nil, utils.PreconditionError("this vehicle is not available for booking")
	}
	if vehicle.HostID == guest.ID {
		return nil, utils.PreconditionError("you cannot book your own vehicle")
	}

	overlap, err := s.bookingRepo.HasOverlap(ctx, request.VehicleID, request.StartDate, request.EndDate)
	if err != nil {
		return nil, utils.CollaboratorError(err)
	}
	if overlap {
		return nil, utils.PreconditionError("the vehicle is already booked for these dates")
	}

	host, err := s.userRepo.FindByID(ctx, vehicle.HostID.String())
	if err != nil {
		return nil, utils.CollaboratorError(err)
	}
	hostName := ""
	if host != nil {
		hostName = host.Name
	}

	days := int(math.Ceil(request.EndDate.Sub(request.StartDate).Hours() / 24))
	booking := &db_models.Booking{
		GuestID:      guest.ID,
		HostID:       vehicle.HostID,
		VehicleID:    vehicle.ID,
		VehicleTitle: vehicle.Title,
		GuestName:    guest.Name,
		HostName:     hostName,
		StartDate:    request.StartDate,
		EndDate:      request.EndDate,
		TotalPrice:   float64(days) * vehicle.DailyPrice,
		Status:       db_models.BookingPending,
		RefundStatus: db_models.RefundNotApplicable,
	}
	if err := s.bookingRepo.Insert(ctx, booking); err != nil {
		return nil, utils.CollaboratorError(err)
	}

	resp := toBookingResponse(booking, now)
	return &resp, nil
}

func (s *BookingService) Confirm(ctx context.Context, hostID, bookingID string) (*response_models.BookingResponse, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, utils.CollaboratorError(err)
	}
	if booking == nil {
		return nil, utils.NotFoundError("booking")
	}
	if booking.HostID.String() != hostID {
		return nil, utils.PreconditionError("only the host can confirm this booking")
	}
	if booking.Status != db_models.BookingPending {
		return nil, utils.PreconditionError("only pending bookings can be confirmed")
	}

	feeSettings, err := s.settings.GetFeeSettings(ctx)
	if err != nil {
		return nil, err
	}
	quote := ComputeServiceFee(booking.TotalPrice, feeSettings)
	fee := db_models.ServiceFeeSnapshot{
		Percentage: quote.Percentage,
		Tier:       quote.Tier,
		Amount:     quote.Amount,
	}
	earnings := booking.TotalPrice - quote.Amount

	rows, err := s.bookingRepo.Confirm(ctx, bookingID, fee, earnings)
	if err != nil {
		return nil, utils.CollaboratorError(err)
	}
	if rows == 0 {
		return nil, utils.PreconditionError("the booking was updated by someone else, reload and try again")
	}

	booking.Status = db_models.BookingConfirmed
	booking.ServiceFee = fee
	booking.HostEarnings = earnings
	resp := toBookingResponse(booking, time.Now())
	return &resp, nil
}

func (s *BookingService) GetByID(ctx context.Context, bookingID string) (*response_models.BookingResponse, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, utils.CollaboratorError(err)
	}
	if booking == nil {
		return nil, utils.NotFoundError("booking")
	}
	resp := toBookingResponse(booking, time.Now())
	return &resp, nil
}

func (s *BookingService) ListForGuest(ctx context.Context, guestID string) ([]response_models.BookingResponse, error) {
	bookings, err := s.bookingRepo.ListByGuest(ctx, guestID)
	if err != nil {
		return nil, utils.CollaboratorError(err)
	}
	return toBookingResponses(bookings), nil
}

func (s *BookingService) ListForHost(ctx context.Context, hostID string) ([]response_models.BookingResponse, error) {
	bookings, err := s.bookingRepo.ListByHost(ctx, hostID)
	if err != nil {
		return nil, utils.CollaboratorError(err)
	}
	return toBookingResponses(bookings), nil
}

func (s *BookingService) QuoteRefund(ctx context.Context, bookingID string) (*response_models.RefundQuoteResponse, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, utils.CollaboratorError(err)
	}
	if booking == nil {
		return nil, utils.NotFoundError("booking")
	}

	quote := ComputeRefund(time.Now(), booking.StartDate, booking.TotalPrice)
	return &response_models.RefundQuoteResponse{
		Percentage:        quote.Percentage,
		Amount:            quote.Amount,
		AmountDisplay:     utils.FormatPeso(quote.Amount),
		PolicyLabel:       quote.PolicyLabel,
		HoursUntilBooking: quote.HoursUntilBooking,
	}, nil
}

func toBookingResponse(b *db_models.Booking, now time.Time) response_models.BookingResponse {
	return response_models.BookingResponse{
		ID:                   b.ID.String(),
		VehicleID:            b.VehicleID.String(),
		VehicleTitle:         b.VehicleTitle,
		GuestName:            b.GuestName,
		HostName:             b.HostName,
		StartDate:            b.StartDate,
		EndDate:              b.EndDate,
		TotalPrice:           b.TotalPrice,
		Status:               string(b.DerivedStatus(now)),
		ServiceFeePercentage: b.ServiceFee.Percentage,
		ServiceFeeTier:       b.ServiceFee.Tier,
		ServiceFeeAmount:     b.ServiceFee.Amount,
		HostEarnings:         b.HostEarnings,
		PaidOut:              b.PaidOutAt != nil,
		RefundStatus:         string(b.RefundStatus),
		RefundAmount:         b.RefundAmount,
		RefundPercentage:     b.RefundPercentage,
	}
}

func toBookingResponses(bookings []db_models.Booking) []response_models.BookingResponse {
	now := time.Now()
	out := make([]response_models.BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i], now))
	}
	return out
}
