package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sakay/internal/models/db_models"
	"sakay/internal/models/request_models"
	"sakay/internal/repositories"
)

// Func-field mocks so each test wires only the calls it expects.

type mockBookingRepo struct {
	InsertFunc              func(ctx context.Context, b *db_models.Booking) error
	FindByIDFunc            func(ctx context.Context, id string) (*db_models.Booking, error)
	ListByGuestFunc         func(ctx context.Context, guestID string) ([]db_models.Booking, error)
	ListByHostFunc          func(ctx context.Context, hostID string) ([]db_models.Booking, error)
	ConfirmFunc             func(ctx context.Context, id string, fee db_models.ServiceFeeSnapshot, hostEarnings float64) (int64, error)
	ListUnpaidConfirmedFunc func(ctx context.Context, hostID string) ([]db_models.Booking, error)
	HasOverlapFunc          func(ctx context.Context, vehicleID string, start, end time.Time) (bool, error)
}

func (m *mockBookingRepo) Insert(ctx context.Context, b *db_models.Booking) error {
	return m.InsertFunc(ctx, b)
}
func (m *mockBookingRepo) FindByID(ctx context.Context, id string) (*db_models.Booking, error) {
	return m.FindByIDFunc(ctx, id)
}
func (m *mockBookingRepo) ListByGuest(ctx context.Context, guestID string) ([]db_models.Booking, error) {
	return m.ListByGuestFunc(ctx, guestID)
}
func (m *mockBookingRepo) ListByHost(ctx context.Context, hostID string) ([]db_models.Booking, error) {
	return m.ListByHostFunc(ctx, hostID)
}
func (m *mockBookingRepo) Confirm(ctx context.Context, id string, fee db_models.ServiceFeeSnapshot, hostEarnings float64) (int64, error) {
	return m.ConfirmFunc(ctx, id, fee, hostEarnings)
}
func (m *mockBookingRepo) ListUnpaidConfirmed(ctx context.Context, hostID string) ([]db_models.Booking, error) {
	return m.ListUnpaidConfirmedFunc(ctx, hostID)
}
func (m *mockBookingRepo) HasOverlap(ctx context.Context, vehicleID string, start, end time.Time) (bool, error) {
	return m.HasOverlapFunc(ctx, vehicleID, start, end)
}

type mockCancellationRepo struct {
	CancelFunc             func(ctx context.Context, c *db_models.Cancellation, bookingUpdates map[string]interface{}) error
	FindByIDFunc           func(ctx context.Context, id string) (*db_models.Cancellation, error)
	FindByBookingFunc      func(ctx context.Context, bookingID string) (*db_models.Cancellation, error)
	ListByRefundStatusFunc func(ctx context.Context, status db_models.RefundStatus) ([]db_models.Cancellation, error)
	SettleFunc             func(ctx context.Context, txn *db_models.RefundTransaction, cancellationUpdates, bookingUpdates map[string]interface{}) error
}

func (m *mockCancellationRepo) Cancel(ctx context.Context, c *db_models.Cancellation, bookingUpdates map[string]interface{}) error {
	return m.CancelFunc(ctx, c, bookingUpdates)
}
func (m *mockCancellationRepo) FindByID(ctx context.Context, id string) (*db_models.Cancellation, error) {
	return m.FindByIDFunc(ctx, id)
}
func (m *mockCancellationRepo) FindByBooking(ctx context.Context, bookingID string) (*db_models.Cancellation, error) {
	return m.FindByBookingFunc(ctx, bookingID)
}
func (m *mockCancellationRepo) ListByRefundStatus(ctx context.Context, status db_models.RefundStatus) ([]db_models.Cancellation, error) {
	return m.ListByRefundStatusFunc(ctx, status)
}
func (m *mockCancellationRepo) Settle(ctx context.Context, txn *db_models.RefundTransaction, cancellationUpdates, bookingUpdates map[string]interface{}) error {
	return m.SettleFunc(ctx, txn, cancellationUpdates, bookingUpdates)
}

type mockPayoutRepo struct {
	SettleFunc                 func(ctx context.Context, txn *db_models.PayoutTransaction, bookingIDs []uuid.UUID, paidAt time.Time) error
	FindTransactionFunc        func(ctx context.Context, id string) (*db_models.PayoutTransaction, error)
	ListTransactionsByHostFunc func(ctx context.Context, hostID string) ([]db_models.PayoutTransaction, error)
	ListTransactionsFunc       func(ctx context.Context) ([]db_models.PayoutTransaction, error)
}

func (m *mockPayoutRepo) Settle(ctx context.Context, txn *db_models.PayoutTransaction, bookingIDs []uuid.UUID, paidAt time.Time) error {
	return m.SettleFunc(ctx, txn, bookingIDs, paidAt)
}
func (m *mockPayoutRepo) FindTransaction(ctx context.Context, id string) (*db_models.PayoutTransaction, error) {
	return m.FindTransactionFunc(ctx, id)
}
func (m *mockPayoutRepo) ListTransactionsByHost(ctx context.Context, hostID string) ([]db_models.PayoutTransaction, error) {
	return m.ListTransactionsByHostFunc(ctx, hostID)
}
func (m *mockPayoutRepo) ListTransactions(ctx context.Context) ([]db_models.PayoutTransaction, error) {
	return m.ListTransactionsFunc(ctx)
}

type mockUserRepo struct {
	InsertFunc      func(ctx context.Context, user *db_models.User) error
	FindByIDFunc    func(ctx context.Context, id string) (*db_models.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*db_models.User, error)
}

func (m *mockUserRepo) Insert(ctx context.Context, user *db_models.User) error {
	return m.InsertFunc(ctx, user)
}
func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*db_models.User, error) {
	return m.FindByIDFunc(ctx, id)
}
func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	return m.FindByEmailFunc(ctx, email)
}

type mockPayoutMethodRepo struct {
	InsertFunc      func(ctx context.Context, m *db_models.PayoutMethod, resetPrimary bool) error
	FindByIDFunc    func(ctx context.Context, id string) (*db_models.PayoutMethod, error)
	ListByUserFunc  func(ctx context.Context, userID string) ([]db_models.PayoutMethod, error)
	UpdateFunc      func(ctx context.Context, id, userID string, fields map[string]interface{}, resetPrimary bool) error
	SetPrimaryFunc  func(ctx context.Context, userID, methodID string) error
	SetVerifiedFunc func(ctx context.Context, id string, verified bool) error
	DeleteFunc      func(ctx context.Context, id string) error
}

func (m *mockPayoutMethodRepo) Insert(ctx context.Context, method *db_models.PayoutMethod, resetPrimary bool) error {
	return m.InsertFunc(ctx, method, resetPrimary)
}
func (m *mockPayoutMethodRepo) FindByID(ctx context.Context, id string) (*db_models.PayoutMethod, error) {
	return m.FindByIDFunc(ctx, id)
}
func (m *mockPayoutMethodRepo) ListByUser(ctx context.Context, userID string) ([]db_models.PayoutMethod, error) {
	return m.ListByUserFunc(ctx, userID)
}
func (m *mockPayoutMethodRepo) Update(ctx context.Context, id, userID string, fields map[string]interface{}, resetPrimary bool) error {
	return m.UpdateFunc(ctx, id, userID, fields, resetPrimary)
}
func (m *mockPayoutMethodRepo) SetPrimary(ctx context.Context, userID, methodID string) error {
	return m.SetPrimaryFunc(ctx, userID, methodID)
}
func (m *mockPayoutMethodRepo) SetVerified(ctx context.Context, id string, verified bool) error {
	return m.SetVerifiedFunc(ctx, id, verified)
}
func (m *mockPayoutMethodRepo) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

type mockVehicleRepo struct {
	InsertFunc     func(ctx context.Context, v *db_models.Vehicle) error
	FindByIDFunc   func(ctx context.Context, id string) (*db_models.Vehicle, error)
	ListByHostFunc func(ctx context.Context, hostID string) ([]db_models.Vehicle, error)
	SearchFunc     func(ctx context.Context, filter repositories.VehicleFilter) ([]db_models.Vehicle, error)
	UpdateFunc     func(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteFunc     func(ctx context.Context, id string) error
}

func (m *mockVehicleRepo) Insert(ctx context.Context, v *db_models.Vehicle) error {
	return m.InsertFunc(ctx, v)
}
func (m *mockVehicleRepo) FindByID(ctx context.Context, id string) (*db_models.Vehicle, error) {
	return m.FindByIDFunc(ctx, id)
}
func (m *mockVehicleRepo) ListByHost(ctx context.Context, hostID string) ([]db_models.Vehicle, error) {
	return m.ListByHostFunc(ctx, hostID)
}
func (m *mockVehicleRepo) Search(ctx context.Context, filter repositories.VehicleFilter) ([]db_models.Vehicle, error) {
	return m.SearchFunc(ctx, filter)
}
func (m *mockVehicleRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return m.UpdateFunc(ctx, id, fields)
}
func (m *mockVehicleRepo) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

type mockSettingsService struct {
	Fee FeeSettings
}

func (m *mockSettingsService) GetFeeSettings(ctx context.Context) (FeeSettings, error) {
	return m.Fee, nil
}
func (m *mockSettingsService) GetSettings(ctx context.Context) (*db_models.PlatformSettings, error) {
	return nil, nil
}
func (m *mockSettingsService) UpdateSettings(ctx context.Context, _ request_models.UpdateSettingsRequest) error {
	return nil
}
