package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"sakay/internal/models/db_models"
	"sakay/internal/models/request_models"
	"sakay/internal/models/response_models"
	"sakay/internal/repositories"
	"sakay/pkg/utils"
)

type PayoutMethodServiceInterface interface {
	Add(ctx context.Context, userID string, request request_models.AddPayoutMethodRequest) (*response_models.PayoutMethodResponse, error)
	List(ctx context.Context, userID string) ([]response_models.PayoutMethodResponse, error)
	Update(ctx context.Context, userID, methodID string, request request_models.UpdatePayoutMethodRequest) error
	SetPrimary(ctx context.Context, userID, methodID string) error
	Delete(ctx context.Context, userID, methodID string) error

	// Verify is the admin flip enabling a method for payouts.
	Verify(ctx context.Context, methodID string, verified bool) error
}

type PayoutMethodService struct {
	methodRepo repositories.PayoutMethodRepository
}

func NewPayoutMethodService(methodRepo repositories.PayoutMethodRepository) PayoutMethodServiceInterface {
	return &PayoutMethodService{methodRepo: methodRepo}
}

func (s *PayoutMethodService) Add(ctx context.Context, userID string, request request_models.AddPayoutMethodRequest) (*response_models.PayoutMethodResponse, error) {
	if request.AccountName == "" {
		return nil, utils.ValidationError("an account name is required")
	}
	if !utils.IsValidPHMobile(request.MobileNumber) {
		return nil, utils.ValidationError("mobile number must be 11 digits starting with 09")
	}
	owner, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ValidationError("invalid user id")
	}

	existing, err := s.methodRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.CollaboratorError(err)
	}

	method := &db_models.PayoutMethod{
		UserID:       owner,
		AccountName:  request.AccountName,
		MobileNumber: request.MobileNumber,
		// First method always becomes the primary.
		IsPrimary: request.IsPrimary || len(existing) == 0,
	}
	if err := s.methodRepo.Insert(ctx, method, method.IsPrimary); err != nil {
		return nil, utils.CollaboratorError(err)
	}

	resp := toPayoutMethodResponse(method)
	return &resp, nil
}

func (s *PayoutMethodService) List(ctx context.Context, userID string) ([]response_models.PayoutMethodResponse, error) {
	methods, err := s.methodRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.CollaboratorError(err)
	}
	out := make([]response_models.PayoutMethodResponse, 0, len(methods))
	for i := range methods {
		out = append(out, toPayoutMethodResponse(&methods[i]))
	}
	return out, nil
}

func (s *PayoutMethodService) Update(ctx context.Context, userID, methodID string, request request_models.UpdatePayoutMethodRequest) error {
	method, err := s.ownedMethod(ctx, userID, methodID)
	if err != nil {
		return err
	}

	fields := map[string]interface{}{}
	if request.AccountName != nil {
		if *request.AccountName == "" {
			return utils.ValidationError("an account name is required")
		}
		fields["account_name"] = *request.AccountName
	}
	if request.MobileNumber != nil {
		if !utils.IsValidPHMobile(*request.MobileNumber) {
			return utils.ValidationError("mobile number must be 11 digits starting with 09")
		}
		fields["mobile_number"] = *request.MobileNumber
		// A changed account needs re-verification before payouts.
		if *request.MobileNumber != method.MobileNumber {
			fields["verified"] = false
		}
	}
	resetPrimary := false
	if request.IsPrimary != nil {
		fields["is_primary"] = *request.IsPrimary
		// Promoting via edit demotes the current primary the same way
		// add and set-primary do.
		resetPrimary = *request.IsPrimary
	}
	if len(fields) == 0 {
		return utils.ValidationError("nothing to update")
	}

	if err := s.methodRepo.Update(ctx, methodID, userID, fields, resetPrimary); err != nil {
		return utils.CollaboratorError(err)
	}
	return nil
}

func (s *PayoutMethodService) SetPrimary(ctx context.Context, userID, methodID string) error {
	if _, err := s.ownedMethod(ctx, userID, methodID); err != nil {
		return err
	}
	if err := s.methodRepo.SetPrimary(ctx, userID, methodID); err != nil {
		if errors.Is(err, repositories.ErrStaleWrite) {
			return utils.NotFoundError("payout method")
		}
		return utils.CollaboratorError(err)
	}
	return nil
}

func (s *PayoutMethodService) Delete(ctx context.Context, userID, methodID string) error {
	if _, err := s.ownedMethod(ctx, userID, methodID); err != nil {
		return err
	}
	// Deletion is unconditional; a method mid-payout is not protected.
	if err := s.methodRepo.Delete(ctx, methodID); err != nil {
		return utils.CollaboratorError(err)
	}
	return nil
}

func (s *PayoutMethodService) Verify(ctx context.Context, methodID string, verified bool) error {
	method, err := s.methodRepo.FindByID(ctx, methodID)
	if err != nil {
		return utils.CollaboratorError(err)
	}
	if method == nil {
		return utils.NotFoundError("payout method")
	}
	if err := s.methodRepo.SetVerified(ctx, methodID, verified); err != nil {
		return utils.CollaboratorError(err)
	}
	return nil
}

func (s *PayoutMethodService) ownedMethod(ctx context.Context, userID, methodID string) (*db_models.PayoutMethod, error) {
	method, err := s.methodRepo.FindByID(ctx, methodID)
	if err != nil {
		return nil, utils.CollaboratorError(err)
	}
	if method == nil {
		return nil, utils.NotFoundError("payout method")
	}
	if method.UserID.String() != userID {
		return nil, utils.PreconditionError("you can only manage your own payout methods")
	}
	return method, nil
}

func toPayoutMethodResponse(m *db_models.PayoutMethod) response_models.PayoutMethodResponse {
	return response_models.PayoutMethodResponse{
		ID:           m.ID.String(),
		AccountName:  m.AccountName,
		MobileNumber: m.MobileNumber,
		IsPrimary:    m.IsPrimary,
		Verified:     m.Verified,
	}
}
