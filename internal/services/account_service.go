package services

import (
	"context"

	"sakay/internal/models/db_models"
	"sakay/internal/models/request_models"
	"sakay/internal/models/response_models"
	"sakay/internal/repositories"
	"sakay/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	GetProfile(ctx context.Context, userID string) (*response_models.UserResponse, error)

	// VerificationPolicy classifies what the user may currently do.
	VerificationPolicy(ctx context.Context, userID string) (*VerificationPolicy, error)
}

type AccountService struct {
	userRepo repositories.UserRepository
}

func NewAccountService(userRepo repositories.UserRepository) AccountServiceInterface {
	return &AccountService{userRepo: userRepo}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	if request.Mobile != "" && !utils.IsValidPHMobile(request.Mobile) {
		return utils.ValidationError("mobile number must be 11 digits starting with 09")
	}

	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.CollaboratorError(err)
	}
	if existing != nil {
		return utils.PreconditionError("an account with this email already exists")
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.CollaboratorError(err)
	}

	user := &db_models.User{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hashed,
		Mobile:       request.Mobile,
		Role:         "user",
	}
	if err := a.userRepo.Insert(ctx, user); err != nil {
		return utils.CollaboratorError(err)
	}
	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.CollaboratorError(err)
	}
	if user == nil {
		return nil, utils.ValidationError("invalid email or password")
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ValidationError("invalid email or password")
	}

	token, err := utils.CreateToken(user.ID, user.Role)
	if err != nil {
		return nil, utils.CollaboratorError(err)
	}

	return &response_models.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

func (a *AccountService) GetProfile(ctx context.Context, userID string) (*response_models.UserResponse, error) {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.CollaboratorError(err)
	}
	if user == nil {
		return nil, utils.NotFoundError("user")
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (a *AccountService) VerificationPolicy(ctx context.Context, userID string) (*VerificationPolicy, error) {
	var user *db_models.User
	if userID != "" {
		var err error
		user, err = a.userRepo.FindByID(ctx, userID)
		if err != nil {
			return nil, utils.CollaboratorError(err)
		}
	}
	policy := ClassifyVerification(user)
	return &policy, nil
}

func toUserResponse(u *db_models.User) response_models.UserResponse {
	status := string(u.IDVerificationStatus)
	if status == "" {
		status = "not_verified"
	}
	return response_models.UserResponse{
		ID:                 u.ID.String(),
		Name:               u.Name,
		Email:              u.Email,
		Mobile:             u.Mobile,
		Role:               u.Role,
		VerificationStatus: status,
		RejectionReason:    u.IDRejectionReason,
	}
}
