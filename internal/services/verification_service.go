package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"sakay/internal/models/db_models"
	"sakay/internal/models/request_models"
	"sakay/internal/repositories"
	"sakay/pkg/utils"
)

type VerificationServiceInterface interface {
	Submit(ctx context.Context, userID string, request request_models.SubmitVerificationRequest) (*db_models.IdentityVerification, error)
	ListPending(ctx context.Context) ([]db_models.IdentityVerification, error)

	// Approve and Reject update the verification record and mirror the
	// outcome onto the user in one atomic write.
	Approve(ctx context.Context, actorID, verificationID string) error
	Reject(ctx context.Context, actorID, verificationID, reason string) error
}

type VerificationService struct {
	verificationRepo repositories.VerificationRepository
	userRepo         repositories.UserRepository
}

func NewVerificationService(
	verificationRepo repositories.VerificationRepository,
	userRepo repositories.UserRepository,
) VerificationServiceInterface {
	return &VerificationService{
		verificationRepo: verificationRepo,
		userRepo:         userRepo,
	}
}

func (s *VerificationService) Submit(ctx context.Context, userID string, request request_models.SubmitVerificationRequest) (*db_models.IdentityVerification, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.CollaboratorError(err)
	}
	if user == nil {
		return nil, utils.NotFoundError("user")
	}
	if user.IDVerificationStatus == db_models.VerificationPending {
		return nil, utils.PreconditionError("you already have a verification under review")
	}
	if user.IDVerificationStatus == db_models.VerificationApproved {
		return nil, utils.PreconditionError("your identity is already verified")
	}

	v := &db_models.IdentityVerification{
		UserID:       user.ID,
		DocumentType: request.DocumentType,
		DocumentURL:  request.DocumentURL,
		Status:       db_models.VerificationPending,
	}
	if err := s.verificationRepo.Insert(ctx, v); err != nil {
		return nil, utils.CollaboratorError(err)
	}
	return v, nil
}

func (s *VerificationService) ListPending(ctx context.Context) ([]db_models.IdentityVerification, error) {
	list, err := s.verificationRepo.ListByStatus(ctx, db_models.VerificationPending)
	if err != nil {
		return nil, utils.CollaboratorError(err)
	}
	return list, nil
}

func (s *VerificationService) Approve(ctx context.Context, actorID, verificationID string) error {
	reviewer, err := uuid.Parse(actorID)
	if err != nil {
		return utils.ValidationError("invalid actor id")
	}
	return s.review(ctx, verificationID, db_models.VerificationApproved, "", reviewer)
}

func (s *VerificationService) Reject(ctx context.Context, actorID, verificationID, reason string) error {
	if reason == "" {
		return utils.ValidationError("a rejection reason is required")
	}
	reviewer, err := uuid.Parse(actorID)
	if err != nil {
		return utils.ValidationError("invalid actor id")
	}
	return s.review(ctx, verificationID, db_models.VerificationRejected, reason, reviewer)
}

func (s *VerificationService) review(ctx context.Context, verificationID string, status db_models.VerificationStatus, reason string, reviewer uuid.UUID) error {
	v, err := s.verificationRepo.FindByID(ctx, verificationID)
	if err != nil {
		return utils.CollaboratorError(err)
	}
	if v == nil {
		return utils.NotFoundError("verification")
	}
	if v.Status != db_models.VerificationPending {
		return utils.PreconditionError("this verification has already been reviewed")
	}

	if err := s.verificationRepo.Review(ctx, verificationID, status, reason, reviewer); err != nil {
		if errors.Is(err, repositories.ErrStaleWrite) {
			return utils.PreconditionError("this verification has already been reviewed")
		}
		return utils.CollaboratorError(err)
	}
	return nil
}
