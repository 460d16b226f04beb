package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"sakay/internal/models/db_models"
	"sakay/internal/models/request_models"
	"sakay/internal/repositories"
	"sakay/pkg/utils"
)

type mockVerificationRepo struct {
	InsertFunc           func(ctx context.Context, v *db_models.IdentityVerification) error
	FindByIDFunc         func(ctx context.Context, id string) (*db_models.IdentityVerification, error)
	ListByStatusFunc     func(ctx context.Context, status db_models.VerificationStatus) ([]db_models.IdentityVerification, error)
	FindLatestByUserFunc func(ctx context.Context, userID string) (*db_models.IdentityVerification, error)
	ReviewFunc           func(ctx context.Context, id string, status db_models.VerificationStatus, reason string, reviewerID uuid.UUID) error
}

func (m *mockVerificationRepo) Insert(ctx context.Context, v *db_models.IdentityVerification) error {
	return m.InsertFunc(ctx, v)
}
func (m *mockVerificationRepo) FindByID(ctx context.Context, id string) (*db_models.IdentityVerification, error) {
	return m.FindByIDFunc(ctx, id)
}
func (m *mockVerificationRepo) ListByStatus(ctx context.Context, status db_models.VerificationStatus) ([]db_models.IdentityVerification, error) {
	return m.ListByStatusFunc(ctx, status)
}
func (m *mockVerificationRepo) FindLatestByUser(ctx context.Context, userID string) (*db_models.IdentityVerification, error) {
	return m.FindLatestByUserFunc(ctx, userID)
}
func (m *mockVerificationRepo) Review(ctx context.Context, id string, status db_models.VerificationStatus, reason string, reviewerID uuid.UUID) error {
	return m.ReviewFunc(ctx, id, status, reason, reviewerID)
}

func TestVerificationService_Submit(t *testing.T) {
	ctx := context.Background()

	submission := request_models.SubmitVerificationRequest{
		DocumentType: "drivers_license",
		DocumentURL:  "https://cdn.example.com/ids/abc.jpg",
	}

	userInState := func(status db_models.VerificationStatus) *db_models.User {
		u := userWithStatus(status)
		u.ID = uuid.New()
		return u
	}

	t.Run("creates a pending record for a fresh user", func(t *testing.T) {
		user := userInState(db_models.VerificationUnset)
		userRepo := &mockUserRepo{
			FindByIDFunc: func(ctx context.Context, id string) (*db_models.User, error) {
				return user, nil
			},
		}
		var saved *db_models.IdentityVerification
		repo := &mockVerificationRepo{
			InsertFunc: func(ctx context.Context, v *db_models.IdentityVerification) error {
				saved = v
				return nil
			},
		}
		svc := NewVerificationService(repo, userRepo)

		v, err := svc.Submit(ctx, user.ID.String(), submission)
		require.NoError(t, err)
		require.Equal(t, saved, v)
		require.Equal(t, db_models.VerificationPending, v.Status)
		require.Equal(t, user.ID, v.UserID)
		require.Equal(t, "drivers_license", v.DocumentType)
	})

	t.Run("a rejected user may resubmit", func(t *testing.T) {
		user := userInState(db_models.VerificationRejected)
		userRepo := &mockUserRepo{
			FindByIDFunc: func(ctx context.Context, id string) (*db_models.User, error) {
				return user, nil
			},
		}
		repo := &mockVerificationRepo{
			InsertFunc: func(ctx context.Context, v *db_models.IdentityVerification) error {
				return nil
			},
		}
		svc := NewVerificationService(repo, userRepo)
		_, err := svc.Submit(ctx, user.ID.String(), submission)
		require.NoError(t, err)
	})

	t.Run("a pending submission blocks another", func(t *testing.T) {
		user := userInState(db_models.VerificationPending)
		userRepo := &mockUserRepo{
			FindByIDFunc: func(ctx context.Context, id string) (*db_models.User, error) {
				return user, nil
			},
		}
		svc := NewVerificationService(&mockVerificationRepo{}, userRepo)
		_, err := svc.Submit(ctx, user.ID.String(), submission)
		require.ErrorIs(t, err, utils.ErrPrecondition)
	})

	t.Run("an approved user has nothing to submit", func(t *testing.T) {
		user := userInState(db_models.VerificationApproved)
		userRepo := &mockUserRepo{
			FindByIDFunc: func(ctx context.Context, id string) (*db_models.User, error) {
				return user, nil
			},
		}
		svc := NewVerificationService(&mockVerificationRepo{}, userRepo)
		_, err := svc.Submit(ctx, user.ID.String(), submission)
		require.ErrorIs(t, err, utils.ErrPrecondition)
	})
}

func TestVerificationService_Review(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.NewString()

	pendingVerification := func() *db_models.IdentityVerification {
		v := &db_models.IdentityVerification{
			UserID: uuid.New(),
			Status: db_models.VerificationPending,
		}
		v.ID = uuid.New()
		return v
	}

	t.Run("approve passes the outcome to the store", func(t *testing.T) {
		v := pendingVerification()
		var gotStatus db_models.VerificationStatus
		var gotReviewer uuid.UUID
		repo := &mockVerificationRepo{
			FindByIDFunc: func(ctx context.Context, id string) (*db_models.IdentityVerification, error) {
				return v, nil
			},
			ReviewFunc: func(ctx context.Context, id string, status db_models.VerificationStatus, reason string, reviewerID uuid.UUID) error {
				gotStatus = status
				gotReviewer = reviewerID
				return nil
			},
		}
		svc := NewVerificationService(repo, &mockUserRepo{})

		require.NoError(t, svc.Approve(ctx, adminID, v.ID.String()))
		require.Equal(t, db_models.VerificationApproved, gotStatus)
		require.Equal(t, adminID, gotReviewer.String())
	})

	t.Run("reject requires a reason", func(t *testing.T) {
		svc := NewVerificationService(&mockVerificationRepo{}, &mockUserRepo{})
		err := svc.Reject(ctx, adminID, uuid.NewString(), "")
		require.ErrorIs(t, err, utils.ErrValidation)
	})

	t.Run("reject forwards the reason", func(t *testing.T) {
		v := pendingVerification()
		var gotReason string
		repo := &mockVerificationRepo{
			FindByIDFunc: func(ctx context.Context, id string) (*db_models.IdentityVerification, error) {
				return v, nil
			},
			ReviewFunc: func(ctx context.Context, id string, status db_models.VerificationStatus, reason string, reviewerID uuid.UUID) error {
				gotReason = reason
				return nil
			},
		}
		svc := NewVerificationService(repo, &mockUserRepo{})

		require.NoError(t, svc.Reject(ctx, adminID, v.ID.String(), "photo is blurry"))
		require.Equal(t, "photo is blurry", gotReason)
	})

	t.Run("an already reviewed record cannot be reviewed again", func(t *testing.T) {
		v := pendingVerification()
		v.Status = db_models.VerificationApproved
		repo := &mockVerificationRepo{
			FindByIDFunc: func(ctx context.Context, id string) (*db_models.IdentityVerification, error) {
				return v, nil
			},
		}
		svc := NewVerificationService(repo, &mockUserRepo{})
		err := svc.Approve(ctx, adminID, v.ID.String())
		require.ErrorIs(t, err, utils.ErrPrecondition)
	})

	t.Run("losing the review race reports already reviewed", func(t *testing.T) {
		v := pendingVerification()
		repo := &mockVerificationRepo{
			FindByIDFunc: func(ctx context.Context, id string) (*db_models.IdentityVerification, error) {
				return v, nil
			},
			ReviewFunc: func(ctx context.Context, id string, status db_models.VerificationStatus, reason string, reviewerID uuid.UUID) error {
				return repositories.ErrStaleWrite
			},
		}
		svc := NewVerificationService(repo, &mockUserRepo{})
		err := svc.Approve(ctx, adminID, v.ID.String())
		require.ErrorIs(t, err, utils.ErrPrecondition)
	})
}
