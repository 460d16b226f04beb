package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sakay/internal/models/db_models"
)

func userWithStatus(status db_models.VerificationStatus) *db_models.User {
	return &db_models.User{IDVerificationStatus: status}
}

func TestClassifyVerification(t *testing.T) {
	t.Run("nil user is not logged in", func(t *testing.T) {
		policy := ClassifyVerification(nil)
		require.Equal(t, "not_logged_in", policy.Status)
		require.False(t, policy.CanBook)
		require.False(t, policy.CanAddVehicle)
		require.True(t, policy.RequiresAction)
	})

	t.Run("approved user can do everything", func(t *testing.T) {
		policy := ClassifyVerification(userWithStatus(db_models.VerificationApproved))
		require.Equal(t, "approved", policy.Status)
		require.True(t, policy.CanBook)
		require.True(t, policy.CanAddVehicle)
		require.False(t, policy.RequiresAction)
	})

	t.Run("pending user waits without further action", func(t *testing.T) {
		policy := ClassifyVerification(userWithStatus(db_models.VerificationPending))
		require.Equal(t, "pending", policy.Status)
		require.False(t, policy.CanBook)
		require.False(t, policy.RequiresAction)
	})

	t.Run("rejected user sees the reason", func(t *testing.T) {
		user := userWithStatus(db_models.VerificationRejected)
		user.IDRejectionReason = "photo is blurry"
		policy := ClassifyVerification(user)
		require.Equal(t, "rejected", policy.Status)
		require.True(t, policy.RequiresAction)
		require.Contains(t, policy.Message, "photo is blurry")
	})

	t.Run("rejected without a reason still explains itself", func(t *testing.T) {
		policy := ClassifyVerification(userWithStatus(db_models.VerificationRejected))
		require.True(t, policy.RequiresAction)
		require.NotEmpty(t, policy.Message)
	})

	t.Run("fresh user is not verified", func(t *testing.T) {
		policy := ClassifyVerification(userWithStatus(db_models.VerificationUnset))
		require.Equal(t, "not_verified", policy.Status)
		require.True(t, policy.RequiresAction)
	})
}

func TestCanPerformAction(t *testing.T) {
	approved := userWithStatus(db_models.VerificationApproved)
	pending := userWithStatus(db_models.VerificationPending)

	t.Run("only approved users may do restricted actions", func(t *testing.T) {
		for _, action := range []string{ActionBook, ActionAddVehicle, ActionMessageHost} {
			require.True(t, CanPerformAction(approved, action))
			require.False(t, CanPerformAction(pending, action))
			require.False(t, CanPerformAction(nil, action))
			require.False(t, CanPerformAction(userWithStatus(db_models.VerificationRejected), action))
		}
	})

	t.Run("unrestricted actions are open to anyone", func(t *testing.T) {
		require.True(t, CanPerformAction(nil, "browse"))
		require.True(t, CanPerformAction(pending, "view_profile"))
	})
}

func TestActionErrorMessage(t *testing.T) {
	states := map[string]*db_models.User{
		"nil":      nil,
		"approved": userWithStatus(db_models.VerificationApproved),
		"pending":  userWithStatus(db_models.VerificationPending),
		"rejected": userWithStatus(db_models.VerificationRejected),
		"none":     userWithStatus(db_models.VerificationUnset),
	}
	actions := []string{ActionBook, ActionAddVehicle, ActionMessageHost, "unknown_action"}

	for name, user := range states {
		for _, action := range actions {
			msg := ActionErrorMessage(user, action)
			require.NotEmpty(t, msg, "state %s action %s", name, action)
		}
	}

	require.Contains(t, ActionErrorMessage(nil, ActionBook), "log in")
	require.Contains(t, ActionErrorMessage(userWithStatus(db_models.VerificationPending), ActionAddVehicle), "under review")
}
