package services

import (
	"sakay/internal/models/db_models"
)

const (
	ActionBook        = "book"
	ActionAddVehicle  = "add_vehicle"
	ActionMessageHost = "message_host"
)

var restrictedActions = map[string]bool{
	ActionBook:        true,
	ActionAddVehicle:  true,
	ActionMessageHost: true,
}

type VerificationPolicy struct {
	Status         string `json:"status"`
	CanBook        bool   `json:"can_book"`
	CanAddVehicle  bool   `json:"can_add_vehicle"`
	RequiresAction bool   `json:"requires_action"`
	Message        string `json:"message"`
}

// ClassifyVerification maps a user's verification state onto what they
// are allowed to do. Total over five states: no user (not logged in),
// approved, pending, rejected, and not-yet-verified.
func ClassifyVerification(user *db_models.User) VerificationPolicy {
	if user == nil {
		return VerificationPolicy{
			Status:         "not_logged_in",
			RequiresAction: true,
			Message:        "Log in to book vehicles or list your own.",
		}
	}

	switch user.IDVerificationStatus {
	case db_models.VerificationApproved:
		return VerificationPolicy{
			Status:        string(db_models.VerificationApproved),
			CanBook:       true,
			CanAddVehicle: true,
			Message:       "Your identity is verified.",
		}
	case db_models.VerificationPending:
		return VerificationPolicy{
			Status:  string(db_models.VerificationPending),
			Message: "Your ID is under review. We will notify you once approved.",
		}
	case db_models.VerificationRejected:
		reason := user.IDRejectionReason
		if reason == "" {
			reason = "your submitted ID could not be verified"
		}
		return VerificationPolicy{
			Status:         string(db_models.VerificationRejected),
			RequiresAction: true,
			Message:        "Your ID verification was rejected: " + reason + ". Please submit a new document.",
		}
	default:
		return VerificationPolicy{
			Status:         "not_verified",
			RequiresAction: true,
			Message:        "Verify your identity to book vehicles or list your own.",
		}
	}
}

// CanPerformAction is true for anything outside the restricted set;
// restricted actions require an exactly approved status.
func CanPerformAction(user *db_models.User, action string) bool {
	if !restrictedActions[action] {
		return true
	}
	return user != nil && user.IDVerificationStatus == db_models.VerificationApproved
}

// ActionErrorMessage returns a state and action specific explanation.
// Non-empty for every combination, including unknown actions.
func ActionErrorMessage(user *db_models.User, action string) string {
	var verb string
	switch action {
	case ActionBook:
		verb = "book a vehicle"
	case ActionAddVehicle:
		verb = "list a vehicle"
	case ActionMessageHost:
		verb = "message a host"
	default:
		verb = "do that"
	}

	if user == nil {
		return "You need to log in before you can " + verb + "."
	}

	switch user.IDVerificationStatus {
	case db_models.VerificationApproved:
		return "You are verified and can " + verb + "."
	case db_models.VerificationPending:
		return "You cannot " + verb + " while your ID is still under review."
	case db_models.VerificationRejected:
		return "You cannot " + verb + " because your ID verification was rejected. Please submit a new document."
	default:
		return "You need to verify your identity before you can " + verb + "."
	}
}
