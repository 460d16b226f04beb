package response_models

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Mobile             string `json:"mobile,omitempty"`
	Role               string `json:"role"`
	VerificationStatus string `json:"id_verification_status"`
	RejectionReason    string `json:"id_rejection_reason,omitempty"`
}
