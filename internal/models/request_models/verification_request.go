package request_models

type SubmitVerificationRequest struct {
	DocumentType string `json:"document_type" binding:"required"`
	DocumentURL  string `json:"document_url" binding:"required,url"`
}

type RejectVerificationRequest struct {
	Reason string `json:"reason" binding:"required"`
}
