package request_models

type AddPayoutMethodRequest struct {
	AccountName  string `json:"account_name" binding:"required"`
	MobileNumber string `json:"mobile_number" binding:"required,phmobile"`
	IsPrimary    bool   `json:"is_primary"`
}

type UpdatePayoutMethodRequest struct {
	AccountName  *string `json:"account_name"`
	MobileNumber *string `json:"mobile_number" binding:"omitempty,phmobile"`
	IsPrimary    *bool   `json:"is_primary"`
}

type ProcessPayoutRequest struct {
	MethodID        string  `json:"method_id" binding:"required,uuid4"`
	Amount          float64 `json:"amount" binding:"required"`
	ReferenceNumber string  `json:"reference_number" binding:"required"`
	Notes           string  `json:"notes"`
}

type SettleRefundRequest struct {
	ReferenceNumber string `json:"reference_number" binding:"required"`
	Method          string `json:"method"`
	Notes           string `json:"notes"`
}
