package iris

// Beneficiaries is a saved payout destination. Name is unique per partner
// and identifies the record on update.
type Beneficiaries struct {
	Name      string `json:"name" validate:"required"`
	Account   string `json:"account" validate:"required"`
	Bank      string `json:"bank" validate:"required"`
	AliasName string `json:"alias_name" validate:"required"`
	Email     string `json:"email,omitempty"`
}

// BeneficiariesResponse is returned by beneficiary create and update calls
type BeneficiariesResponse struct {
	Status string   `json:"status"`
	Errors []string `json:"errors,omitempty"`
}

// CreatePayoutDetailReq is a single payout inside a CreatePayoutReq batch
type CreatePayoutDetailReq struct {
	BeneficiaryName    string `json:"beneficiary_name" validate:"required"`
	BeneficiaryAccount string `json:"beneficiary_account" validate:"required"`
	BeneficiaryBank    string `json:"beneficiary_bank" validate:"required"`
	BeneficiaryEmail   string `json:"beneficiary_email,omitempty" validate:"omitempty,email"`
	Amount             string `json:"amount" validate:"required"`
	Notes              string `json:"notes" validate:"required"`
	BankAccountID      string `json:"bank_account_id,omitempty"`
}

// CreatePayoutReq submits a batch of payouts for later approval
type CreatePayoutReq struct {
	Payouts []CreatePayoutDetailReq `json:"payouts" validate:"required,min=1,dive"`
}

// CreatePayoutDetailResp carries the reference number assigned to one
// queued payout
type CreatePayoutDetailResp struct {
	Status      string `json:"status"`
	ReferenceNo string `json:"reference_no"`
}

// CreatePayoutResponse is returned by CreatePayout
type CreatePayoutResponse struct {
	Payouts      []CreatePayoutDetailResp `json:"payouts"`
	ErrorMessage string                   `json:"error_message,omitempty"`
	Errors       interface{}              `json:"errors,omitempty"`
}

// ApprovePayoutReq approves queued payouts by reference number. OTP is
// required unless the partner disables it.
type ApprovePayoutReq struct {
	ReferenceNo []string `json:"reference_nos" validate:"required,min=1"`
	OTP         string   `json:"otp,omitempty"`
}

// ApprovePayoutResponse is returned by ApprovePayout
type ApprovePayoutResponse struct {
	Status       string      `json:"status"`
	ErrorMessage string      `json:"error_message,omitempty"`
	Errors       interface{} `json:"errors,omitempty"`
}

// RejectPayoutReq rejects queued payouts by reference number
type RejectPayoutReq struct {
	ReferenceNo  []string `json:"reference_nos" validate:"required,min=1"`
	RejectReason string   `json:"reject_reason" validate:"required"`
}

// RejectPayoutResponse is returned by RejectPayout
type RejectPayoutResponse struct {
	Status       string      `json:"status"`
	ErrorMessage string      `json:"error_message,omitempty"`
	Errors       interface{} `json:"errors,omitempty"`
}

// PayoutDetailResponse is the full record of a single payout
type PayoutDetailResponse struct {
	Amount             string `json:"amount"`
	BeneficiaryName    string `json:"beneficiary_name"`
	BeneficiaryAccount string `json:"beneficiary_account"`
	Bank               string `json:"bank"`
	ReferenceNo        string `json:"reference_no"`
	Notes              string `json:"notes"`
	BeneficiaryEmail   string `json:"beneficiary_email"`
	Status             string `json:"status"`
	CreatedBy          string `json:"created_by"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at"`
	ErrorMessage       string `json:"error_message,omitempty"`
	Errors             string `json:"errors,omitempty"`
}

// BalanceResponse is returned by the balance endpoints
type BalanceResponse struct {
	Balance string `json:"balance"`
}

// TransactionHistoryResponse is one row of the partner's money movement log
type TransactionHistoryResponse struct {
	Account         string `json:"account"`
	Type            string `json:"transaction_type"`
	Amount          string `json:"amount"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
	ReferenceNo     string `json:"reference_no"`
	BeneficiaryName string `json:"beneficiary_name"`
}

// TopUpAccountResponse describes one virtual account the partner can top
// up through
type TopUpAccountResponse struct {
	ID                      int      `json:"id"`
	VirtualAccountType      string   `json:"virtual_account_type"`
	VirtualAccountNumber    string   `json:"virtual_account_number"`
	SupportedTransferMethod []string `json:"supported_transfer_method,omitempty"`
}

// BeneficiaryBankResponse is one bank supported as a payout destination
type BeneficiaryBankResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// BeneficiaryBanksResponse wraps the supported bank list
type BeneficiaryBanksResponse struct {
	BeneficiaryBanks []BeneficiaryBankResponse `json:"beneficiary_banks"`
}

// AccountValidationResponse is returned by ValidateBankAccount
type AccountValidationResponse struct {
	AccountName  string `json:"account_name"`
	AccountNo    string `json:"account_no"`
	BankName     string `json:"bank_name"`
	ErrorMessage string `json:"error_message,omitempty"`
	Errors       string `json:"errors,omitempty"`
}
