package coreapi

// VANumber is one virtual-account number issued for a bank-transfer charge
type VANumber struct {
	Bank     string `json:"bank"`
	VANumber string `json:"va_number"`
}

// Action is a follow-up URL the payer must be sent to (deeplinks, QR codes)
type Action struct {
	Name   string   `json:"name"`
	Method string   `json:"method"`
	URL    string   `json:"url"`
	Fields []string `json:"fields,omitempty"`
}

// TransactionResponse is the common response of charge, status and
// lifecycle operations. The gateway reports its application-level verdict
// in StatusCode even when the HTTP status is 200.
type TransactionResponse struct {
	StatusCode        string `json:"status_code"`
	StatusMessage     string `json:"status_message"`
	TransactionID     string `json:"transaction_id"`
	OrderID           string `json:"order_id"`
	MerchantID        string `json:"merchant_id,omitempty"`
	GrossAmount       string `json:"gross_amount"`
	Currency          string `json:"currency,omitempty"`
	PaymentType       string `json:"payment_type"`
	TransactionTime   string `json:"transaction_time"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status,omitempty"`
	SettlementTime    string `json:"settlement_time,omitempty"`
	SignatureKey      string `json:"signature_key,omitempty"`

	VaNumbers       []VANumber `json:"va_numbers,omitempty"`
	PermataVaNumber string     `json:"permata_va_number,omitempty"`
	BillKey         string     `json:"bill_key,omitempty"`
	BillerCode      string     `json:"biller_code,omitempty"`
	PaymentCode     string     `json:"payment_code,omitempty"`
	Store           string     `json:"store,omitempty"`
	QRString        string     `json:"qr_string,omitempty"`
	Actions         []Action   `json:"actions,omitempty"`

	Bank           string `json:"bank,omitempty"`
	MaskedCard     string `json:"masked_card,omitempty"`
	CardType       string `json:"card_type,omitempty"`
	ApprovalCode   string `json:"approval_code,omitempty"`
	RefundAmount   string `json:"refund_amount,omitempty"`
	RefundKey      string `json:"refund_key,omitempty"`
	ChannelStatus  string `json:"channel_response_code,omitempty"`
	ChannelMessage string `json:"channel_response_message,omitempty"`
}

// CardTokenResponse is the response of the card tokenization endpoint
type CardTokenResponse struct {
	StatusCode    string `json:"status_code"`
	StatusMessage string `json:"status_message"`
	TokenID       string `json:"token_id"`
	Hash          string `json:"hash,omitempty"`
	RedirectURL   string `json:"redirect_url,omitempty"`
}

// CardRegisterResponse is the response of the card registration endpoint
type CardRegisterResponse struct {
	StatusCode    string `json:"status_code"`
	StatusMessage string `json:"status_message"`
	SavedTokenID  string `json:"saved_token_id"`
	TransactionID string `json:"transaction_id,omitempty"`
	MaskedCard    string `json:"masked_card,omitempty"`
}

// CardPointInquiryResponse reports the points available on a card token
type CardPointInquiryResponse struct {
	StatusCode      string  `json:"status_code"`
	StatusMessage   string  `json:"status_message"`
	PointBalance    float64 `json:"point_balance"`
	PointBalanceAmount string `json:"point_balance_amount,omitempty"`
	TransactionTime string  `json:"transaction_time,omitempty"`
}
