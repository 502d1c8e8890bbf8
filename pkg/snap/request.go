package snap

import "github.com/fintechkit/midtrans-client-go/pkg/midtrans"

// CreditCardDetails configures card payments inside the hosted checkout
type CreditCardDetails struct {
	Secure        bool         `json:"secure,omitempty"`
	Bank          string       `json:"bank,omitempty"`
	Channel       string       `json:"channel,omitempty"`
	Type          string       `json:"type,omitempty"`
	WhitelistBins []string     `json:"whitelist_bins,omitempty"`
	SaveCard      bool         `json:"save_card,omitempty"`
	Installment   *Installment `json:"installment,omitempty"`
}

// Installment configures installment terms per acquiring bank
type Installment struct {
	Required bool              `json:"required"`
	Terms    map[string][]int8 `json:"terms,omitempty"`
}

// Callbacks overrides the URL the payer returns to after checkout
type Callbacks struct {
	Finish string `json:"finish,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Expiry overrides the checkout payment window
type Expiry struct {
	StartTime string `json:"start_time,omitempty"`
	Unit      string `json:"unit"`
	Duration  int64  `json:"duration"`
}

// Request creates a hosted-checkout transaction
type Request struct {
	TransactionDetails midtrans.TransactionDetails `json:"transaction_details"`

	ItemDetails     []midtrans.ItemDetails    `json:"item_details,omitempty"`
	CustomerDetails *midtrans.CustomerDetails `json:"customer_details,omitempty"`

	EnabledPayments []string           `json:"enabled_payments,omitempty"`
	CreditCard      *CreditCardDetails `json:"credit_card,omitempty"`
	Callbacks       *Callbacks         `json:"callbacks,omitempty"`
	Expiry          *Expiry            `json:"expiry,omitempty"`

	CustomField1 string         `json:"custom_field1,omitempty"`
	CustomField2 string         `json:"custom_field2,omitempty"`
	CustomField3 string         `json:"custom_field3,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// Response is the created checkout session
type Response struct {
	Token         string   `json:"token"`
	RedirectURL   string   `json:"redirect_url"`
	StatusCode    string   `json:"status_code,omitempty"`
	ErrorMessages []string `json:"error_messages,omitempty"`
}
