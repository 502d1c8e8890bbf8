package coreapi

import "github.com/fintechkit/midtrans-client-go/pkg/midtrans"

// PaymentType selects the rail of a direct charge
type PaymentType string

const (
	PaymentTypeBankTransfer PaymentType = "bank_transfer"
	PaymentTypeCreditCard   PaymentType = "credit_card"
	PaymentTypeGopay        PaymentType = "gopay"
	PaymentTypeShopeepay    PaymentType = "shopeepay"
	PaymentTypeQris         PaymentType = "qris"
	PaymentTypeEChannel     PaymentType = "echannel"
	PaymentTypeConvenience  PaymentType = "cstore"
)

// BankTransferDetail configures a bank_transfer charge
type BankTransferDetail struct {
	Bank     string `json:"bank"`
	VaNumber string `json:"va_number,omitempty"`
}

// EChannelDetail configures a Mandiri bill-payment charge
type EChannelDetail struct {
	BillInfo1 string `json:"bill_info1"`
	BillInfo2 string `json:"bill_info2"`
}

// CreditCardDetails configures a credit_card charge
type CreditCardDetails struct {
	TokenID         string   `json:"token_id"`
	Authentication  bool     `json:"authentication,omitempty"`
	Bank            string   `json:"bank,omitempty"`
	InstallmentTerm int8     `json:"installment_term,omitempty"`
	Bins            []string `json:"bins,omitempty"`
	Type            string   `json:"type,omitempty"`
	SaveTokenID     bool     `json:"save_token_id,omitempty"`
}

// GopayDetails configures a gopay charge
type GopayDetails struct {
	EnableCallback bool   `json:"enable_callback,omitempty"`
	CallbackUrl    string `json:"callback_url,omitempty"`
	AccountID      string `json:"account_id,omitempty"`
	PaymentOptionToken string `json:"payment_option_token,omitempty"`
}

// ShopeePayDetails configures a shopeepay charge
type ShopeePayDetails struct {
	CallbackUrl string `json:"callback_url,omitempty"`
}

// QrisDetails configures a qris charge
type QrisDetails struct {
	Acquirer string `json:"acquirer,omitempty"`
}

// ConvStoreDetails configures a cstore charge
type ConvStoreDetails struct {
	Store             string `json:"store"`
	Message           string `json:"message,omitempty"`
	AlfamartFreeText1 string `json:"alfamart_free_text_1,omitempty"`
	AlfamartFreeText2 string `json:"alfamart_free_text_2,omitempty"`
	AlfamartFreeText3 string `json:"alfamart_free_text_3,omitempty"`
}

// ChargeReq is the Core API charge request. Exactly one payment-type
// section should be filled, matching PaymentType.
type ChargeReq struct {
	PaymentType        PaymentType                 `json:"payment_type"`
	TransactionDetails midtrans.TransactionDetails `json:"transaction_details"`

	ItemDetails     []midtrans.ItemDetails    `json:"item_details,omitempty"`
	CustomerDetails *midtrans.CustomerDetails `json:"customer_details,omitempty"`

	BankTransfer *BankTransferDetail `json:"bank_transfer,omitempty"`
	EChannel     *EChannelDetail     `json:"echannel,omitempty"`
	CreditCard   *CreditCardDetails  `json:"credit_card,omitempty"`
	Gopay        *GopayDetails       `json:"gopay,omitempty"`
	ShopeePay    *ShopeePayDetails   `json:"shopeepay,omitempty"`
	Qris         *QrisDetails        `json:"qris,omitempty"`
	ConvStore    *ConvStoreDetails   `json:"cstore,omitempty"`

	CustomExpiry *midtrans.CustomExpiry `json:"custom_expiry,omitempty"`
	CustomField1 string                 `json:"custom_field1,omitempty"`
	CustomField2 string                 `json:"custom_field2,omitempty"`
	CustomField3 string                 `json:"custom_field3,omitempty"`
	Metadata     map[string]any         `json:"metadata,omitempty"`
}

// CaptureReq captures a pre-authorized credit-card transaction
type CaptureReq struct {
	TransactionID string  `json:"transaction_id"`
	GrossAmt      float64 `json:"gross_amount"`
}

// RefundReq refunds a settled transaction, fully when Amount is zero
type RefundReq struct {
	RefundKey string `json:"refund_key,omitempty"`
	Amount    int64  `json:"amount,omitempty"`
	Reason    string `json:"reason,omitempty"`
}
