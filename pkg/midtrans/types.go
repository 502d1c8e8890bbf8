package midtrans

// TransactionDetails is the mandatory section of every charge: the
// merchant's order ID and the gross amount in IDR (no decimals).
type TransactionDetails struct {
	OrderID  string `json:"order_id"`
	GrossAmt int64  `json:"gross_amount"`
}

// ItemDetails describes one line item of a transaction
type ItemDetails struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	Qty          int32  `json:"quantity"`
	Brand        string `json:"brand,omitempty"`
	Category     string `json:"category,omitempty"`
	MerchantName string `json:"merchant_name,omitempty"`
}

// CustomerAddress is the billing or shipping address of a customer
type CustomerAddress struct {
	FName       string `json:"first_name,omitempty"`
	LName       string `json:"last_name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	Postcode    string `json:"postal_code,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
}

// CustomerDetails holds the customer identity attached to a transaction
type CustomerDetails struct {
	FName    string           `json:"first_name,omitempty"`
	LName    string           `json:"last_name,omitempty"`
	Email    string           `json:"email,omitempty"`
	Phone    string           `json:"phone,omitempty"`
	BillAddr *CustomerAddress `json:"billing_address,omitempty"`
	ShipAddr *CustomerAddress `json:"shipping_address,omitempty"`
}

// CustomExpiry overrides the gateway's default payment window
type CustomExpiry struct {
	OrderTime      string `json:"order_time,omitempty"`
	ExpiryDuration int    `json:"expiry_duration,omitempty"`
	Unit           string `json:"unit,omitempty"`
}
