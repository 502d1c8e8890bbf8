package snapbi

// accessTokenPath is shared by every channel
const accessTokenPath = "/v1.0/access-token/b2b"

// Channel groups the endpoint paths of one payment rail. An empty path
// means the rail has no such operation.
type Channel struct {
	Name    string
	Payment string
	Status  string
	Cancel  string
	Refund  string
}

var (
	// DirectDebit covers host-to-host debit payments (GoPay, ShopeePay, ...)
	DirectDebit = Channel{
		Name:    "direct_debit",
		Payment: "/v1.0/debit/payment-host-to-host",
		Status:  "/v1.0/debit/status",
		Cancel:  "/v1.0/debit/cancel",
		Refund:  "/v1.0/debit/refund",
	}

	// VirtualAccount covers bank-transfer virtual accounts. The rail has no
	// refund endpoint.
	VirtualAccount = Channel{
		Name:    "va",
		Payment: "/v1.0/transfer-va/create-va",
		Status:  "/v1.0/transfer-va/status",
		Cancel:  "/v1.0/transfer-va/delete-va",
	}

	// Qris covers QRIS merchant-presented payments
	Qris = Channel{
		Name:    "qris",
		Payment: "/v1.0/qr/qr-mpm-generate",
		Status:  "/v1.0/qr/qr-mpm-query",
		Cancel:  "/v1.0/qr/qr-mpm-cancel",
		Refund:  "/v1.0/qr/qr-mpm-refund",
	}
)
