// Package snapbi is the client for the gateway's SNAP open-banking
// endpoints (direct debit, virtual account and QRIS rails).
//
// Every transactional call is authenticated by the canonical signature
// protocol: an RSA-SHA256 signature obtains the B2B access token, and an
// HMAC-SHA512 signature over
// "POST:path:accessToken:sha256hex(body):timestamp" authenticates each
// payment operation. The token is cached per client and refreshed shortly
// before it expires.
//
// # Creating a payment
//
//	cfg := &snapbi.Config{
//	    ClientID:     os.Getenv("SNAP_BI_CLIENT_ID"),
//	    ClientSecret: os.Getenv("SNAP_BI_CLIENT_SECRET"),
//	    PrivateKey:   os.Getenv("SNAP_BI_PRIVATE_KEY"),
//	    PartnerID:    os.Getenv("SNAP_BI_PARTNER_ID"),
//	    ChannelID:    "12345",
//	    Env:          midtrans.Sandbox,
//	}
//
//	c, err := snapbi.NewDirectDebit(cfg)
//	resp, err := c.CreatePayment(ctx, "", body)
//
// An empty external ID is replaced by a generated UUID. Header overrides
// supplied through WithTransactionHeaders or WithAccessTokenHeaders are
// merged after the generated defaults and win.
//
// # Verifying a webhook notification
//
//	ok, err := c.VerifyWebhookNotification(payload, signature, timestamp, path)
//
// The two outcomes are deliberately distinct: err is non-nil only when no
// public key is configured (an operator problem), while a forged or damaged
// signature is reported as ok == false.
package snapbi
