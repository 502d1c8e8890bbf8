// Package iris provides the Iris disbursement API client. Iris handles
// outbound money movement: registering beneficiaries, creating and
// approving payouts, and querying balances and transaction history.
//
// Iris uses its own API key (the Iris "creator" or "approver" key),
// not the Core API server key:
//
//	c := &iris.Client{}
//	c.New("IRIS-api-key", midtrans.Sandbox)
//
//	resp, err := c.CreatePayout(context.Background(), &iris.CreatePayoutReq{
//		Payouts: []iris.CreatePayoutDetailReq{{
//			BeneficiaryName:    "Budi Santoso",
//			BeneficiaryAccount: "1234567890",
//			BeneficiaryBank:    "bca",
//			BeneficiaryEmail:   "budi@example.com",
//			Amount:             "125000.00",
//			Notes:              "vendor settlement",
//		}},
//	})
//
// Payout creation requests pass an X-Idempotency-Key header so retried
// submissions are not paid twice. A key is generated when the caller
// does not supply one.
package iris
