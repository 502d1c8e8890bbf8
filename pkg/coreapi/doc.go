// Package coreapi is the client for the gateway's Core API: direct charges,
// transaction lifecycle operations (approve, deny, cancel, expire, refund)
// and card tokenization.
//
//	var c coreapi.Client
//	c.New(serverKey, midtrans.Sandbox)
//
//	resp, err := c.ChargeTransaction(ctx, &coreapi.ChargeReq{
//	    PaymentType: coreapi.PaymentTypeGopay,
//	    TransactionDetails: midtrans.TransactionDetails{
//	        OrderID:  "order-1",
//	        GrossAmt: 10000,
//	    },
//	})
//
// Webhook notifications carry a signature_key; verify it and re-query the
// transaction before trusting the reported status:
//
//	ok := coreapi.VerifySignatureKey(orderID, statusCode, grossAmount, serverKey, signatureKey)
//	status, err := c.CheckTransaction(ctx, orderID)
package coreapi
