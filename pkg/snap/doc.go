// Package snap is the client for the gateway's hosted checkout. One call
// creates a transaction and yields a token plus a redirect URL the payer is
// sent to.
//
//	var c snap.Client
//	c.New(serverKey, midtrans.Sandbox)
//
//	resp, err := c.CreateTransaction(ctx, &snap.Request{
//	    TransactionDetails: midtrans.TransactionDetails{
//	        OrderID:  "order-1",
//	        GrossAmt: 10000,
//	    },
//	})
//	// resp.Token, resp.RedirectURL
package snap
