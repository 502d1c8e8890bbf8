package coreapi

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"

	"github.com/fintechkit/midtrans-client-go/pkg/midtrans"
)

// VerifySignatureKey reports whether a notification's signature_key is the
// SHA-512 of orderID + statusCode + grossAmount + serverKey. A valid key
// proves the notification was produced by the holder of the server key.
func VerifySignatureKey(orderID, statusCode, grossAmount, serverKey, signatureKey string) bool {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:]) == signatureKey
}

// CheckNotification decodes a webhook payload, verifies its signature_key
// and re-queries the transaction, returning the gateway's authoritative
// status rather than the notification's claim. An invalid signature_key is
// reported as a *midtrans.Error before any network call.
func (c *Client) CheckNotification(ctx context.Context, payload []byte) (*TransactionResponse, *midtrans.Error) {
	var n TransactionResponse
	if err := json.Unmarshal(payload, &n); err != nil {
		return nil, &midtrans.Error{Message: "decoding notification payload", RawError: err}
	}

	if !VerifySignatureKey(n.OrderID, n.StatusCode, n.GrossAmount, c.ServerKey, n.SignatureKey) {
		return nil, &midtrans.Error{Message: "invalid notification signature_key"}
	}

	return c.CheckTransaction(ctx, n.OrderID)
}
