// Package signer produces the request signatures required by the SNAP
// open-banking endpoints of the payment gateway.
//
// Two signature schemes are implemented:
//
//   - Symmetric (HMAC-SHA512) for transactional calls, computed over
//     "METHOD:PATH:ACCESS_TOKEN:SHA256_HEX(MINIFIED_BODY):TIMESTAMP"
//     with the merchant's client secret as the key.
//
//   - Asymmetric (RSA-SHA256, PKCS#1 v1.5) for access-token requests,
//     computed over "CLIENT_ID|TIMESTAMP" with the merchant's private key.
//
// # Signing a transactional call
//
//	s := signer.NewDefaultSigner()
//	sig, err := s.SignTransaction(signer.TransactionSignature{
//	    Method:       "post",
//	    Path:         "/v1.0/debit/payment-host-to-host",
//	    AccessToken:  token,
//	    Body:         body,
//	    ClientSecret: secret,
//	    Timestamp:    ts,
//	})
//
// The body bytes that are hashed are exactly the bytes the caller should
// transmit: Canonicalize minifies but never reorders, so the hash in the
// string-to-sign and the wire payload cannot diverge.
//
// # Signing an access-token request
//
//	sig, err := s.SignAccessTokenRequest(clientID, ts, privateKeyPEM)
//
// Both schemes output standard base64. Key-import and signing failures are
// returned as errors; there is no partial or fallback signature.
package signer
