// Package verifier checks RSA-SHA256 signatures attached to webhook
// notifications from the payment gateway.
//
// Verification is fail-closed: malformed base64, an unparseable public key
// and a genuine signature mismatch all yield false. Callers therefore act
// on a single boolean and cannot accidentally treat an unverified
// notification as accepted because an error slipped past them. This is
// deliberately asymmetric with the signer package, where failures are
// returned as errors.
//
//	v := verifier.NewDefaultVerifier()
//	ok := v.VerifySignature(stringToSign, signatureB64, publicKeyPEM)
//	if !ok {
//	    // reject the notification
//	}
package verifier
