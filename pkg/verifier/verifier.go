package verifier

// SignatureVerifier verifies an asymmetric signature over a composed string
type SignatureVerifier interface {
	// VerifySignature reports whether signature (standard base64) is a valid
	// RSA-SHA256 signature over data under the PEM-encoded SPKI public key.
	// Every failure mode, including undecodable input, reports false.
	VerifySignature(data, signature, publicKeyPEM string) bool
}
