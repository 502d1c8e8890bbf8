package signer

// TransactionSignature holds the inputs of the symmetric transaction
// signature. The protocol is order-sensitive: every field participates in
// the string-to-sign at a fixed position.
type TransactionSignature struct {
	// Method is the HTTP method; it is uppercased before signing
	Method string

	// Path is the endpoint path relative to the gateway host
	Path string

	// AccessToken is the bearer token obtained from the access-token endpoint
	AccessToken string

	// Body is the request payload. Raw []byte, json.RawMessage and string
	// values are minified as-is; anything else is JSON-serialized first.
	Body any

	// ClientSecret is the shared secret issued to the merchant
	ClientSecret string

	// Timestamp is the RFC 3339 timestamp transmitted as X-TIMESTAMP
	Timestamp string
}

// SymmetricSigner signs transactional calls with the merchant's client secret
type SymmetricSigner interface {
	// SignTransaction returns the base64 HMAC-SHA512 signature for p
	SignTransaction(p TransactionSignature) (string, error)
}

// AsymmetricSigner signs access-token requests with the merchant's private key
type AsymmetricSigner interface {
	// SignAccessTokenRequest returns the base64 RSA-SHA256 signature over
	// "clientID|timestamp" using the PEM-encoded private key
	SignAccessTokenRequest(clientID, timestamp, privateKeyPEM string) (string, error)
}

// Signer combines both signature schemes. Clients hold a Signer rather than
// concrete implementations so tests can substitute deterministic key material.
type Signer interface {
	SymmetricSigner
	AsymmetricSigner
}
