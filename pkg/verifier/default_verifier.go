package verifier

import (
	"crypto"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
)

var (
	errNoPEMBlock = errors.New("no PEM block in public key")
	errNotRSAKey  = errors.New("public key is not an RSA key")
)

// DefaultVerifier implements SignatureVerifier with the standard library
// crypto primitives
type DefaultVerifier struct{}

// NewDefaultVerifier creates a new DefaultVerifier
func NewDefaultVerifier() *DefaultVerifier {
	return &DefaultVerifier{}
}

// VerifySignature reports whether signature is a valid RSA-SHA256
// (PKCS#1 v1.5) signature over data. Fail closed: any decode, import or
// verification failure is false.
func (v *DefaultVerifier) VerifySignature(data, signature, publicKeyPEM string) bool {
	pubKey, err := parseRSAPublicKey(publicKeyPEM)
	if err != nil {
		return false
	}

	sig, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false
	}

	digest := sha256.Sum256([]byte(data))

	return rsa.VerifyPKCS1v15(pubKey, crypto.SHA256, digest[:], sig) == nil
}

func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errNoPEMBlock
	}

	key, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, err
	}

	rsaKey, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, errNotRSAKey
	}

	return rsaKey, nil
}
