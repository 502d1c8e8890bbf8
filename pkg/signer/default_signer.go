package signer

import (
	"crypto"
	"crypto/hmac"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
)

// DefaultSigner implements Signer with the standard library crypto primitives
type DefaultSigner struct{}

// NewDefaultSigner creates a new DefaultSigner
func NewDefaultSigner() *DefaultSigner {
	return &DefaultSigner{}
}

// SignTransaction returns the base64 HMAC-SHA512 signature over
// "METHOD:PATH:ACCESS_TOKEN:SHA256_HEX(MINIFIED_BODY):TIMESTAMP".
func (s *DefaultSigner) SignTransaction(p TransactionSignature) (string, error) {
	body, err := Canonicalize(p.Body)
	if err != nil {
		return "", eris.Wrap(err, "canonicalizing request body")
	}

	stringToSign := fmt.Sprintf("%s:%s:%s:%s:%s",
		strings.ToUpper(p.Method),
		p.Path,
		p.AccessToken,
		HashSHA256Hex(body),
		p.Timestamp,
	)

	mac := hmac.New(sha512.New, []byte(p.ClientSecret))
	mac.Write([]byte(stringToSign))

	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}

// SignAccessTokenRequest returns the base64 RSA-SHA256 (PKCS#1 v1.5)
// signature over "clientID|timestamp".
func (s *DefaultSigner) SignAccessTokenRequest(clientID, timestamp, privateKeyPEM string) (string, error) {
	key, err := ParseRSAPrivateKey(privateKeyPEM)
	if err != nil {
		return "", eris.Wrap(err, "importing private key")
	}

	stringToSign := clientID + "|" + timestamp
	digest := sha256.Sum256([]byte(stringToSign))

	sig, err := rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA256, digest[:])
	if err != nil {
		return "", eris.Wrap(err, "signing access-token request")
	}

	return base64.StdEncoding.EncodeToString(sig), nil
}
