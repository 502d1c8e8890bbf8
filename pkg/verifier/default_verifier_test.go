package verifier

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintechkit/midtrans-client-go/internal/testkeys"
	"github.com/fintechkit/midtrans-client-go/pkg/signer"
)

func TestVerifySignature_RoundTrip(t *testing.T) {
	s := signer.NewDefaultSigner()
	v := NewDefaultVerifier()

	sig, err := s.SignAccessTokenRequest("C1", "2024-01-01T00:00:00Z", testkeys.PrivateKeyPKCS8)
	require.NoError(t, err)

	assert.True(t, v.VerifySignature("C1|2024-01-01T00:00:00Z", sig, testkeys.PublicKeyPKIX))
}

func TestVerifySignature_WrongKey(t *testing.T) {
	s := signer.NewDefaultSigner()
	v := NewDefaultVerifier()

	sig, err := s.SignAccessTokenRequest("C1", "2024-01-01T00:00:00Z", testkeys.PrivateKeyPKCS8)
	require.NoError(t, err)

	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&otherKey.PublicKey)
	require.NoError(t, err)
	otherPub := string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))

	assert.False(t, v.VerifySignature("C1|2024-01-01T00:00:00Z", sig, otherPub))
}

func TestVerifySignature_TamperedData(t *testing.T) {
	s := signer.NewDefaultSigner()
	v := NewDefaultVerifier()

	sig, err := s.SignAccessTokenRequest("C1", "2024-01-01T00:00:00Z", testkeys.PrivateKeyPKCS8)
	require.NoError(t, err)

	// A single altered byte flips the verdict, it never panics or errors
	assert.False(t, v.VerifySignature("C2|2024-01-01T00:00:00Z", sig, testkeys.PublicKeyPKIX))
	assert.False(t, v.VerifySignature("C1|2024-01-01T00:00:01Z", sig, testkeys.PublicKeyPKIX))
}

func TestVerifySignature_FailsClosed(t *testing.T) {
	v := NewDefaultVerifier()

	// malformed base64 signature
	assert.False(t, v.VerifySignature("data", "%%%not-base64%%%", testkeys.PublicKeyPKIX))

	// malformed public key
	assert.False(t, v.VerifySignature("data", "AAAA", "not a key"))

	// empty everything
	assert.False(t, v.VerifySignature("", "", ""))
}
