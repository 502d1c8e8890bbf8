package snapbi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintechkit/midtrans-client-go/internal/testkeys"
	"github.com/fintechkit/midtrans-client-go/pkg/signer"
)

func TestBuildTransactionHeader(t *testing.T) {
	s := signer.NewDefaultSigner()

	h, err := buildTransactionHeader(s, transactionHeaderParams{
		ExternalID:   "ext-1",
		Timestamp:    "2024-01-01T00:00:00Z",
		AccessToken:  "AT1",
		Body:         map[string]any{"a": 1},
		Path:         "/v1.0/debit/payment-host-to-host",
		ClientSecret: "S1",
		PartnerID:    "P1",
		DeviceID:     "D1",
		ChannelID:    "CH1",
		DebugID:      "dbg-1",
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, "application/json", h.Get("Content-Type"))
	assert.Equal(t, "application/json", h.Get("Accept"))
	assert.Equal(t, "P1", h.Get("X-PARTNER-ID"))
	assert.Equal(t, "ext-1", h.Get("X-EXTERNAL-ID"))
	assert.Equal(t, "D1", h.Get("X-DEVICE-ID"))
	assert.Equal(t, "CH1", h.Get("CHANNEL-ID"))
	assert.Equal(t, "dbg-1", h.Get("debug-id"))
	assert.Equal(t, "Bearer AT1", h.Get("Authorization"))
	assert.Equal(t, "2024-01-01T00:00:00Z", h.Get("X-TIMESTAMP"))

	// X-SIGNATURE is the symmetric signature over method "post"
	want, err := s.SignTransaction(signer.TransactionSignature{
		Method:       "post",
		Path:         "/v1.0/debit/payment-host-to-host",
		AccessToken:  "AT1",
		Body:         map[string]any{"a": 1},
		ClientSecret: "S1",
		Timestamp:    "2024-01-01T00:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, want, h.Get("X-SIGNATURE"))
}

func TestBuildTransactionHeader_OptionalIdentifiersOmitted(t *testing.T) {
	s := signer.NewDefaultSigner()

	h, err := buildTransactionHeader(s, transactionHeaderParams{
		ExternalID:   "ext-1",
		Timestamp:    "T1",
		AccessToken:  "AT1",
		Path:         "/v1.0/debit/status",
		ClientSecret: "S1",
		PartnerID:    "P1",
		ChannelID:    "CH1",
	}, nil)

	require.NoError(t, err)
	_, hasDevice := h["X-Device-Id"]
	_, hasDebug := h["Debug-Id"]
	assert.False(t, hasDevice)
	assert.False(t, hasDebug)
}

func TestBuildTransactionHeader_OverridesWin(t *testing.T) {
	s := signer.NewDefaultSigner()

	h, err := buildTransactionHeader(s, transactionHeaderParams{
		ExternalID:   "ext-1",
		Timestamp:    "T1",
		AccessToken:  "AT1",
		Path:         "/v1.0/debit/status",
		ClientSecret: "S1",
		PartnerID:    "P1",
		ChannelID:    "CH1",
	}, map[string]string{
		"X-PARTNER-ID": "override-partner",
		"X-Custom":     "custom-value",
	})

	require.NoError(t, err)
	assert.Equal(t, "override-partner", h.Get("X-PARTNER-ID"))
	assert.Equal(t, "custom-value", h.Get("X-Custom"))
	// untouched defaults survive
	assert.Equal(t, "Bearer AT1", h.Get("Authorization"))
}

func TestBuildAccessTokenHeader(t *testing.T) {
	s := signer.NewDefaultSigner()

	h, err := buildAccessTokenHeader(s, accessTokenHeaderParams{
		ClientID:   "C1",
		Timestamp:  "2024-01-01T00:00:00Z",
		PrivateKey: testkeys.PrivateKeyPKCS8,
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, "C1", h.Get("X-CLIENT-KEY"))
	assert.Equal(t, "2024-01-01T00:00:00Z", h.Get("X-TIMESTAMP"))

	want, err := s.SignAccessTokenRequest("C1", "2024-01-01T00:00:00Z", testkeys.PrivateKeyPKCS8)
	require.NoError(t, err)
	assert.Equal(t, want, h.Get("X-SIGNATURE"))
}

func TestBuildAccessTokenHeader_BadKeyPropagates(t *testing.T) {
	s := signer.NewDefaultSigner()

	_, err := buildAccessTokenHeader(s, accessTokenHeaderParams{
		ClientID:   "C1",
		Timestamp:  "T1",
		PrivateKey: "garbage",
	}, nil)

	assert.Error(t, err)
}
