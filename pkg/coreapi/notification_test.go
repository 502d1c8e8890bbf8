package coreapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintechkit/midtrans-client-go/pkg/midtrans"
)

const validSignatureKey = "f939c949cebd250132890038638fa9ebcbb91c25bdf9fbb4ef2055c46270dabba444ebf87c1724a587f337b53320b95f6b05bb1d7e226efbb873715f8bb2e8ed"

func TestVerifySignatureKey(t *testing.T) {
	assert.True(t, VerifySignatureKey("order-1", "200", "10000.00", "SB-server-key", validSignatureKey))

	// any mutated input invalidates the key
	assert.False(t, VerifySignatureKey("order-2", "200", "10000.00", "SB-server-key", validSignatureKey))
	assert.False(t, VerifySignatureKey("order-1", "201", "10000.00", "SB-server-key", validSignatureKey))
	assert.False(t, VerifySignatureKey("order-1", "200", "10000.01", "SB-server-key", validSignatureKey))
	assert.False(t, VerifySignatureKey("order-1", "200", "10000.00", "other-key", validSignatureKey))
	assert.False(t, VerifySignatureKey("order-1", "200", "10000.00", "SB-server-key", ""))
}

func TestCheckNotification_RequeriesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/order-1/status", r.URL.Path)
		_, _ = w.Write([]byte(`{"status_code":"200","order_id":"order-1","transaction_status":"settlement"}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)

	payload := fmt.Sprintf(`{
		"order_id": "order-1",
		"status_code": "200",
		"gross_amount": "10000.00",
		"transaction_status": "capture",
		"signature_key": %q
	}`, validSignatureKey)

	resp, err := c.CheckNotification(context.Background(), []byte(payload))

	require.Nil(t, err)
	// the authoritative status comes from the re-query, not the payload
	assert.Equal(t, "settlement", resp.TransactionStatus)
}

func TestCheckNotification_RejectsBadSignatureKey(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := testClient(srv.URL)

	_, err := c.CheckNotification(context.Background(), []byte(`{
		"order_id": "order-1",
		"status_code": "200",
		"gross_amount": "10000.00",
		"signature_key": "forged"
	}`))

	require.NotNil(t, err)
	assert.False(t, called, "a forged notification must not trigger a status call")
	assert.IsType(t, &midtrans.Error{}, err)
}
