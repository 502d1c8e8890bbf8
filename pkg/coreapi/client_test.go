package coreapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintechkit/midtrans-client-go/pkg/midtrans"
)

const testServerKey = "SB-server-key"

func testClient(srvURL string) *Client {
	c := &Client{}
	c.New(testServerKey, midtrans.Sandbox)
	c.ClientKey = "SB-client-key"
	c.BaseURL = srvURL
	return c
}

func TestChargeTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/charge", r.URL.Path)
		assert.Equal(t, midtrans.BasicAuth(testServerKey), r.Header.Get("Authorization"))

		var req ChargeReq
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, PaymentTypeGopay, req.PaymentType)
		assert.Equal(t, "order-1", req.TransactionDetails.OrderID)

		_, _ = w.Write([]byte(`{
			"status_code": "201",
			"status_message": "GoPay transaction is created",
			"transaction_id": "tx-1",
			"order_id": "order-1",
			"gross_amount": "10000.00",
			"payment_type": "gopay",
			"transaction_status": "pending",
			"actions": [{"name": "deeplink-redirect", "method": "GET", "url": "https://example/deeplink"}]
		}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)

	resp, err := c.ChargeTransaction(context.Background(), &ChargeReq{
		PaymentType: PaymentTypeGopay,
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  "order-1",
			GrossAmt: 10000,
		},
	})

	require.Nil(t, err)
	assert.Equal(t, "201", resp.StatusCode)
	assert.Equal(t, "pending", resp.TransactionStatus)
	require.Len(t, resp.Actions, 1)
	assert.Equal(t, "deeplink-redirect", resp.Actions[0].Name)
}

func TestCheckTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v2/order-1/status", r.URL.Path)

		_, _ = w.Write([]byte(`{"status_code":"200","order_id":"order-1","transaction_status":"settlement"}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)

	resp, err := c.CheckTransaction(context.Background(), "order-1")

	require.Nil(t, err)
	assert.Equal(t, "settlement", resp.TransactionStatus)
}

func TestLifecycleOperations(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, http.MethodPost, r.Method)
		_, _ = w.Write([]byte(`{"status_code":"200"}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	ctx := context.Background()

	steps := []struct {
		call func() (*TransactionResponse, *midtrans.Error)
		path string
	}{
		{func() (*TransactionResponse, *midtrans.Error) { return c.ApproveTransaction(ctx, "o1") }, "/v2/o1/approve"},
		{func() (*TransactionResponse, *midtrans.Error) { return c.DenyTransaction(ctx, "o1") }, "/v2/o1/deny"},
		{func() (*TransactionResponse, *midtrans.Error) { return c.CancelTransaction(ctx, "o1") }, "/v2/o1/cancel"},
		{func() (*TransactionResponse, *midtrans.Error) { return c.ExpireTransaction(ctx, "o1") }, "/v2/o1/expire"},
	}

	for _, s := range steps {
		_, err := s.call()
		require.Nil(t, err)
		assert.Equal(t, s.path, gotPath)
	}
}

func TestRefundTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/order-1/refund", r.URL.Path)

		var req RefundReq
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(5000), req.Amount)

		_, _ = w.Write([]byte(`{"status_code":"200","refund_amount":"5000.00"}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)

	resp, err := c.RefundTransaction(context.Background(), "order-1", &RefundReq{Amount: 5000, Reason: "out of stock"})

	require.Nil(t, err)
	assert.Equal(t, "5000.00", resp.RefundAmount)
}

func TestCardToken_ClientKeyInQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/token", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "SB-client-key", q.Get("client_key"))
		assert.Equal(t, "4811111111111114", q.Get("card_number"))
		// tokenization authenticates through the query, not Basic auth
		assert.Empty(t, r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{"status_code":"200","token_id":"tok-1"}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)

	resp, err := c.CardToken(context.Background(), "4811111111111114", "12", "2030", "123")

	require.Nil(t, err)
	assert.Equal(t, "tok-1", resp.TokenID)
}

func TestChargeTransaction_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status_code":"401","status_message":"Access denied due to unauthorized transaction"}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)

	_, err := c.ChargeTransaction(context.Background(), &ChargeReq{})

	require.NotNil(t, err)
	assert.Equal(t, "401", err.GatewayCode)
	assert.Contains(t, err.Message, "Access denied")
}
