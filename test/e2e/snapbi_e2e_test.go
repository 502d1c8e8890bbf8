package e2e

import (
	"context"
	"crypto"
	"crypto/hmac"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintechkit/midtrans-client-go/internal/testkeys"
	"github.com/fintechkit/midtrans-client-go/pkg/midtrans"
	"github.com/fintechkit/midtrans-client-go/pkg/snapbi"
)

const (
	clientID     = "e2e-client-id"
	clientSecret = "e2e-client-secret"
	partnerID    = "e2e-partner"
	channelID    = "12345"
	issuedToken  = "e2e-access-token"
)

// gateway emulates the SNAP side of the protocol: it re-derives every
// signature from the raw request it received and only answers when the
// client's signature matches.
type gateway struct {
	t         *testing.T
	publicKey *rsa.PublicKey

	tokenRequests   int
	paymentRequests int
}

func newGateway(t *testing.T) *gateway {
	t.Helper()

	block, _ := pem.Decode([]byte(testkeys.PublicKeyPKIX))
	require.NotNil(t, block)
	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	require.NoError(t, err)

	return &gateway{t: t, publicKey: parsed.(*rsa.PublicKey)}
}

func (g *gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/v1.0/access-token/b2b":
		g.handleToken(w, r)
	case "/v1.0/debit/payment-host-to-host", "/v1.0/debit/status":
		g.handleTransaction(w, r)
	default:
		g.t.Errorf("unexpected path %s", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}
}

func (g *gateway) handleToken(w http.ResponseWriter, r *http.Request) {
	g.tokenRequests++

	assert.Equal(g.t, clientID, r.Header.Get("X-CLIENT-KEY"))

	ts := r.Header.Get("X-TIMESTAMP")
	require.NotEmpty(g.t, ts)

	sig, err := base64.StdEncoding.DecodeString(r.Header.Get("X-SIGNATURE"))
	require.NoError(g.t, err)

	digest := sha256.Sum256([]byte(clientID + "|" + ts))
	if err := rsa.VerifyPKCS1v15(g.publicKey, crypto.SHA256, digest[:], sig); err != nil {
		g.t.Errorf("access-token signature does not verify: %v", err)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"responseCode":"4017300","responseMessage":"Unauthorized. Invalid Signature"}`))
		return
	}

	_, _ = fmt.Fprintf(w, `{"responseCode":"2007300","responseMessage":"Successful","accessToken":%q,"tokenType":"Bearer","expiresIn":"900"}`, issuedToken)
}

func (g *gateway) handleTransaction(w http.ResponseWriter, r *http.Request) {
	g.paymentRequests++

	assert.Equal(g.t, "Bearer "+issuedToken, r.Header.Get("Authorization"))
	assert.Equal(g.t, partnerID, r.Header.Get("X-PARTNER-ID"))
	assert.Equal(g.t, channelID, r.Header.Get("CHANNEL-ID"))
	assert.NotEmpty(g.t, r.Header.Get("X-EXTERNAL-ID"))

	body, err := io.ReadAll(r.Body)
	require.NoError(g.t, err)
	require.True(g.t, json.Valid(body))

	ts := r.Header.Get("X-TIMESTAMP")
	bodyHash := fmt.Sprintf("%x", sha256.Sum256(body))
	stringToSign := fmt.Sprintf("POST:%s:%s:%s:%s", r.URL.Path, issuedToken, bodyHash, ts)

	mac := hmac.New(sha512.New, []byte(clientSecret))
	mac.Write([]byte(stringToSign))
	want := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	if want != r.Header.Get("X-SIGNATURE") {
		g.t.Errorf("transaction signature mismatch for %s", r.URL.Path)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"responseCode":"4010000","responseMessage":"Unauthorized. Invalid Signature"}`))
		return
	}

	switch r.URL.Path {
	case "/v1.0/debit/payment-host-to-host":
		_, _ = w.Write([]byte(`{"responseCode":"2005400","responseMessage":"Successful","referenceNo":"ref-e2e-1","webRedirectUrl":"https://gateway.example/redirect"}`))
	default:
		_, _ = w.Write([]byte(`{"responseCode":"2005500","responseMessage":"Successful","latestTransactionStatus":"00"}`))
	}
}

func newClient(t *testing.T, gatewayURL string) *snapbi.Client {
	t.Helper()

	client, err := snapbi.NewDirectDebit(&snapbi.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		PartnerID:    partnerID,
		ChannelID:    channelID,
		PrivateKey:   testkeys.PrivateKeyPKCS8,
		PublicKey:    testkeys.PublicKeyPKIX,
		Env:          midtrans.Sandbox,
	})
	require.NoError(t, err)

	return client.WithBaseURL(gatewayURL)
}

func TestDirectDebitPaymentAgainstEmulatedGateway(t *testing.T) {
	gw := newGateway(t)
	srv := httptest.NewServer(gw)
	defer srv.Close()

	client := newClient(t, srv.URL)

	payment, err := client.CreatePayment(context.Background(), "", map[string]any{
		"partnerReferenceNo": "e2e-order-1",
		"amount":             map[string]any{"value": "125000.00", "currency": "IDR"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ref-e2e-1", payment["referenceNo"])

	status, err := client.GetStatus(context.Background(), "", map[string]any{
		"originalPartnerReferenceNo": "e2e-order-1",
		"serviceCode":                "54",
	})
	require.NoError(t, err)
	assert.Equal(t, "00", status["latestTransactionStatus"])

	// The token from the first call is cached and reused by the second.
	assert.Equal(t, 1, gw.tokenRequests)
	assert.Equal(t, 2, gw.paymentRequests)
}

func TestWebhookNotificationRoundTrip(t *testing.T) {
	gw := newGateway(t)
	srv := httptest.NewServer(gw)
	defer srv.Close()

	client := newClient(t, srv.URL)

	// The gateway signs its notification with the private key whose public
	// half the merchant configured.
	block, _ := pem.Decode([]byte(testkeys.PrivateKeyPKCS8))
	require.NotNil(t, block)
	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	require.NoError(t, err)
	priv := parsed.(*rsa.PrivateKey)

	payload := []byte(`{"originalPartnerReferenceNo":"e2e-order-1","latestTransactionStatus":"00","transactionStatusDesc":"success"}`)
	ts := "2026-08-30T12:00:00+07:00"
	path := "/callback/notification"

	bodyHash := fmt.Sprintf("%x", sha256.Sum256(payload))
	digest := sha256.Sum256([]byte(fmt.Sprintf("POST:%s:%s:%s", path, bodyHash, ts)))
	rawSig, err := rsa.SignPKCS1v15(rand.Reader, priv, crypto.SHA256, digest[:])
	require.NoError(t, err)
	sig := base64.StdEncoding.EncodeToString(rawSig)

	ok, err := client.VerifyWebhookNotification(payload, sig, ts, path)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.VerifyWebhookNotification([]byte(`{"latestTransactionStatus":"TAMPERED"}`), sig, ts, path)
	require.NoError(t, err)
	assert.False(t, ok)
}
