package snapbi

import (
	"net/http"

	"github.com/rotisserie/eris"

	"github.com/fintechkit/midtrans-client-go/pkg/signer"
)

type transactionHeaderParams struct {
	ExternalID   string
	Timestamp    string
	AccessToken  string
	Body         any
	Path         string
	ClientSecret string
	PartnerID    string
	DeviceID     string
	ChannelID    string
	DebugID      string
}

// buildTransactionHeader produces the signed header set for a transactional
// call. The protocol signs method "post" for every transaction endpoint.
func buildTransactionHeader(s signer.SymmetricSigner, p transactionHeaderParams, overrides map[string]string) (http.Header, error) {
	sig, err := s.SignTransaction(signer.TransactionSignature{
		Method:       "post",
		Path:         p.Path,
		AccessToken:  p.AccessToken,
		Body:         p.Body,
		ClientSecret: p.ClientSecret,
		Timestamp:    p.Timestamp,
	})
	if err != nil {
		return nil, eris.Wrap(err, "signing transaction")
	}

	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	h.Set("X-PARTNER-ID", p.PartnerID)
	h.Set("X-EXTERNAL-ID", p.ExternalID)
	h.Set("CHANNEL-ID", p.ChannelID)
	h.Set("Authorization", "Bearer "+p.AccessToken)
	h.Set("X-TIMESTAMP", p.Timestamp)
	h.Set("X-SIGNATURE", sig)
	if p.DeviceID != "" {
		h.Set("X-DEVICE-ID", p.DeviceID)
	}
	if p.DebugID != "" {
		h.Set("debug-id", p.DebugID)
	}

	applyOverrides(h, overrides)

	return h, nil
}

type accessTokenHeaderParams struct {
	ClientID   string
	Timestamp  string
	PrivateKey string
	DebugID    string
}

// buildAccessTokenHeader produces the RSA-signed header set for the B2B
// access-token request.
func buildAccessTokenHeader(s signer.AsymmetricSigner, p accessTokenHeaderParams, overrides map[string]string) (http.Header, error) {
	sig, err := s.SignAccessTokenRequest(p.ClientID, p.Timestamp, p.PrivateKey)
	if err != nil {
		return nil, eris.Wrap(err, "signing access-token request")
	}

	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	h.Set("X-CLIENT-KEY", p.ClientID)
	h.Set("X-TIMESTAMP", p.Timestamp)
	h.Set("X-SIGNATURE", sig)
	if p.DebugID != "" {
		h.Set("debug-id", p.DebugID)
	}

	applyOverrides(h, overrides)

	return h, nil
}

// applyOverrides merges caller-supplied headers last, so they win over the
// generated defaults.
func applyOverrides(h http.Header, overrides map[string]string) {
	for k, v := range overrides {
		h.Set(k, v)
	}
}
