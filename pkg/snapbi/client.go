package snapbi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/fintechkit/midtrans-client-go/pkg/midtrans"
	"github.com/fintechkit/midtrans-client-go/pkg/signer"
	"github.com/fintechkit/midtrans-client-go/pkg/verifier"
)

// tokenRefreshMargin renews the cached access token this long before the
// gateway-reported expiry, so an in-flight call never carries a token that
// dies mid-request.
const tokenRefreshMargin = 60 * time.Second

// AccessTokenResponse is the B2B access-token endpoint response
type AccessTokenResponse struct {
	ResponseCode    string `json:"responseCode"`
	ResponseMessage string `json:"responseMessage"`
	AccessToken     string `json:"accessToken"`
	TokenType       string `json:"tokenType"`
	ExpiresIn       string `json:"expiresIn"`
}

// Response is the gateway's channel-dependent JSON payload. The SNAP rails
// disagree on response shapes, so transactional calls return the decoded
// object as-is.
type Response map[string]any

// Client calls the SNAP endpoints of one payment rail. The zero value is
// not usable; construct with New or one of the channel constructors.
//
// A Client may be shared across goroutines. The token cache is guarded; the
// configuration and overrides are read-only after the fluent setup phase.
type Client struct {
	cfg     *Config
	channel Channel

	httpClient *midtrans.HTTPClient
	signer     signer.Signer
	verifier   verifier.SignatureVerifier
	now        func() time.Time
	baseURL    string

	accessTokenOverrides map[string]string
	transactionOverrides map[string]string

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
	tokenFixed  bool
}

// New creates a Client for the given channel after validating cfg
func New(cfg *Config, channel Channel) (*Client, error) {
	if cfg == nil {
		return nil, eris.New("snapbi: nil config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		cfg:        cfg,
		channel:    channel,
		httpClient: midtrans.NewHTTPClient(),
		signer:     signer.NewDefaultSigner(),
		verifier:   verifier.NewDefaultVerifier(),
		now:        time.Now,
		baseURL:    cfg.Env.SnapBIBaseUrl(),
	}
	if cfg.Logger != nil {
		c.httpClient.Logger = cfg.Logger
	}

	return c, nil
}

// NewDirectDebit creates a Client for the direct-debit rail
func NewDirectDebit(cfg *Config) (*Client, error) {
	return New(cfg, DirectDebit)
}

// NewVirtualAccount creates a Client for the virtual-account rail
func NewVirtualAccount(cfg *Config) (*Client, error) {
	return New(cfg, VirtualAccount)
}

// NewQris creates a Client for the QRIS rail
func NewQris(cfg *Config) (*Client, error) {
	return New(cfg, Qris)
}

// WithAccessToken stores a caller-obtained token; the client will neither
// fetch nor refresh tokens while one is set.
func (c *Client) WithAccessToken(token string) *Client {
	c.accessToken = token
	c.tokenFixed = true
	return c
}

// WithAccessTokenHeaders sets header overrides for access-token requests.
// Overrides are merged after the generated headers and win.
func (c *Client) WithAccessTokenHeaders(h map[string]string) *Client {
	c.accessTokenOverrides = h
	return c
}

// WithTransactionHeaders sets header overrides for transactional calls
func (c *Client) WithTransactionHeaders(h map[string]string) *Client {
	c.transactionOverrides = h
	return c
}

// WithHTTPClient replaces the underlying HTTP caller
func (c *Client) WithHTTPClient(hc *midtrans.HTTPClient) *Client {
	c.httpClient = hc
	return c
}

// WithSigner replaces the signing implementation, e.g. with deterministic
// key material in tests
func (c *Client) WithSigner(s signer.Signer) *Client {
	c.signer = s
	return c
}

// WithVerifier replaces the webhook verification implementation
func (c *Client) WithVerifier(v verifier.SignatureVerifier) *Client {
	c.verifier = v
	return c
}

// WithBaseURL points the client at a different gateway host. Intended for
// aggregator deployments and tests.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = u
	return c
}

// GetAccessToken requests a fresh B2B access token. Most callers never need
// this directly; transactional calls fetch and cache tokens on their own.
func (c *Client) GetAccessToken(ctx context.Context) (*AccessTokenResponse, error) {
	return c.requestAccessToken(ctx, c.timestamp())
}

// CreatePayment executes the channel's payment operation. An empty
// externalID is replaced by a generated UUID.
func (c *Client) CreatePayment(ctx context.Context, externalID string, body map[string]any) (Response, error) {
	return c.transact(ctx, c.channel.Payment, externalID, body)
}

// GetStatus queries the state of an earlier payment
func (c *Client) GetStatus(ctx context.Context, externalID string, body map[string]any) (Response, error) {
	return c.transact(ctx, c.channel.Status, externalID, body)
}

// CancelPayment cancels an earlier payment (for virtual accounts, deletes
// the VA)
func (c *Client) CancelPayment(ctx context.Context, externalID string, body map[string]any) (Response, error) {
	return c.transact(ctx, c.channel.Cancel, externalID, body)
}

// Refund refunds an earlier payment. Channels without a refund endpoint
// return ErrUnsupportedOperation.
func (c *Client) Refund(ctx context.Context, externalID string, body map[string]any) (Response, error) {
	return c.transact(ctx, c.channel.Refund, externalID, body)
}

// transact runs one signed transactional call. The timestamp is generated
// once here and reused by every header built for the operation, including a
// token fetch it may trigger, so the signed timestamp always matches the
// transmitted X-TIMESTAMP.
func (c *Client) transact(ctx context.Context, path, externalID string, body map[string]any) (Response, error) {
	if path == "" {
		return nil, ErrUnsupportedOperation
	}
	if c.cfg.ClientSecret == "" {
		return nil, ErrMissingClientSecret
	}

	ts := c.timestamp()

	token, err := c.ensureAccessToken(ctx, ts)
	if err != nil {
		return nil, err
	}

	if externalID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, eris.Wrap(err, "generating external id")
		}
		externalID = id.String()
	}

	// The canonical bytes are both hashed and transmitted; building them
	// once keeps the two identical.
	payload, err := signer.Canonicalize(body)
	if err != nil {
		return nil, eris.Wrap(err, "canonicalizing request body")
	}

	header, err := buildTransactionHeader(c.signer, transactionHeaderParams{
		ExternalID:   externalID,
		Timestamp:    ts,
		AccessToken:  token,
		Body:         payload,
		Path:         path,
		ClientSecret: c.cfg.ClientSecret,
		PartnerID:    c.cfg.PartnerID,
		DeviceID:     c.cfg.DeviceID,
		ChannelID:    c.cfg.ChannelID,
		DebugID:      c.cfg.DebugID,
	}, c.transactionOverrides)
	if err != nil {
		return nil, err
	}

	var out Response
	if apiErr := c.httpClient.Call(ctx, http.MethodPost, c.baseURL+path, header, payload, &out); apiErr != nil {
		return nil, apiErr
	}

	return out, nil
}

func (c *Client) requestAccessToken(ctx context.Context, ts string) (*AccessTokenResponse, error) {
	if c.cfg.PrivateKey == "" {
		return nil, ErrMissingPrivateKey
	}

	header, err := buildAccessTokenHeader(c.signer, accessTokenHeaderParams{
		ClientID:   c.cfg.ClientID,
		Timestamp:  ts,
		PrivateKey: c.cfg.PrivateKey,
		DebugID:    c.cfg.DebugID,
	}, c.accessTokenOverrides)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(map[string]string{"grantType": "client_credentials"})
	if err != nil {
		return nil, eris.Wrap(err, "marshalling grant request")
	}

	var out AccessTokenResponse
	if apiErr := c.httpClient.Call(ctx, http.MethodPost, c.baseURL+accessTokenPath, header, body, &out); apiErr != nil {
		return nil, apiErr
	}

	return &out, nil
}

// ensureAccessToken returns the cached token, fetching a new one when the
// cache is empty or inside the refresh margin.
func (c *Client) ensureAccessToken(ctx context.Context, ts string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tokenFixed || (c.accessToken != "" && c.now().Before(c.tokenExpiry)) {
		return c.accessToken, nil
	}

	resp, err := c.requestAccessToken(ctx, ts)
	if err != nil {
		return "", eris.Wrap(err, "obtaining access token")
	}

	ttl := 900 * time.Second
	if secs, err := strconv.Atoi(resp.ExpiresIn); err == nil && secs > 0 {
		ttl = time.Duration(secs) * time.Second
	}

	c.accessToken = resp.AccessToken
	c.tokenExpiry = c.now().Add(ttl - tokenRefreshMargin)

	return c.accessToken, nil
}

func (c *Client) timestamp() string {
	return c.now().Format(time.RFC3339)
}
