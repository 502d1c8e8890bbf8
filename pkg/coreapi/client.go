package coreapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/fintechkit/midtrans-client-go/pkg/midtrans"
)

// Client calls the Core API. Construct with New before use.
type Client struct {
	ServerKey string
	ClientKey string
	Env       midtrans.EnvironmentType

	// HttpClient performs the requests; replace it to inject logging or a
	// custom transport
	HttpClient *midtrans.HTTPClient

	// BaseURL overrides the environment host. Intended for tests and proxies.
	BaseURL string
}

// New initializes the client against env with the merchant's server key
func (c *Client) New(serverKey string, env midtrans.EnvironmentType) {
	c.ServerKey = serverKey
	c.Env = env
	c.HttpClient = midtrans.NewHTTPClient()
}

func (c *Client) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return c.Env.BaseUrl()
}

func (c *Client) serverKeyHeader() http.Header {
	h := http.Header{}
	h.Set("Authorization", midtrans.BasicAuth(c.ServerKey))
	return h
}

func (c *Client) call(ctx context.Context, method, path string, body any, result any) *midtrans.Error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return &midtrans.Error{Message: "marshalling request body", RawError: err}
		}
	}
	return c.HttpClient.Call(ctx, method, c.baseURL()+path, c.serverKeyHeader(), payload, result)
}

// ChargeTransaction performs a direct charge
func (c *Client) ChargeTransaction(ctx context.Context, req *ChargeReq) (*TransactionResponse, *midtrans.Error) {
	resp := &TransactionResponse{}
	if err := c.call(ctx, http.MethodPost, "/v2/charge", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CaptureTransaction captures a pre-authorized transaction
func (c *Client) CaptureTransaction(ctx context.Context, req *CaptureReq) (*TransactionResponse, *midtrans.Error) {
	resp := &TransactionResponse{}
	if err := c.call(ctx, http.MethodPost, "/v2/capture", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CheckTransaction queries the current status of a transaction
func (c *Client) CheckTransaction(ctx context.Context, orderID string) (*TransactionResponse, *midtrans.Error) {
	resp := &TransactionResponse{}
	if err := c.call(ctx, http.MethodGet, "/v2/"+url.PathEscape(orderID)+"/status", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetStatusB2B queries the B2B status of a transaction
func (c *Client) GetStatusB2B(ctx context.Context, orderID string) (*TransactionResponse, *midtrans.Error) {
	resp := &TransactionResponse{}
	if err := c.call(ctx, http.MethodGet, "/v2/"+url.PathEscape(orderID)+"/status/b2b", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ApproveTransaction approves a challenged-by-FDS transaction
func (c *Client) ApproveTransaction(ctx context.Context, orderID string) (*TransactionResponse, *midtrans.Error) {
	return c.lifecycle(ctx, orderID, "approve")
}

// DenyTransaction denies a challenged-by-FDS transaction
func (c *Client) DenyTransaction(ctx context.Context, orderID string) (*TransactionResponse, *midtrans.Error) {
	return c.lifecycle(ctx, orderID, "deny")
}

// CancelTransaction cancels a transaction before settlement
func (c *Client) CancelTransaction(ctx context.Context, orderID string) (*TransactionResponse, *midtrans.Error) {
	return c.lifecycle(ctx, orderID, "cancel")
}

// ExpireTransaction expires a pending transaction
func (c *Client) ExpireTransaction(ctx context.Context, orderID string) (*TransactionResponse, *midtrans.Error) {
	return c.lifecycle(ctx, orderID, "expire")
}

func (c *Client) lifecycle(ctx context.Context, orderID, op string) (*TransactionResponse, *midtrans.Error) {
	resp := &TransactionResponse{}
	if err := c.call(ctx, http.MethodPost, "/v2/"+url.PathEscape(orderID)+"/"+op, nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// RefundTransaction refunds a settled transaction
func (c *Client) RefundTransaction(ctx context.Context, orderID string, req *RefundReq) (*TransactionResponse, *midtrans.Error) {
	resp := &TransactionResponse{}
	if err := c.call(ctx, http.MethodPost, "/v2/"+url.PathEscape(orderID)+"/refund", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// DirectRefundTransaction refunds directly to the payment provider
func (c *Client) DirectRefundTransaction(ctx context.Context, orderID string, req *RefundReq) (*TransactionResponse, *midtrans.Error) {
	resp := &TransactionResponse{}
	if err := c.call(ctx, http.MethodPost, "/v2/"+url.PathEscape(orderID)+"/refund/online/direct", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CardToken tokenizes a card. The endpoint authenticates with the client
// key and takes its parameters as a query string.
func (c *Client) CardToken(ctx context.Context, cardNumber, expMonth, expYear, cvv string) (*CardTokenResponse, *midtrans.Error) {
	q := url.Values{}
	q.Set("client_key", c.ClientKey)
	q.Set("card_number", cardNumber)
	q.Set("card_exp_month", expMonth)
	q.Set("card_exp_year", expYear)
	q.Set("card_cvv", cvv)

	resp := &CardTokenResponse{}
	if err := c.HttpClient.Call(ctx, http.MethodGet, c.baseURL()+"/v2/token?"+q.Encode(), nil, nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// RegisterCard stores a card for one-click charging
func (c *Client) RegisterCard(ctx context.Context, cardNumber, expMonth, expYear string) (*CardRegisterResponse, *midtrans.Error) {
	q := url.Values{}
	q.Set("client_key", c.ClientKey)
	q.Set("card_number", cardNumber)
	q.Set("card_exp_month", expMonth)
	q.Set("card_exp_year", expYear)

	resp := &CardRegisterResponse{}
	if err := c.HttpClient.Call(ctx, http.MethodGet, c.baseURL()+"/v2/card/register?"+q.Encode(), nil, nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CardPointInquiry reports the point balance available on a card token
func (c *Client) CardPointInquiry(ctx context.Context, cardToken string) (*CardPointInquiryResponse, *midtrans.Error) {
	resp := &CardPointInquiryResponse{}
	path := fmt.Sprintf("/v2/point_inquiry/%s", url.PathEscape(cardToken))
	if err := c.call(ctx, http.MethodGet, path, nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
