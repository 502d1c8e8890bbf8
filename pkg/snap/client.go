package snap

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fintechkit/midtrans-client-go/pkg/midtrans"
)

const transactionsPath = "/snap/v1/transactions"

// Client calls the Snap API. Construct with New before use.
type Client struct {
	ServerKey string
	Env       midtrans.EnvironmentType

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
	return c.Env.SnapBaseUrl()
}

// CreateTransaction creates a hosted-checkout session
func (c *Client) CreateTransaction(ctx context.Context, req *Request) (*Response, *midtrans.Error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, &midtrans.Error{Message: "marshalling request body", RawError: err}
	}

	header := http.Header{}
	header.Set("Authorization", midtrans.BasicAuth(c.ServerKey))

	resp := &Response{}
	if apiErr := c.HttpClient.Call(ctx, http.MethodPost, c.baseURL()+transactionsPath, header, payload, resp); apiErr != nil {
		return nil, apiErr
	}

	return resp, nil
}

// CreateTransactionToken creates a session and returns only its token
func (c *Client) CreateTransactionToken(ctx context.Context, req *Request) (string, *midtrans.Error) {
	resp, err := c.CreateTransaction(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// CreateTransactionUrl creates a session and returns only its redirect URL
func (c *Client) CreateTransactionUrl(ctx context.Context, req *Request) (string, *midtrans.Error) {
	resp, err := c.CreateTransaction(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.RedirectURL, nil
}
