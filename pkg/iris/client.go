package iris

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/fintechkit/midtrans-client-go/pkg/midtrans"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Client calls the Iris disbursement API. Construct with New before use.
type Client struct {
	// APIKey is the Iris creator or approver key, depending on which
	// operations the caller needs
	APIKey string
	Env    midtrans.EnvironmentType

	HttpClient *midtrans.HTTPClient

	// BaseURL overrides the environment host. Intended for tests and proxies.
	BaseURL string

	// IdempotencyKey is sent as X-Idempotency-Key on CreatePayout. When
	// empty a fresh key is generated per call.
	IdempotencyKey string
}

// New initializes the client against env with the partner's Iris API key
func (c *Client) New(apiKey string, env midtrans.EnvironmentType) {
	c.APIKey = apiKey
	c.Env = env
	c.HttpClient = midtrans.NewHTTPClient()
}

func (c *Client) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return c.Env.IrisBaseUrl()
}

func (c *Client) apiKeyHeader() http.Header {
	h := http.Header{}
	h.Set("Authorization", midtrans.BasicAuth(c.APIKey))
	return h
}

func (c *Client) call(ctx context.Context, method, path string, header http.Header, body any, result any) *midtrans.Error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return &midtrans.Error{Message: "marshalling request body", RawError: err}
		}
	}
	return c.HttpClient.Call(ctx, method, c.baseURL()+path, header, payload, result)
}

// Ping checks connectivity to Iris. The endpoint answers with a plain
// "pong" body, so only the error result is meaningful.
func (c *Client) Ping(ctx context.Context) (string, *midtrans.Error) {
	if err := c.call(ctx, http.MethodGet, "/ping", c.apiKeyHeader(), nil, nil); err != nil {
		return "", err
	}
	return "pong", nil
}

// GetBalance reports the partner's current disbursable balance
func (c *Client) GetBalance(ctx context.Context) (*BalanceResponse, *midtrans.Error) {
	resp := &BalanceResponse{}
	if err := c.call(ctx, http.MethodGet, "/balance", c.apiKeyHeader(), nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetFacilitatorBalance reports the balance of one facilitator bank account
func (c *Client) GetFacilitatorBalance(ctx context.Context, bankAccountID string) (*BalanceResponse, *midtrans.Error) {
	resp := &BalanceResponse{}
	path := "/bank_accounts/" + url.PathEscape(bankAccountID) + "/balance"
	if err := c.call(ctx, http.MethodGet, path, c.apiKeyHeader(), nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateBeneficiaries registers a payout destination
func (c *Client) CreateBeneficiaries(ctx context.Context, req *Beneficiaries) (*BeneficiariesResponse, *midtrans.Error) {
	if err := validate.Struct(req); err != nil {
		return nil, &midtrans.Error{Message: "invalid beneficiary", RawError: err}
	}

	resp := &BeneficiariesResponse{}
	if err := c.call(ctx, http.MethodPost, "/beneficiaries", c.apiKeyHeader(), req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// UpdateBeneficiaries updates the beneficiary currently saved under aliasName
func (c *Client) UpdateBeneficiaries(ctx context.Context, aliasName string, req *Beneficiaries) (*BeneficiariesResponse, *midtrans.Error) {
	if err := validate.Struct(req); err != nil {
		return nil, &midtrans.Error{Message: "invalid beneficiary", RawError: err}
	}

	resp := &BeneficiariesResponse{}
	path := "/beneficiaries/" + url.PathEscape(aliasName)
	if err := c.call(ctx, http.MethodPatch, path, c.apiKeyHeader(), req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetBeneficiaries lists all saved payout destinations
func (c *Client) GetBeneficiaries(ctx context.Context) ([]Beneficiaries, *midtrans.Error) {
	var resp []Beneficiaries
	if err := c.call(ctx, http.MethodGet, "/beneficiaries", c.apiKeyHeader(), nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreatePayout queues a batch of payouts for approval. The request carries
// an X-Idempotency-Key so a retried submission is not paid twice.
func (c *Client) CreatePayout(ctx context.Context, req *CreatePayoutReq) (*CreatePayoutResponse, *midtrans.Error) {
	if err := validate.Struct(req); err != nil {
		return nil, &midtrans.Error{Message: "invalid payout request", RawError: err}
	}

	header := c.apiKeyHeader()
	key := c.IdempotencyKey
	if key == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, &midtrans.Error{Message: "generating idempotency key", RawError: err}
		}
		key = id.String()
	}
	header.Set("X-Idempotency-Key", key)

	resp := &CreatePayoutResponse{}
	if err := c.call(ctx, http.MethodPost, "/payouts", header, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ApprovePayout approves queued payouts. Requires an approver API key.
func (c *Client) ApprovePayout(ctx context.Context, req *ApprovePayoutReq) (*ApprovePayoutResponse, *midtrans.Error) {
	if err := validate.Struct(req); err != nil {
		return nil, &midtrans.Error{Message: "invalid approve request", RawError: err}
	}

	resp := &ApprovePayoutResponse{}
	if err := c.call(ctx, http.MethodPost, "/payouts/approve", c.apiKeyHeader(), req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// RejectPayout rejects queued payouts. Requires an approver API key.
func (c *Client) RejectPayout(ctx context.Context, req *RejectPayoutReq) (*RejectPayoutResponse, *midtrans.Error) {
	if err := validate.Struct(req); err != nil {
		return nil, &midtrans.Error{Message: "invalid reject request", RawError: err}
	}

	resp := &RejectPayoutResponse{}
	if err := c.call(ctx, http.MethodPost, "/payouts/reject", c.apiKeyHeader(), req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetPayoutDetails fetches the full record of one payout
func (c *Client) GetPayoutDetails(ctx context.Context, referenceNo string) (*PayoutDetailResponse, *midtrans.Error) {
	resp := &PayoutDetailResponse{}
	path := "/payouts/" + url.PathEscape(referenceNo)
	if err := c.call(ctx, http.MethodGet, path, c.apiKeyHeader(), nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetTransactionHistory lists money movements between fromDate and toDate,
// both formatted YYYY-MM-DD
func (c *Client) GetTransactionHistory(ctx context.Context, fromDate, toDate string) ([]TransactionHistoryResponse, *midtrans.Error) {
	q := url.Values{}
	q.Set("from_date", fromDate)
	q.Set("to_date", toDate)

	var resp []TransactionHistoryResponse
	if err := c.call(ctx, http.MethodGet, "/statements?"+q.Encode(), c.apiKeyHeader(), nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetTopUpChannels lists the virtual accounts the partner can top up through
func (c *Client) GetTopUpChannels(ctx context.Context) ([]TopUpAccountResponse, *midtrans.Error) {
	var resp []TopUpAccountResponse
	if err := c.call(ctx, http.MethodGet, "/channels", c.apiKeyHeader(), nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetBeneficiaryBanks lists the banks supported as payout destinations
func (c *Client) GetBeneficiaryBanks(ctx context.Context) (*BeneficiaryBanksResponse, *midtrans.Error) {
	resp := &BeneficiaryBanksResponse{}
	if err := c.call(ctx, http.MethodGet, "/beneficiary_banks", c.apiKeyHeader(), nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ValidateBankAccount resolves the account holder's name before a payout
// is created
func (c *Client) ValidateBankAccount(ctx context.Context, bank, account string) (*AccountValidationResponse, *midtrans.Error) {
	q := url.Values{}
	q.Set("bank", bank)
	q.Set("account", account)

	resp := &AccountValidationResponse{}
	if err := c.call(ctx, http.MethodGet, "/account_validation?"+q.Encode(), c.apiKeyHeader(), nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
