package midtrans

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	midtransclient "github.com/fintechkit/midtrans-client-go"
)

const defaultTimeout = 30 * time.Second

// HTTPClient issues JSON requests against the gateway and normalizes the
// response or failure into typed values. It is safe for concurrent use; the
// only state is the injected http.Client and logger.
type HTTPClient struct {
	Client *http.Client
	Logger *slog.Logger
}

// NewHTTPClient creates an HTTPClient with the default timeout and a
// discarding logger. Both fields may be replaced before first use.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{
		Client: &http.Client{Timeout: defaultTimeout},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// BasicAuth returns an Authorization header value authenticating with apiKey
// as the username and an empty password, the scheme the Core, Snap and Iris
// APIs use for server-side keys.
func BasicAuth(apiKey string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(apiKey+":"))
}

// Call sends method+url with the supplied headers and body, decoding the
// JSON response into result when result is non-nil. The returned *Error is
// nil on success.
//
// The body reader is materialized by the caller so that signed payloads are
// transmitted byte-for-byte as hashed.
func (c *HTTPClient) Call(ctx context.Context, method, url string, header http.Header, body []byte, result any) *Error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return &Error{Message: "building request", RawError: err}
	}

	if header != nil {
		req.Header = header.Clone()
	}
	if req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	req.Header.Set("User-Agent", "midtrans-client-go/"+midtransclient.Version)

	c.logger().DebugContext(ctx, "midtrans: sending request", "method", method, "url", url)

	resp, err := c.Client.Do(req)
	if err != nil {
		if isTimeout(ctx, err) {
			return &Error{
				Message:  "request timed out",
				Status:   StatusTimeout,
				RawError: err,
			}
		}
		return &Error{Message: "sending request", RawError: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Message: "reading response body", StatusCode: resp.StatusCode, RawError: err}
	}

	c.logger().DebugContext(ctx, "midtrans: received response",
		"method", method, "url", url, "status", resp.StatusCode, "bytes", len(respBody))

	if resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return &Error{
				Message:        "invalid response body",
				StatusCode:     resp.StatusCode,
				RawError:       err,
				RawApiResponse: respBody,
			}
		}
	}

	return nil
}

func (c *HTTPClient) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newAPIError extracts the gateway's status fields out of an error body.
// The sub-APIs disagree on field names, so each known spelling is tried.
func newAPIError(statusCode int, body []byte) *Error {
	e := &Error{
		Message:        http.StatusText(statusCode),
		StatusCode:     statusCode,
		RawApiResponse: body,
	}

	for _, path := range []string{"status_message", "error_messages.0", "responseMessage", "message"} {
		if v := gjson.GetBytes(body, path); v.Exists() {
			e.Message = v.String()
			break
		}
	}
	for _, path := range []string{"status_code", "responseCode", "error_code"} {
		if v := gjson.GetBytes(body, path); v.Exists() {
			e.GatewayCode = v.String()
			break
		}
	}

	return e
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	if ctx.Err() != nil {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
