// Package midtrans holds the pieces shared by every sub-API client:
// environment selection, the typed API error, the HTTP caller and the
// payload sections (transaction, item and customer details) that the Core
// API and Snap requests have in common.
//
// # Environments
//
// Every client is constructed against an environment, which selects the
// gateway host for each sub-API:
//
//	midtrans.Sandbox.BaseUrl()    // https://api.sandbox.midtrans.com
//	midtrans.Production.SnapBaseUrl()
//
// # Errors
//
// Failed calls surface a *midtrans.Error carrying the HTTP status, the
// gateway's own status code and message when present, and the raw response
// body. Timeouts are marked distinctly:
//
//	_, err := c.ChargeTransaction(ctx, req)
//	if err != nil && err.Timeout() {
//	    // the request was cancelled or timed out before completing
//	}
package midtrans
