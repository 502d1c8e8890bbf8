package snapbi

import (
	"fmt"
	"net/http"

	"github.com/fintechkit/midtrans-client-go/pkg/signer"
)

// VerifyWebhookNotification checks the X-SIGNATURE of a webhook
// notification against the configured public key. The string-to-sign is
// "POST:path:sha256hex(minified payload):timestamp".
//
// The error return carries configuration problems only: a nil error with
// ok == false means the signature genuinely failed verification, while
// ErrMissingPublicKey means verification could not be attempted at all.
// Malformed payloads and signatures fall on the ok == false side.
func (c *Client) VerifyWebhookNotification(payload []byte, signature, timestamp, notificationPath string) (bool, error) {
	if c.cfg.PublicKey == "" {
		return false, ErrMissingPublicKey
	}

	minified, err := signer.Canonicalize(payload)
	if err != nil {
		return false, nil
	}

	stringToSign := fmt.Sprintf("%s:%s:%s:%s",
		http.MethodPost,
		notificationPath,
		signer.HashSHA256Hex(minified),
		timestamp,
	)

	return c.verifier.VerifySignature(stringToSign, signature, c.cfg.PublicKey), nil
}
