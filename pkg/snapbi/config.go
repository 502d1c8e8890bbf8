package snapbi

import (
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/rotisserie/eris"

	"github.com/fintechkit/midtrans-client-go/pkg/midtrans"
)

var (
	// ErrMissingPrivateKey is returned when an operation needs to sign an
	// access-token request but no private key was configured
	ErrMissingPrivateKey = errors.New("snapbi: private key not configured")

	// ErrMissingClientSecret is returned when a transactional call needs the
	// HMAC secret but none was configured
	ErrMissingClientSecret = errors.New("snapbi: client secret not configured")

	// ErrMissingPublicKey is returned by webhook verification when no public
	// key was configured. It signals a misconfiguration, not a bad
	// signature, and should alert operators rather than silently reject.
	ErrMissingPublicKey = errors.New("snapbi: public key not configured")

	// ErrUnsupportedOperation is returned when the selected channel has no
	// endpoint for the requested operation
	ErrUnsupportedOperation = errors.New("snapbi: operation not supported by this channel")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config carries the merchant credentials for the SNAP endpoints. The key
// material is read once at construction and never mutated afterwards.
type Config struct {
	// ClientID is the X-CLIENT-KEY issued by the gateway
	ClientID string `validate:"required"`

	// PartnerID is transmitted as X-PARTNER-ID on transactional calls
	PartnerID string `validate:"required"`

	// ChannelID is transmitted as CHANNEL-ID on transactional calls
	ChannelID string `validate:"required"`

	// ClientSecret is the shared secret keying the transaction HMAC.
	// Required for payment operations, not for webhook verification.
	ClientSecret string

	// PrivateKey is the PEM-encoded RSA private key signing access-token
	// requests. Required unless the caller supplies a token explicitly.
	PrivateKey string

	// PublicKey is the PEM-encoded RSA public key used to verify webhook
	// notifications. Optional; verification fails with ErrMissingPublicKey
	// when it is absent.
	PublicKey string

	// DeviceID is transmitted as X-DEVICE-ID when set
	DeviceID string

	// DebugID is transmitted as debug-id when set
	DebugID string

	// Env selects the gateway host
	Env midtrans.EnvironmentType

	// Logger receives debug-level request logging when set
	Logger *slog.Logger
}

// Validate checks the fields every operation depends on. Per-operation key
// material is checked lazily so that verification-only and
// caller-supplied-token setups stay valid.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return eris.Wrap(err, "invalid snap bi config")
	}
	return nil
}
