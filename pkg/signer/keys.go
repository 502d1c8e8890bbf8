package signer

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"
)

// ParseRSAPrivateKey imports a PEM-encoded RSA private key. PKCS#8 is the
// documented format; PKCS#1 is accepted as well because gateway dashboards
// have issued both over time. Keys whose header/footer survived transport
// mangling (missing line breaks, surrounding whitespace) are tolerated.
func ParseRSAPrivateKey(privateKeyPEM string) (*rsa.PrivateKey, error) {
	der, err := decodePEMBlock(privateKeyPEM)
	if err != nil {
		return nil, err
	}

	if key, err := x509.ParsePKCS8PrivateKey(der); err == nil {
		rsaKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, eris.New("private key is not an RSA key")
		}
		return rsaKey, nil
	}

	rsaKey, err := x509.ParsePKCS1PrivateKey(der)
	if err != nil {
		return nil, eris.Wrap(err, "parsing private key")
	}

	return rsaKey, nil
}

var pemArmor = regexp.MustCompile(`-----[A-Z ]+-----`)

// decodePEMBlock extracts DER bytes from a PEM string. When pem.Decode
// cannot find a block, the armor markers and whitespace are stripped
// manually and the remainder is base64-decoded.
func decodePEMBlock(pemStr string) ([]byte, error) {
	if block, _ := pem.Decode([]byte(pemStr)); block != nil {
		return block.Bytes, nil
	}

	payload := pemArmor.ReplaceAllString(pemStr, "")
	payload = strings.Join(strings.Fields(payload), "")

	der, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, eris.Wrap(err, "decoding PEM body")
	}
	if len(der) == 0 {
		return nil, eris.New("empty PEM input")
	}

	return der, nil
}
