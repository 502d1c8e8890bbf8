package signer

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/rotisserie/eris"
)

// Canonicalize serializes v to a minified JSON byte string suitable for
// hashing and for transmission as the request body.
//
// Pre-serialized input ([]byte, json.RawMessage, string) is compacted
// without re-serializing, so the hashed bytes stay identical to what the
// caller received or built. Key order is never changed: the remote verifier
// hashes the transmitted payload, not a normalized form of it.
func Canonicalize(v any) ([]byte, error) {
	var src []byte
	switch b := v.(type) {
	case nil:
		src = []byte("{}")
	case []byte:
		src = b
	case json.RawMessage:
		src = b
	case string:
		src = []byte(b)
	default:
		var err error
		src, err = json.Marshal(v)
		if err != nil {
			return nil, eris.Wrap(err, "marshalling body")
		}
	}

	dst := &bytes.Buffer{}
	if err := json.Compact(dst, src); err != nil {
		return nil, eris.Wrap(err, "compacting body")
	}

	return dst.Bytes(), nil
}

// HashSHA256Hex returns the SHA-256 digest of b as a 64-character lowercase
// hexadecimal string.
func HashSHA256Hex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
