package sigtoken

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/dmitrymomot/sigtoken/pkg/canonical"
)

// Decode splits a token into signature and payload and deserializes the
// payload. It checks structure only; the signature is not verified.
//
// The signature segment must be canonical standard base64, so every
// signature has exactly one accepted spelling.
func Decode(token string) Result {
	if len(token) < MinTokenLength || token[0] != Marker {
		return failure(ErrMalformedToken)
	}

	sig, err := base64.RawStdEncoding.Strict().DecodeString(token[1:payloadOffset])
	if err != nil {
		return failure(errors.Join(ErrMalformedToken, err))
	}
	if len(sig) != ed25519.SignatureSize {
		return failure(ErrMalformedToken)
	}

	payload := token[payloadOffset:]
	return Result{
		OK:        true,
		Payload:   payload,
		Data:      canonical.Deserialize(payload),
		Signature: sig,
	}
}

// decodeBase64 accepts standard or URL-safe alphabets, with or without padding.
// Unused trailing bits must be zero.
func decodeBase64(s string) ([]byte, error) {
	s = strings.TrimRight(s, "=")
	raw, err := base64.RawStdEncoding.Strict().DecodeString(s)
	if err == nil {
		return raw, nil
	}
	if alt, altErr := base64.RawURLEncoding.Strict().DecodeString(s); altErr == nil {
		return alt, nil
	}
	return nil, err
}
