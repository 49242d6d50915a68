package sigtoken

import (
	"crypto/ed25519"
	"encoding/base64"
	"strings"

	"github.com/dmitrymomot/sigtoken/pkg/canonical"
)

const (
	// Marker is the first byte of every token.
	Marker = '~'

	// SignatureLength is the width of the unpadded base64 signature segment.
	SignatureLength = 86

	// MinTokenLength covers the marker, the signature and a non-empty payload.
	MinTokenLength = 1 + SignatureLength + 1

	payloadOffset = 1 + SignatureLength
)

// SignFunc signs data with a keypair fixed at construction.
type SignFunc func(data canonical.Value) (string, error)

// Signer derives the keypair for secret once and returns a reusable
// signing function. The returned function is safe for concurrent use.
func Signer(secret string, opts ...Option) (SignFunc, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}

	o := newOptions(opts)
	kp, err := o.keypair(secret)
	if err != nil {
		return nil, err
	}

	return kp.Sign, nil
}

// Sign signs data with the keypair's private key. It lets callers that
// already hold a Keypair skip a second derivation.
func (kp Keypair) Sign(data canonical.Value) (string, error) {
	if len(kp.PrivateKey) != ed25519.PrivateKeySize {
		return "", ErrMissingSecret
	}
	return signWith(kp.PrivateKey, data)
}

// Sign is a shorthand for Signer(secret) followed by a single call.
func Sign(data canonical.Value, secret string, opts ...Option) (string, error) {
	sign, err := Signer(secret, opts...)
	if err != nil {
		return "", err
	}
	return sign(data)
}

// signWith serializes data and produces "~" + base64(signature) + payload.
// Values that serialize to an empty payload are rejected: such a token could
// never pass the minimum length check.
func signWith(priv ed25519.PrivateKey, data canonical.Value) (string, error) {
	if data.IsAbsent() {
		return "", ErrMissingData
	}
	payload := canonical.Serialize(data)
	if payload == "" {
		return "", ErrMissingData
	}

	sig := ed25519.Sign(priv, []byte(payload))

	var b strings.Builder
	b.Grow(payloadOffset + len(payload))
	b.WriteByte(Marker)
	b.WriteString(base64.RawStdEncoding.EncodeToString(sig))
	b.WriteString(payload)
	return b.String(), nil
}
