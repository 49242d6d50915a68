package sigtoken

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/base64"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

// idPrefix marks key fingerprints so they are recognisable in logs.
const idPrefix = "st1"

// PublicKey is a raw 32-byte Ed25519 public key.
type PublicKey []byte

// ID returns a short printable fingerprint of the key, safe to log.
func (k PublicKey) ID() string {
	h := blake2b.Sum256(k)
	return idPrefix + base58.Encode(h[:])
}

// String returns the key encoded with unpadded standard base64.
func (k PublicKey) String() string {
	return base64.RawStdEncoding.EncodeToString(k)
}

func (k PublicKey) publicKey() (ed25519.PublicKey, error) {
	if len(k) == 0 {
		return nil, ErrMissingVerificationKey
	}
	if len(k) != ed25519.PublicKeySize {
		return nil, ErrInvalidPublicKey
	}
	return ed25519.PublicKey(k), nil
}

// ParsePublicKey decodes a base64 public key as printed by PublicKey.String.
// Padded and URL-safe forms are accepted too.
func ParsePublicKey(s string) (PublicKey, error) {
	raw, err := decodeBase64(s)
	if err != nil || len(raw) != ed25519.PublicKeySize {
		return nil, ErrInvalidPublicKey
	}
	return PublicKey(raw), nil
}

// Keypair is an Ed25519 keypair derived from a secret.
// It is read-only after construction and safe to share between goroutines.
type Keypair struct {
	PublicKey  PublicKey
	PrivateKey ed25519.PrivateKey
}

// ID returns the fingerprint of the public key.
func (kp Keypair) ID() string { return kp.PublicKey.ID() }

// MakeKeypair deterministically derives a keypair from secret: the SHA-256
// digest of the secret is used as the Ed25519 seed.
func MakeKeypair(secret string) (Keypair, error) {
	if secret == "" {
		return Keypair{}, ErrMissingSecret
	}

	seed := sha256.Sum256([]byte(secret))
	priv := ed25519.NewKeyFromSeed(seed[:])

	return Keypair{
		PublicKey:  PublicKey(priv.Public().(ed25519.PublicKey)),
		PrivateKey: priv,
	}, nil
}

// VerificationKey is what a verifier checks signatures with: either a Secret
// to derive the keypair from, or a PublicKey used as-is.
type VerificationKey interface {
	publicKey() (ed25519.PublicKey, error)
}

// Secret is a passphrase used as a VerificationKey.
type Secret string

func (s Secret) publicKey() (ed25519.PublicKey, error) {
	if s == "" {
		return nil, ErrMissingVerificationKey
	}
	kp, err := MakeKeypair(string(s))
	if err != nil {
		return nil, err
	}
	return ed25519.PublicKey(kp.PublicKey), nil
}
