// Package sigtoken implements compact, stateless tokens signed with Ed25519.
//
// Data (a string, a list or a key/value map) is serialized into a canonical
// query-string payload, signed with a keypair derived from a passphrase, and
// packed into one printable string:
//
//	~<86 chars of unpadded base64 signature><payload>
//
// The signature covers the payload bytes exactly as they appear in the token.
// There is no version byte, no expiry and no algorithm identifier; issuers and
// verifiers agree on the scheme out of band. Replay and expiry are the
// caller's concern, e.g. by putting a timestamp into the signed map.
//
// # Keys
//
// MakeKeypair hashes the secret with SHA-256 and uses the digest as the
// Ed25519 seed, so the same secret always yields the same keypair. A token can
// be verified either with the secret or with the public key alone, which lets
// services check tokens without being able to issue them.
//
// # Usage
//
//	import (
//	    "github.com/dmitrymomot/sigtoken"
//	    "github.com/dmitrymomot/sigtoken/pkg/canonical"
//	)
//
//	tok, err := sigtoken.Sign(canonical.Map(map[string]any{
//	    "uid": 42,
//	    "act": "confirm-email",
//	}), secret)
//	if err != nil {
//	    return err
//	}
//
//	res := sigtoken.Verify(tok, sigtoken.Secret(secret))
//	if !res.OK {
//	    return res.Err // ErrMalformedToken or ErrInvalidSignature
//	}
//	uid := res.Data.Get("uid")
//
// Signer and Verifier derive the keypair once and return reusable functions;
// prefer them on hot paths. WithKeyCache shares derived keypairs between many
// short-lived signers.
//
// # Error Handling
//
// Constructors return ErrMissingSecret, ErrMissingVerificationKey or
// ErrInvalidPublicKey immediately, and signing functions return
// ErrMissingData. Verification never panics: malformed or forged tokens come
// back as a Result with OK set to false and Err wrapping ErrMalformedToken or
// ErrInvalidSignature. Use errors.Is to match.
//
// # HTTP
//
// Middleware verifies a token carried in a request (query parameter "t" by
// default) and exposes its data through DataFromContext. Tokens should be
// query-escaped when placed in a URL; QueryExtractor also accepts an
// unescaped token whose + signs were decoded to spaces.
package sigtoken
