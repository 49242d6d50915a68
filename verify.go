package sigtoken

import (
	"crypto/ed25519"

	"github.com/dmitrymomot/sigtoken/pkg/logger"
)

// VerifyFunc checks a token against a key fixed at construction.
// It never panics; every failure is reported through the Result.
type VerifyFunc func(token string) Result

// Verifier returns a verification function for key, which is either a Secret
// (the public key is derived from it) or a PublicKey used directly.
func Verifier(key VerificationKey, opts ...Option) (VerifyFunc, error) {
	if key == nil {
		return nil, ErrMissingVerificationKey
	}

	o := newOptions(opts)

	var (
		pub ed25519.PublicKey
		err error
	)
	if s, ok := key.(Secret); ok && s != "" {
		var kp Keypair
		kp, err = o.keypair(string(s))
		pub = ed25519.PublicKey(kp.PublicKey)
	} else {
		pub, err = key.publicKey()
	}
	if err != nil {
		return nil, err
	}

	log := o.logger.With(logger.Component("sigtoken"), logger.KeyID(PublicKey(pub).ID()))

	return func(token string) (res Result) {
		defer func() {
			if !res.OK {
				log.Debug("token rejected", logger.TokenSize(len(token)), logger.Error(res.Err))
			}
		}()

		decoded := Decode(token)
		if !decoded.OK {
			return decoded
		}

		if !ed25519.Verify(pub, []byte(decoded.Payload), decoded.Signature) {
			return failure(ErrInvalidSignature)
		}

		return Result{OK: true, Data: decoded.Data, Payload: decoded.Payload}
	}, nil
}

// Verify is a shorthand for Verifier(key) followed by a single call.
// Misuse errors such as a missing key are reported in the Result as well.
func Verify(token string, key VerificationKey, opts ...Option) Result {
	verify, err := Verifier(key, opts...)
	if err != nil {
		return failure(err)
	}
	return verify(token)
}
