package sigtoken

import "errors"

var (
	// Returned immediately by constructors: they indicate misuse, not bad input.
	ErrMissingSecret          = errors.New("sigtoken: missing secret")
	ErrMissingVerificationKey = errors.New("sigtoken: missing verification key")
	ErrMissingData            = errors.New("sigtoken: missing data")
	ErrInvalidPublicKey       = errors.New("sigtoken: invalid public key")

	// Reported inside Result when processing untrusted tokens.
	ErrMalformedToken   = errors.New("sigtoken: malformed token")
	ErrInvalidSignature = errors.New("sigtoken: invalid signature")
)
