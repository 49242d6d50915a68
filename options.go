package sigtoken

import (
	"context"
	"log/slog"
)

// Option configures Signer and Verifier.
type Option func(*options)

type options struct {
	logger *slog.Logger
	cache  *KeyCache
}

func newOptions(opts []Option) options {
	o := options{logger: slog.New(noopHandler{})}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger used to report verification failures at debug
// level. Secrets and payloads are never logged, only key fingerprints.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithKeyCache makes secret-based signers and verifiers take their keypair
// from c instead of deriving it on every construction.
func WithKeyCache(c *KeyCache) Option {
	return func(o *options) {
		o.cache = c
	}
}

func (o options) keypair(secret string) (Keypair, error) {
	if o.cache != nil {
		return o.cache.Keypair(secret)
	}
	return MakeKeypair(secret)
}

// noopHandler is a slog.Handler that discards all logs.
type noopHandler struct{}

func (n noopHandler) Enabled(_ context.Context, _ slog.Level) bool  { return false }
func (n noopHandler) Handle(_ context.Context, _ slog.Record) error { return nil }
func (n noopHandler) WithAttrs(_ []slog.Attr) slog.Handler          { return n }
func (n noopHandler) WithGroup(_ string) slog.Handler               { return n }
