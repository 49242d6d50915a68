package sigtoken

import (
	"net/http"
	"strings"
)

// DefaultQueryParam is the query parameter QueryExtractor reads by default.
const DefaultQueryParam = "t"

// ExtractorFunc pulls a token out of an HTTP request.
type ExtractorFunc func(r *http.Request) (string, error)

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	extractor ExtractorFunc
	skip      func(r *http.Request) bool
	onError   func(w http.ResponseWriter, r *http.Request, err error)
	onResult  func(r *http.Request, res Result)
}

// WithExtractor sets how the token is read from the request.
func WithExtractor(fn ExtractorFunc) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.extractor = fn
		}
	}
}

// WithSkip lets requests matching fn through without a token.
func WithSkip(fn func(r *http.Request) bool) MiddlewareOption {
	return func(c *middlewareConfig) { c.skip = fn }
}

// WithErrorHandler replaces the default 401 response.
func WithErrorHandler(fn func(w http.ResponseWriter, r *http.Request, err error)) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.onError = fn
		}
	}
}

// WithResultHook is called with every verification outcome, e.g. to feed metrics.
func WithResultHook(fn func(r *http.Request, res Result)) MiddlewareOption {
	return func(c *middlewareConfig) { c.onResult = fn }
}

// Middleware verifies the request token with verify and stores the token and
// its data in the request context for downstream handlers.
func Middleware(verify VerifyFunc, opts ...MiddlewareOption) func(next http.Handler) http.Handler {
	cfg := middlewareConfig{
		extractor: QueryExtractor(DefaultQueryParam),
		onError: func(w http.ResponseWriter, _ *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.skip != nil && cfg.skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			token, err := cfg.extractor(r)
			if err != nil {
				cfg.onError(w, r, err)
				return
			}

			res := verify(token)
			if cfg.onResult != nil {
				cfg.onResult(r, res)
			}
			if !res.OK {
				cfg.onError(w, r, res.Err)
				return
			}

			ctx := WithToken(r.Context(), token)
			ctx = WithData(ctx, res.Data)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// QueryExtractor reads the token from a URL query parameter. A token pasted
// into a URL without escaping has every + in its signature decoded to a
// space; serialized payloads never contain a literal space or +, so spaces
// are turned back into +.
func QueryExtractor(param string) ExtractorFunc {
	return func(r *http.Request) (string, error) {
		token := r.URL.Query().Get(param)
		if token == "" {
			return "", ErrMalformedToken
		}
		return strings.ReplaceAll(token, " ", "+"), nil
	}
}

// HeaderExtractor reads the token from a request header.
func HeaderExtractor(name string) ExtractorFunc {
	return func(r *http.Request) (string, error) {
		token := r.Header.Get(name)
		if token == "" {
			return "", ErrMalformedToken
		}
		return token, nil
	}
}

// BearerExtractor reads the token from "Authorization: Bearer <token>".
func BearerExtractor(r *http.Request) (string, error) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || scheme != "Bearer" || token == "" {
		return "", ErrMalformedToken
	}
	return token, nil
}
