// Package metrics counts token signing and verification outcomes with
// Prometheus.
package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/sigtoken"
	"github.com/dmitrymomot/sigtoken/pkg/canonical"
)

// Verification outcome labels.
const (
	ResultOK               = "ok"
	ResultMalformed        = "malformed"
	ResultInvalidSignature = "invalid_signature"
	ResultError            = "error"
)

// Collector holds sigtoken counters. It implements prometheus.Collector.
type Collector struct {
	signed   *prometheus.CounterVec
	verified *prometheus.CounterVec
}

// New creates a Collector. Call Register to expose it.
func New() *Collector {
	return &Collector{
		signed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sigtoken",
			Name:      "tokens_signed_total",
			Help:      "Tokens signed by outcome.",
		}, []string{"result"}),
		verified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sigtoken",
			Name:      "verifications_total",
			Help:      "Token verifications by outcome.",
		}, []string{"result"}),
	}
}

// Register adds the collector to reg.
func (c *Collector) Register(reg prometheus.Registerer) error {
	return reg.Register(c)
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.signed.Describe(ch)
	c.verified.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.signed.Collect(ch)
	c.verified.Collect(ch)
}

// ObserveSign counts one signing attempt.
func (c *Collector) ObserveSign(err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	c.signed.WithLabelValues(result).Inc()
}

// ObserveVerify counts one verification outcome.
func (c *Collector) ObserveVerify(res sigtoken.Result) {
	c.verified.WithLabelValues(outcome(res)).Inc()
}

// InstrumentSigner wraps fn so every call is counted.
func (c *Collector) InstrumentSigner(fn sigtoken.SignFunc) sigtoken.SignFunc {
	return func(data canonical.Value) (string, error) {
		tok, err := fn(data)
		c.ObserveSign(err)
		return tok, err
	}
}

// InstrumentVerifier wraps fn so every call is counted.
func (c *Collector) InstrumentVerifier(fn sigtoken.VerifyFunc) sigtoken.VerifyFunc {
	return func(token string) sigtoken.Result {
		res := fn(token)
		c.ObserveVerify(res)
		return res
	}
}

// ResultHook adapts the collector for sigtoken.WithResultHook.
func (c *Collector) ResultHook() func(*http.Request, sigtoken.Result) {
	return func(_ *http.Request, res sigtoken.Result) {
		c.ObserveVerify(res)
	}
}

func outcome(res sigtoken.Result) string {
	switch {
	case res.OK:
		return ResultOK
	case errors.Is(res.Err, sigtoken.ErrInvalidSignature):
		return ResultInvalidSignature
	case errors.Is(res.Err, sigtoken.ErrMalformedToken):
		return ResultMalformed
	default:
		return ResultError
	}
}
