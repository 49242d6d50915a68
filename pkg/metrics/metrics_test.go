package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sigtoken"
	"github.com/dmitrymomot/sigtoken/pkg/canonical"
	"github.com/dmitrymomot/sigtoken/pkg/metrics"
)

const secret = "metrics-secret"

func TestCollector_Instrumented(t *testing.T) {
	t.Parallel()

	c := metrics.New()
	reg := prometheus.NewRegistry()
	require.NoError(t, c.Register(reg))

	signFn, err := sigtoken.Signer(secret)
	require.NoError(t, err)
	verifyFn, err := sigtoken.Verifier(sigtoken.Secret(secret))
	require.NoError(t, err)

	sign := c.InstrumentSigner(signFn)
	verify := c.InstrumentVerifier(verifyFn)

	tok, err := sign(canonical.String("hello"))
	require.NoError(t, err)
	_, err = sign(canonical.Value{})
	require.ErrorIs(t, err, sigtoken.ErrMissingData)

	assert.True(t, verify(tok).OK)
	assert.True(t, verify(tok).OK)
	assert.False(t, verify("garbage").OK)
	assert.False(t, verify(tok+"x").OK)

	expected := `
# HELP sigtoken_tokens_signed_total Tokens signed by outcome.
# TYPE sigtoken_tokens_signed_total counter
sigtoken_tokens_signed_total{result="error"} 1
sigtoken_tokens_signed_total{result="ok"} 1
# HELP sigtoken_verifications_total Token verifications by outcome.
# TYPE sigtoken_verifications_total counter
sigtoken_verifications_total{result="invalid_signature"} 1
sigtoken_verifications_total{result="malformed"} 1
sigtoken_verifications_total{result="ok"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"sigtoken_tokens_signed_total", "sigtoken_verifications_total"))
}

func TestCollector_ObserveVerifyOtherError(t *testing.T) {
	t.Parallel()

	c := metrics.New()
	c.ObserveVerify(sigtoken.Result{Err: errors.New("boom")})
	c.ObserveVerify(sigtoken.Result{Err: sigtoken.ErrMissingVerificationKey})

	expected := `
# HELP sigtoken_verifications_total Token verifications by outcome.
# TYPE sigtoken_verifications_total counter
sigtoken_verifications_total{result="error"} 2
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected), "sigtoken_verifications_total"))
}

func TestCollector_MiddlewareHook(t *testing.T) {
	t.Parallel()

	c := metrics.New()
	verify, err := sigtoken.Verifier(sigtoken.Secret(secret))
	require.NoError(t, err)

	handler := sigtoken.Middleware(verify, sigtoken.WithResultHook(c.ResultHook()))(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }),
	)

	tok, err := sigtoken.Sign(canonical.Map(map[string]any{"uid": 1}), secret)
	require.NoError(t, err)

	for _, token := range []string{tok, "~bad"} {
		req := httptest.NewRequest(http.MethodGet, "/confirm?"+url.Values{"t": {token}}.Encode(), nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
	}

	assert.Equal(t, 2, testutil.CollectAndCount(c, "sigtoken_verifications_total"))
}

func TestCollector_RegisterTwice(t *testing.T) {
	t.Parallel()

	c := metrics.New()
	reg := prometheus.NewRegistry()
	require.NoError(t, c.Register(reg))
	assert.Error(t, c.Register(reg))
}
