package sigtoken

import "github.com/dmitrymomot/sigtoken/pkg/canonical"

// Result is the outcome of decoding or verifying a token.
// Token-processing failures are reported through Err with OK set to false.
type Result struct {
	OK        bool
	Data      canonical.Value
	Payload   string
	Signature []byte
	Err       error
}

func failure(err error) Result {
	return Result{Err: err}
}
