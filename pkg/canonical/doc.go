// Package canonical turns structured data into a deterministic query-string
// payload and back.
//
// A Value is one of three shapes: a scalar string, an ordered list, or a
// mapping of string keys to one or more string values. Serialize produces the
// same payload for semantically identical data regardless of map iteration
// order, which makes the payload suitable as the signed artifact of a token.
//
// # Encoding rules
//
//   - Scalar: percent-escaped, space becomes %20.
//   - List: positional keys, "0=a&1=b".
//   - Map: nil values dropped, keys sorted byte-wise, "a=1&b=2". Slice values
//     repeat the key, "tag=x&tag=y".
//
// Deserialize infers the shape from content: a payload containing '=' is a
// mapping, anything else is a scalar. A mapping whose keys are exactly
// "0".."n-1" is recovered as a list.
//
// # Usage
//
//	import "github.com/dmitrymomot/sigtoken/pkg/canonical"
//
//	payload := canonical.Serialize(canonical.Map(map[string]any{
//	    "uid": 42,
//	    "act": "confirm",
//	}))
//	// payload == "act=confirm&uid=42"
//
//	v := canonical.Deserialize(payload)
//	v.Get("uid") // "42"
//
// Escaping keeps '=' out of serialized scalars, so the shape inference only
// misfires on payloads that were not produced by Serialize, and on maps whose
// keys happen to be "0".."n-1", which come back as lists.
package canonical
