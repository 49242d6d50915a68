package canonical_test

import (
	"testing"

	"github.com/dmitrymomot/sigtoken/pkg/canonical"
)

func BenchmarkSerializeMap(b *testing.B) {
	v := canonical.Map(map[string]any{
		"uid":   42,
		"email": "user@example.com",
		"act":   "confirm",
		"tags":  []string{"a", "b"},
	})

	for b.Loop() {
		_ = canonical.Serialize(v)
	}
}

func BenchmarkDeserializeMap(b *testing.B) {
	payload := "act=confirm&email=user%40example.com&tags=a&tags=b&uid=42"

	for b.Loop() {
		_ = canonical.Deserialize(payload)
	}
}
