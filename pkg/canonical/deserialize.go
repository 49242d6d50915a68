package canonical

import "strings"

// MaxPairs caps the number of fields Deserialize will parse from a payload.
const MaxPairs = 1000

// Deserialize decodes a payload produced by Serialize. The shape is inferred:
// any '=' makes it a mapping (or a list, when keys are "0".."n-1"),
// otherwise the whole payload is one scalar.
func Deserialize(payload string) Value {
	if !strings.Contains(payload, "=") {
		return String(Unescape(payload))
	}

	m := parseFields(payload)
	if list, ok := m.asList(); ok {
		return list
	}
	return m
}

func parseFields(payload string) Value {
	var (
		pairs []Pair
		index = make(map[string]int)
		n     int
	)

	for field := range strings.SplitSeq(payload, "&") {
		if field == "" {
			continue
		}
		if n == MaxPairs {
			break
		}
		n++

		rawKey, rawVal, _ := strings.Cut(field, "=")
		key := unescape(rawKey, true)
		val := unescape(rawVal, true)

		if i, ok := index[key]; ok {
			pairs[i].Values = append(pairs[i].Values, val)
			continue
		}
		index[key] = len(pairs)
		pairs = append(pairs, Pair{Key: key, Values: []string{val}})
	}

	return Value{kind: KindMap, pairs: pairs}
}
