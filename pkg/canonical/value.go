package canonical

import (
	"reflect"
	"slices"
	"strconv"
)

// Kind identifies the shape of a Value.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindScalar
	KindList
	KindMap
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "absent"
	}
}

// Pair is a single mapping entry. A key may carry several values.
type Pair struct {
	Key    string
	Values []string
}

// Value is a closed variant over the supported data shapes.
// The zero Value is absent.
type Value struct {
	kind   Kind
	scalar string
	list   [][]string
	pairs  []Pair
}

// String creates a scalar value.
func String(s string) Value {
	return Value{kind: KindScalar, scalar: s}
}

// List creates an ordered list value. Items are coerced to strings with the
// same rules as map values; a slice item keeps all of its elements and an
// empty slice item becomes a single empty string so indices stay dense.
func List(items ...any) Value {
	list := make([][]string, 0, len(items))
	for _, item := range items {
		vals := stringify(item)
		if len(vals) == 0 {
			vals = []string{""}
		}
		list = append(list, vals)
	}
	return Value{kind: KindList, list: list}
}

// Map creates a mapping value. Keys with a nil value or a nil pointer are
// dropped and the remaining keys are sorted, so insertion order never affects
// the payload.
func Map(m map[string]any) Value {
	keys := make([]string, 0, len(m))
	for k, v := range m {
		if isNil(reflect.ValueOf(v)) {
			continue
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)

	pairs := make([]Pair, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, Pair{Key: k, Values: stringify(m[k])})
	}
	return Value{kind: KindMap, pairs: pairs}
}

// Kind reports the shape of the value.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether v is the zero Value.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// String returns the scalar content. Non-scalar values return "".
func (v Value) String() string {
	if v.kind != KindScalar {
		return ""
	}
	return v.scalar
}

// Items returns the first value of each list element.
func (v Value) Items() []string {
	if v.kind != KindList {
		return nil
	}
	items := make([]string, 0, len(v.list))
	for _, item := range v.list {
		items = append(items, first(item))
	}
	return items
}

// Pairs returns a copy of the mapping entries in payload order.
func (v Value) Pairs() []Pair {
	if v.kind != KindMap {
		return nil
	}
	out := make([]Pair, len(v.pairs))
	for i, p := range v.pairs {
		out[i] = Pair{Key: p.Key, Values: slices.Clone(p.Values)}
	}
	return out
}

// Keys returns mapping keys in payload order.
func (v Value) Keys() []string {
	keys := make([]string, 0, len(v.pairs))
	for _, p := range v.pairs {
		keys = append(keys, p.Key)
	}
	return keys
}

// Get returns the first value stored under key.
func (v Value) Get(key string) string {
	return first(v.Values(key))
}

// Values returns every value stored under key.
func (v Value) Values(key string) []string {
	for _, p := range v.pairs {
		if p.Key == key {
			return slices.Clone(p.Values)
		}
	}
	return nil
}

// Map flattens a mapping into map[string]string keeping the first value per key.
func (v Value) Map() map[string]string {
	if v.kind != KindMap {
		return nil
	}
	m := make(map[string]string, len(v.pairs))
	for _, p := range v.pairs {
		m[p.Key] = first(p.Values)
	}
	return m
}

// Equal reports whether both values have the same shape and content.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindScalar:
		return v.scalar == other.scalar
	case KindList:
		return slices.EqualFunc(v.list, other.list, func(a, b []string) bool {
			return slices.Equal(a, b)
		})
	case KindMap:
		return slices.EqualFunc(v.pairs, other.pairs, func(a, b Pair) bool {
			return a.Key == b.Key && slices.Equal(a.Values, b.Values)
		})
	default:
		return true
	}
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// asList reports whether the mapping uses dense positional keys "0".."n-1"
// with one value each, and returns it as a list if so.
func (v Value) asList() (Value, bool) {
	if v.kind != KindMap || len(v.pairs) == 0 {
		return v, false
	}
	list := make([][]string, 0, len(v.pairs))
	for i, p := range v.pairs {
		if p.Key != strconv.Itoa(i) || len(p.Values) != 1 {
			return v, false
		}
		list = append(list, p.Values)
	}
	return Value{kind: KindList, list: list}, true
}
