package canonical

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Serialize encodes v into its canonical payload. An absent value yields "".
func Serialize(v Value) string {
	switch v.kind {
	case KindScalar:
		return Escape(v.scalar)
	case KindList:
		var b strings.Builder
		for i, item := range v.list {
			writeField(&b, strconv.Itoa(i), item)
		}
		return b.String()
	case KindMap:
		var b strings.Builder
		for _, p := range v.pairs {
			writeField(&b, p.Key, p.Values)
		}
		return b.String()
	default:
		return ""
	}
}

func writeField(b *strings.Builder, key string, values []string) {
	k := Escape(key)
	for _, val := range values {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(Escape(val))
	}
}

// stringify coerces a list item or map value into its field values.
// Slices and arrays expand to one value per element.
func stringify(v any) []string {
	switch t := v.(type) {
	case nil:
		return []string{""}
	case string:
		return []string{t}
	case []byte:
		return []string{string(t)}
	case []string:
		return append([]string(nil), t...)
	}

	rv := reflect.ValueOf(v)
	if isNil(rv) {
		return []string{""}
	}
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]string, 0, rv.Len())
		for i := range rv.Len() {
			out = append(out, scalar(rv.Index(i).Interface()))
		}
		return out
	}
	return []string{scalar(v)}
}

// scalar renders primitives the way a query string would. Values without a
// natural text form (structs, maps, nil pointers) become "".
func scalar(v any) string {
	if isNil(reflect.ValueOf(v)) {
		return ""
	}

	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case fmt.Stringer:
		return t.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return ""
		}
		bits := 64
		if rv.Kind() == reflect.Float32 {
			bits = 32
		}
		return strconv.FormatFloat(f, 'f', -1, bits)
	default:
		return ""
	}
}

// isNil reports whether rv is an untyped nil or a nil pointer or interface.
func isNil(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
