package infer

import (
	"math"
	"reflect"

	json "github.com/goccy/go-json"
)

// Kind is the closed set of input-value shapes the engine dispatches over.
// Host values are pattern-matched into a Kind once, up front, so the dispatch
// in Value is exhaustive rather than duck-typed.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
	KindUnrepresentable
)

// kindOf classifies a host value. Fast paths cover the types a JSON decode
// produces; reflection handles typed slices and string-keyed maps so callers
// may pass ordinary Go values directly.
func kindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case string:
		return KindString
	case json.Number:
		return KindNumber
	case float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return KindNumber
	case map[string]any:
		return KindObject
	case []any:
		return KindArray
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return KindObject
		}
	}
	return KindUnrepresentable
}

// fallbackTypeName names a value outside the JSON type universe. The result
// is a best-effort "type" attribute so inference never fails on such input.
func fallbackTypeName(v any) string {
	return reflect.ValueOf(v).Kind().String()
}

// numberIsWhole reports whether a numeric value carries no fractional part.
// json.Number is inspected textually first so large integers survive intact.
func numberIsWhole(v any) bool {
	switch n := v.(type) {
	case json.Number:
		if _, err := n.Int64(); err == nil {
			return true
		}
		f, err := n.Float64()
		if err != nil {
			return false
		}
		return isWholeFloat(f)
	case float64:
		return isWholeFloat(n)
	case float32:
		return isWholeFloat(float64(n))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}

func isWholeFloat(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f) && math.Trunc(f) == f
}

// arrayElements materializes the elements of an array-kinded value.
func arrayElements(v any) []any {
	if a, ok := v.([]any); ok {
		return a
	}
	rv := reflect.ValueOf(v)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// objectEntry is one key/value pair of an object-kinded value.
type objectEntry struct {
	key string
	val any
}

// objectEntries returns the entries of an object-kinded value sorted by key.
// Go maps carry no insertion order, so lexicographic order is the stable
// enumeration the whole engine agrees on.
func objectEntries(v any) []objectEntry {
	var out []objectEntry
	if m, ok := v.(map[string]any); ok {
		out = make([]objectEntry, 0, len(m))
		for k, mv := range m {
			out = append(out, objectEntry{key: k, val: mv})
		}
	} else {
		rv := reflect.ValueOf(v)
		out = make([]objectEntry, 0, rv.Len())
		it := rv.MapRange()
		for it.Next() {
			out = append(out, objectEntry{key: it.Key().String(), val: it.Value().Interface()})
		}
	}
	sortEntries(out)
	return out
}

func sortEntries(es []objectEntry) {
	// insertion sort; property counts are small and this avoids a sort.Slice
	// closure allocation on the hot path
	for i := 1; i < len(es); i++ {
		for j := i; j > 0 && es[j].key < es[j-1].key; j-- {
			es[j], es[j-1] = es[j-1], es[j]
		}
	}
}

// numberTypeName returns the schema type attribute for a numeric value.
func numberTypeName(v any) string {
	if numberIsWhole(v) {
		return "integer"
	}
	return "number"
}
