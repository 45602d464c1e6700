// Package infer holds the schema inference engine: the recursive value
// classifier, the object/array builders with their depth bound, and the
// object-fragment merger. The root package re-exports the public entry
// points; everything here is free of I/O and shared state, so concurrent
// inference calls never interfere.
package infer

import (
	js "github.com/schemabound/schemasniff/jsonschema"
)

// Options is the engine-facing slice of the public option surface.
type Options struct {
	// DetectFormat toggles string format probing.
	DetectFormat bool
	// MaxDepth bounds how many container levels are expanded; <= 0 means
	// unlimited. The bound is checked before descending, so leaves are
	// always classified.
	MaxDepth int
}

// Value infers a schema fragment for v at the given recursion depth.
// It always succeeds: values outside the JSON type universe degrade to a
// best-effort type-only fragment.
func Value(v any, opt Options, depth int) *js.Schema {
	switch kindOf(v) {
	case KindNull:
		return &js.Schema{Type: "null"}
	case KindArray:
		return buildArray(v, opt, depth)
	case KindObject:
		return buildObject(v, opt, depth)
	case KindBool:
		return &js.Schema{Type: "boolean"}
	case KindNumber:
		return &js.Schema{Type: numberTypeName(v)}
	case KindString:
		return stringSchema(v.(string), opt)
	default:
		return &js.Schema{Type: fallbackTypeName(v)}
	}
}

func stringSchema(s string, opt Options) *js.Schema {
	if opt.DetectFormat {
		if f := DetectFormat(s); f != "" {
			return &js.Schema{Type: "string", Format: f}
		}
	}
	return &js.Schema{Type: "string"}
}

func depthReached(opt Options, depth int) bool {
	return opt.MaxDepth > 0 && depth >= opt.MaxDepth
}

// buildObject enumerates the object's own keys and infers each property one
// level deeper. A single sample makes every enumerated key required.
func buildObject(v any, opt Options, depth int) *js.Schema {
	if depthReached(opt, depth) {
		// deliberate information loss: type-only fragment at the bound
		return &js.Schema{Type: "object"}
	}
	entries := objectEntries(v)
	props := make(map[string]*js.Schema, len(entries))
	required := make([]string, 0, len(entries))
	for _, e := range entries {
		props[e.key] = Value(e.val, opt, depth+1)
		required = append(required, e.key)
	}
	out := &js.Schema{Type: "object", Properties: props}
	if len(required) > 0 {
		out.Required = required
	}
	return out
}

// buildArray infers every element one level deeper, then decides between a
// homogeneous items schema and a oneOf alternative set.
func buildArray(v any, opt Options, depth int) *js.Schema {
	if depthReached(opt, depth) {
		return &js.Schema{Type: "array"}
	}
	elems := arrayElements(v)
	if len(elems) == 0 {
		// {} accepts anything, which is all an empty array can promise
		return &js.Schema{Type: "array", Items: &js.Schema{}}
	}
	frags := make([]*js.Schema, len(elems))
	types := make([]string, 0, 2)
	for i, e := range elems {
		frags[i] = Value(e, opt, depth+1)
		if t := frags[i].Type; !containsString(types, t) {
			types = append(types, t)
		}
	}
	if len(types) > 1 {
		// no common shape: keep full per-element detail as alternatives
		return &js.Schema{Type: "array", Items: &js.Schema{OneOf: js.Dedupe(frags)}}
	}
	if types[0] == "object" {
		return &js.Schema{Type: "array", Items: MergeObjects(frags)}
	}
	// homogeneous primitives: only the common type survives
	return &js.Schema{Type: "array", Items: &js.Schema{Type: types[0]}}
}

func containsString(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
