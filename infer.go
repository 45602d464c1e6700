package schemasniff

import (
	inf "github.com/schemabound/schemasniff/internal/infer"
	js "github.com/schemabound/schemasniff/jsonschema"
)

// Infer classifies a JSON-compatible value into a schema fragment. It is the
// recursive driver's entry point at depth 0 and always produces a fragment:
// values outside the JSON type universe degrade to a best-effort type-only
// fragment instead of failing.
func Infer(v any, opts ...InferOpt) *js.Schema {
	opt := normalizeOpt(opts)
	return inf.Value(v, engineOptions(opt), 0)
}

// MergeObjectSchemas combines multiple object fragments into one: property
// names are unioned, divergent shapes become oneOf alternatives, and a
// property stays required only when present and required in every input.
// Merging an empty list yields {"type":"object","properties":{}}.
func MergeObjectSchemas(frs []*js.Schema) *js.Schema {
	return inf.MergeObjects(frs)
}

// DeduplicateSchemas returns the structurally unique fragments in first-seen
// order. Equality is canonical value comparison, insensitive to property key
// order.
func DeduplicateSchemas(frs []*js.Schema) []*js.Schema {
	return js.Dedupe(frs)
}

func normalizeOpt(opts []InferOpt) InferOpt {
	if len(opts) == 0 {
		return DefaultInferOpt()
	}
	return opts[len(opts)-1]
}

func engineOptions(opt InferOpt) inf.Options {
	return inf.Options{DetectFormat: opt.DetectFormat, MaxDepth: opt.MaxDepth}
}
