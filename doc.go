package schemasniff

// Package schemasniff infers JSON Schema descriptions from sample data:
//
// - Recursive shape classification (objects, arrays, primitives, string formats)
// - Object-schema merging across samples (property union, required intersection)
// - Structural deduplication and oneOf alternative sets for mixed shapes
// - Depth-bounded expansion for compact output on deep structures
//
// Design policy:
// - Keep only public APIs in the root package; put the engine under internal/.
// - The fragment representation lives in jsonschema/, the CLI under cmd/schemasniff.
// - Inference is a pure function of (value, options); concurrent calls are safe.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	frag := schemasniff.Infer(value)
//	out, err := schemasniff.GenerateString(`{"name":"Alice","age":30}`)
//
//	merged := schemasniff.MergeObjectSchemas([]*jsonschema.Schema{a, b})
