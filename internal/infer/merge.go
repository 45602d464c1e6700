package infer

import (
	"sort"

	js "github.com/schemabound/schemasniff/jsonschema"
)

// MergeObjects reconciles multiple object fragments (typically inferred from
// sibling array elements or independent samples) into one. Property sets are
// unioned, shapes unified, and a property stays required only when every
// sample both contains it and marks it required.
func MergeObjects(frags []*js.Schema) *js.Schema {
	names := map[string]struct{}{}
	for _, f := range frags {
		for name := range f.Properties {
			names[name] = struct{}{}
		}
	}
	ordered := make([]string, 0, len(names))
	for name := range names {
		ordered = append(ordered, name)
	}
	sort.Strings(ordered)

	total := len(frags)
	props := make(map[string]*js.Schema, len(ordered))
	var required []string
	for _, name := range ordered {
		var collected []*js.Schema
		requiredEverywhere := true
		for _, f := range frags {
			sub, ok := f.Properties[name]
			if !ok {
				continue
			}
			collected = append(collected, sub)
			if !containsString(f.Required, name) {
				requiredEverywhere = false
			}
		}
		if len(collected) == 0 {
			continue
		}
		props[name] = unifyShapes(collected)
		if requiredEverywhere && len(collected) == total {
			required = append(required, name)
		}
	}

	out := &js.Schema{Type: "object", Properties: props}
	if len(required) > 0 {
		out.Required = required
	}
	return out
}

// unifyShapes collapses the per-sample fragments for one property: a single
// shared shape passes through, divergent shapes become a oneOf alternative
// set.
func unifyShapes(collected []*js.Schema) *js.Schema {
	uniq := js.Dedupe(collected)
	if len(uniq) == 1 {
		return uniq[0]
	}
	return &js.Schema{OneOf: uniq}
}
