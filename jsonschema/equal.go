package jsonschema

// Equal reports whether two fragments are structurally identical. Comparison
// is by value over the fragment tree: properties are compared key-wise
// (map key order cannot matter), Required and OneOf element-wise in order.
// This replaces serialize-and-compare so that fragments never need a canonical
// text form just to be deduplicated.
func Equal(a, b *Schema) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.SchemaURI != b.SchemaURI || a.Type != b.Type || a.Format != b.Format {
		return false
	}
	if (a.Properties == nil) != (b.Properties == nil) || len(a.Properties) != len(b.Properties) {
		return false
	}
	for k, av := range a.Properties {
		bv, ok := b.Properties[k]
		if !ok || !Equal(av, bv) {
			return false
		}
	}
	if len(a.Required) != len(b.Required) {
		return false
	}
	for i, r := range a.Required {
		if b.Required[i] != r {
			return false
		}
	}
	if (a.Items == nil) != (b.Items == nil) {
		return false
	}
	if a.Items != nil && !Equal(a.Items, b.Items) {
		return false
	}
	if len(a.OneOf) != len(b.OneOf) {
		return false
	}
	for i, alt := range a.OneOf {
		if !Equal(alt, b.OneOf[i]) {
			return false
		}
	}
	return true
}

// Dedupe returns the structurally unique fragments in first-seen order.
// Later duplicates are dropped; the input slice is not modified.
func Dedupe(frs []*Schema) []*Schema {
	out := make([]*Schema, 0, len(frs))
	for _, f := range frs {
		dup := false
		for _, seen := range out {
			if Equal(f, seen) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, f)
		}
	}
	return out
}
