package jsonschema

// Schema is the fragment representation produced by inference. Every attribute
// is optional on the wire; a zero-value Schema renders as "{}" (the
// always-valid item schema for empty arrays).
type Schema struct {
	// SchemaURI holds the dialect identifier ("$schema"). The engine never
	// sets it; the envelope splices it onto the root fragment.
	SchemaURI string `json:"$schema,omitempty"`

	// Core
	Type   string `json:"type,omitempty"`
	Format string `json:"format,omitempty"`

	// Object
	Properties map[string]*Schema `json:"properties,omitempty"`
	Required   []string           `json:"required,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty"`
}

// Clone returns a deep copy of s. Inference outputs are immutable once
// returned; callers that need to mutate (the envelope header, required
// stripping) clone first.
func Clone(s *Schema) *Schema {
	if s == nil {
		return nil
	}
	out := &Schema{
		SchemaURI: s.SchemaURI,
		Type:      s.Type,
		Format:    s.Format,
		Items:     Clone(s.Items),
	}
	if s.Properties != nil {
		out.Properties = make(map[string]*Schema, len(s.Properties))
		for k, v := range s.Properties {
			out.Properties[k] = Clone(v)
		}
	}
	if s.Required != nil {
		out.Required = append([]string(nil), s.Required...)
	}
	if s.OneOf != nil {
		out.OneOf = make([]*Schema, len(s.OneOf))
		for i, v := range s.OneOf {
			out.OneOf[i] = Clone(v)
		}
	}
	return out
}

// StripRequired removes every "required" attribute from the fragment tree in
// place. Used by the LLM-friendly output mode.
func StripRequired(s *Schema) {
	if s == nil {
		return
	}
	s.Required = nil
	for _, p := range s.Properties {
		StripRequired(p)
	}
	StripRequired(s.Items)
	for _, alt := range s.OneOf {
		StripRequired(alt)
	}
}
