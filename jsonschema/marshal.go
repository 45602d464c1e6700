package jsonschema

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// MarshalJSON renders the fragment with attributes in declaration order
// ($schema first, type before the container attributes). It exists instead of
// plain struct tags because an empty-object sample must render as
// "properties": {} while a depth-cut fragment omits the attribute entirely;
// omitempty cannot tell a nil map from an empty one.
func (s *Schema) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	first := true
	field := func(name string, v any) error {
		if !first {
			b.WriteByte(',')
		}
		first = false
		b.WriteByte('"')
		b.WriteString(name)
		b.WriteString(`":`)
		vb, err := json.Marshal(v)
		if err != nil {
			return err
		}
		b.Write(vb)
		return nil
	}
	if s.SchemaURI != "" {
		if err := field("$schema", s.SchemaURI); err != nil {
			return nil, err
		}
	}
	if s.Type != "" {
		if err := field("type", s.Type); err != nil {
			return nil, err
		}
	}
	if s.Format != "" {
		if err := field("format", s.Format); err != nil {
			return nil, err
		}
	}
	if s.Properties != nil {
		// map marshaling sorts keys, keeping output deterministic
		if err := field("properties", s.Properties); err != nil {
			return nil, err
		}
	}
	if len(s.Required) > 0 {
		if err := field("required", s.Required); err != nil {
			return nil, err
		}
	}
	if s.Items != nil {
		if err := field("items", s.Items); err != nil {
			return nil, err
		}
	}
	if len(s.OneOf) > 0 {
		if err := field("oneOf", s.OneOf); err != nil {
			return nil, err
		}
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}
