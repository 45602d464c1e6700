package schemasniff

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLBytes wraps a YAML document held in memory. The decoded value is
// normalized into the same JSON-compatible shape the JSON sources produce,
// so inference output is identical for equivalent documents.
func YAMLBytes(b []byte) Source { return yamlSource{data: b} }

type yamlSource struct {
	data []byte
}

func (s yamlSource) Name() string { return "yaml" }

func (s yamlSource) DecodeAny() (any, error) {
	var v any
	if err := yaml.Unmarshal(s.data, &v); err != nil {
		return nil, err
	}
	return normalizeYAML(v), nil
}

// normalizeYAML rewrites yaml.v3 output into JSON-compatible containers.
// v3 already yields map[string]any for string-keyed mappings; non-string
// keys are stringified the way JSON object keys would be.
func normalizeYAML(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, mv := range x {
			x[k] = normalizeYAML(mv)
		}
		return x
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, mv := range x {
			m[fmt.Sprint(k)] = normalizeYAML(mv)
		}
		return m
	case []any:
		for i, ev := range x {
			x[i] = normalizeYAML(ev)
		}
		return x
	default:
		return v
	}
}
