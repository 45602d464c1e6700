package jsonschema_test

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	js "github.com/schemabound/schemasniff/jsonschema"
)

func render(t *testing.T, s *js.Schema) string {
	t.Helper()
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}

func TestMarshal_EmptyFragment(t *testing.T) {
	if got := render(t, &js.Schema{}); got != "{}" {
		t.Fatalf("empty fragment = %s", got)
	}
}

func TestMarshal_EmptyPropertiesRendered(t *testing.T) {
	got := render(t, &js.Schema{Type: "object", Properties: map[string]*js.Schema{}})
	if got != `{"type":"object","properties":{}}` {
		t.Fatalf("got %s", got)
	}
}

func TestMarshal_NilPropertiesOmitted(t *testing.T) {
	got := render(t, &js.Schema{Type: "object"})
	if got != `{"type":"object"}` {
		t.Fatalf("got %s", got)
	}
}

func TestMarshal_HeaderFirst(t *testing.T) {
	got := render(t, &js.Schema{SchemaURI: "http://json-schema.org/draft-07/schema#", Type: "null"})
	if !strings.HasPrefix(got, `{"$schema":`) {
		t.Fatalf("header not first: %s", got)
	}
}

func TestMarshal_PropertyKeysSorted(t *testing.T) {
	s := &js.Schema{
		Type: "object",
		Properties: map[string]*js.Schema{
			"b": {Type: "integer"},
			"a": {Type: "string"},
		},
	}
	got := render(t, s)
	if strings.Index(got, `"a"`) > strings.Index(got, `"b"`) {
		t.Fatalf("keys not sorted: %s", got)
	}
}

func TestEqual_IgnoresPropertyMapOrder(t *testing.T) {
	a := &js.Schema{Type: "object", Properties: map[string]*js.Schema{
		"x": {Type: "string"}, "y": {Type: "integer"},
	}}
	b := &js.Schema{Type: "object", Properties: map[string]*js.Schema{
		"y": {Type: "integer"}, "x": {Type: "string"},
	}}
	if !js.Equal(a, b) {
		t.Fatalf("map construction order must not matter")
	}
}

func TestEqual_DistinguishesNilAndEmptyProperties(t *testing.T) {
	cut := &js.Schema{Type: "object"}
	empty := &js.Schema{Type: "object", Properties: map[string]*js.Schema{}}
	if js.Equal(cut, empty) {
		t.Fatalf("depth-cut and empty-object fragments are different shapes")
	}
}

func TestEqual_RequiredOrderSensitive(t *testing.T) {
	a := &js.Schema{Type: "object", Required: []string{"a", "b"}}
	b := &js.Schema{Type: "object", Required: []string{"b", "a"}}
	if js.Equal(a, b) {
		t.Fatalf("required is an ordered set")
	}
}

func TestDedupe_FirstSeenOrder(t *testing.T) {
	in := []*js.Schema{
		{Type: "string"},
		{Type: "integer"},
		{Type: "string"},
		{Type: "string", Format: "uuid"},
	}
	out := js.Dedupe(in)
	if len(out) != 3 {
		t.Fatalf("len = %d", len(out))
	}
	if out[0].Type != "string" || out[1].Type != "integer" || out[2].Format != "uuid" {
		t.Fatalf("order lost: %s %s %s", render(t, out[0]), render(t, out[1]), render(t, out[2]))
	}
}

func TestClone_IsDeep(t *testing.T) {
	orig := &js.Schema{
		Type: "object",
		Properties: map[string]*js.Schema{
			"xs": {Type: "array", Items: &js.Schema{Type: "integer"}},
		},
		Required: []string{"xs"},
	}
	cp := js.Clone(orig)
	if !js.Equal(orig, cp) {
		t.Fatalf("clone differs: %s vs %s", render(t, orig), render(t, cp))
	}
	cp.Properties["xs"].Items.Type = "string"
	cp.Required[0] = "changed"
	if orig.Properties["xs"].Items.Type != "integer" || orig.Required[0] != "xs" {
		t.Fatalf("clone shares structure with original")
	}
}

func TestStripRequired_Recursive(t *testing.T) {
	s := &js.Schema{
		Type:     "object",
		Required: []string{"a"},
		Properties: map[string]*js.Schema{
			"a": {Type: "object", Required: []string{"b"}, Properties: map[string]*js.Schema{"b": {Type: "integer"}}},
		},
		Items: &js.Schema{Type: "object", Required: []string{"c"}},
		OneOf: []*js.Schema{{Type: "object", Required: []string{"d"}}},
	}
	js.StripRequired(s)
	if s.Required != nil || s.Properties["a"].Required != nil || s.Items.Required != nil || s.OneOf[0].Required != nil {
		t.Fatalf("required survived stripping: %s", render(t, s))
	}
}
