package schemasniff

import (
	"bytes"
	"errors"
	"io"

	json "github.com/goccy/go-json"
)

// Source supplies one fully materialized sample document. Inference never
// streams: the whole value is decoded before the engine runs.
type Source interface {
	// DecodeAny materializes the document as a JSON-compatible value
	// (map[string]any, []any, json.Number, string, bool, nil).
	DecodeAny() (any, error)
	// Name identifies the decoder for error classification.
	Name() string
}

// JSONBytes wraps a JSON document held in memory.
func JSONBytes(b []byte) Source { return jsonSource{r: bytes.NewReader(b)} }

// JSONReader wraps a JSON document read from r.
func JSONReader(r io.Reader) Source { return jsonSource{r: r} }

type jsonSource struct {
	r io.Reader
}

func (s jsonSource) Name() string { return "json" }

// DecodeAny decodes with UseNumber so the engine can tell integers from
// fractional numbers without float64 round-tripping. The document must be a
// single JSON value; trailing input is a parse failure.
func (s jsonSource) DecodeAny() (any, error) {
	dec := json.NewDecoder(s.r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		if err == nil {
			return nil, errors.New("trailing data after top-level value")
		}
		return nil, err
	}
	return v, nil
}
