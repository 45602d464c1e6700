package schemasniff

import (
	json "github.com/goccy/go-json"

	js "github.com/schemabound/schemasniff/jsonschema"
)

// GenerateFrom decodes one sample document from src, infers its schema, and
// wraps the result in a dialect envelope: the "$schema" header is set to the
// configured version's URL, and OptimizeForLLM strips required lists as a
// post-pass. The engine's own output stays untouched; only a clone is
// mutated.
func GenerateFrom(src Source, opts ...InferOpt) (*js.Schema, error) {
	opt := normalizeOpt(opts)
	v, err := src.DecodeAny()
	if err != nil {
		return nil, decodeIssue(src, err)
	}
	root := js.Clone(Infer(v, opt))
	root.SchemaURI = opt.SchemaVersion.URL()
	if opt.OptimizeForLLM {
		js.StripRequired(root)
	}
	return root, nil
}

// Generate is GenerateFrom over an in-memory JSON document.
func Generate(data []byte, opts ...InferOpt) (*js.Schema, error) {
	return GenerateFrom(JSONBytes(data), opts...)
}

// GenerateString parses a JSON string and renders the enveloped schema as
// indented JSON.
func GenerateString(input string, opts ...InferOpt) (string, error) {
	root, err := Generate([]byte(input), opts...)
	if err != nil {
		return "", err
	}
	b, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeIssue(src Source, err error) Issues {
	code := CodeInvalidJSON
	if src.Name() == "yaml" {
		code = CodeInvalidYAML
	}
	return singleIssue(code, err.Error(), err)
}
