package schemasniff

// SchemaVersion selects the JSON Schema dialect identifier attached to
// generated output. It controls only the "$schema" header string; fragment
// shape never varies by dialect.
type SchemaVersion string

const (
	Draft07     SchemaVersion = "07"
	Draft201909 SchemaVersion = "2019-09"
	Draft202012 SchemaVersion = "2020-12"
)

// URL returns the dialect identifier for the version. Unknown values fall
// back to draft-07, the default dialect.
func (v SchemaVersion) URL() string {
	switch v {
	case Draft201909:
		return "https://json-schema.org/draft/2019-09/schema"
	case Draft202012:
		return "https://json-schema.org/draft/2020-12/schema"
	default:
		return "http://json-schema.org/draft-07/schema#"
	}
}

// InferOpt bundles inference options. Options are independent and composable;
// pass at most one (last wins when several are given).
type InferOpt struct {
	// DetectFormat enables string format probing (date-time, email, uri,
	// uuid). DefaultInferOpt turns it on; a zero InferOpt leaves strings
	// bare.
	DetectFormat bool
	// SchemaVersion picks the "$schema" header for generated output.
	// Empty means Draft07.
	SchemaVersion SchemaVersion
	// MaxDepth bounds how many container levels are expanded before
	// truncating to a type-only fragment; <= 0 means unlimited.
	MaxDepth int
	// OptimizeForLLM strips all "required" attributes from generated
	// output, a pure post-processing pass for compact prompts.
	OptimizeForLLM bool
}

// DefaultInferOpt returns the recommended defaults: format detection on,
// draft-07 header, unlimited depth.
func DefaultInferOpt() InferOpt {
	return InferOpt{DetectFormat: true, SchemaVersion: Draft07}
}
