package infer

import "regexp"

// String formats are probed in a fixed priority order; the first match wins.
// The patterns deliberately mirror the loose, practical shapes seen in real
// payloads rather than the full RFC grammars.
var formatChecks = []struct {
	name string
	re   *regexp.Regexp
}{
	// ISO-8601 date or date-time, optional fractional seconds, optional
	// Z or numeric UTC offset
	{"date-time", regexp.MustCompile(`^\d{4}-\d{2}-\d{2}([Tt ]\d{2}:\d{2}:\d{2}(\.\d+)?([Zz]|[+-]\d{2}:?\d{2})?)?$`)},
	// local@domain, no whitespace, dot-containing domain
	{"email", regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)},
	// http/https/ftp scheme with a non-empty authority+path
	{"uri", regexp.MustCompile(`^(https?|ftp)://\S+$`)},
	// canonical 8-4-4-4-12 layout, version nibble 1-5, variant nibble 8/9/a/b
	{"uuid", regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[1-5][0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)},
}

// DetectFormat classifies a string into a schema format name, or "" when no
// known format matches.
func DetectFormat(s string) string {
	for _, fc := range formatChecks {
		if fc.re.MatchString(s) {
			return fc.name
		}
	}
	return ""
}
