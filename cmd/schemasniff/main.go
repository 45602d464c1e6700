package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"

	schemasniff "github.com/schemabound/schemasniff"
)

func main() {
	fs := flag.NewFlagSet("schemasniff", flag.ExitOnError)
	var (
		in       string
		yamlIn   bool
		version  string
		depth    int
		noFormat bool
		llm      bool
		compact  bool
	)
	fs.StringVar(&in, "in", "-", "input file ('-' for stdin)")
	fs.BoolVar(&yamlIn, "yaml", false, "treat input as YAML instead of JSON")
	fs.StringVar(&version, "version", "07", "schema dialect: 07, 2019-09 or 2020-12")
	fs.IntVar(&depth, "depth", 0, "max container depth to expand (0 = unlimited)")
	fs.BoolVar(&noFormat, "no-format", false, "disable string format detection")
	fs.BoolVar(&llm, "llm", false, "strip required lists for compact LLM prompts")
	fs.BoolVar(&compact, "compact", false, "emit compact JSON instead of indented")
	fs.Usage = usage(fs)
	_ = fs.Parse(os.Args[1:])

	sv, ok := parseVersion(version)
	if !ok {
		fmt.Fprintf(os.Stderr, "schemasniff: unknown -version %q\n", version)
		fs.Usage()
		os.Exit(2)
	}

	data, err := readInput(in)
	if err != nil {
		fatalf("reading %s: %v", in, err)
	}

	opt := schemasniff.DefaultInferOpt()
	opt.SchemaVersion = sv
	opt.MaxDepth = depth
	opt.DetectFormat = !noFormat
	opt.OptimizeForLLM = llm

	src := schemasniff.Source(schemasniff.JSONBytes(data))
	if yamlIn {
		src = schemasniff.YAMLBytes(data)
	}
	schema, err := schemasniff.GenerateFrom(src, opt)
	if err != nil {
		fatalf("%v", err)
	}

	var out []byte
	if compact {
		out, err = json.Marshal(schema)
	} else {
		out, err = json.MarshalIndent(schema, "", "  ")
	}
	if err != nil {
		fatalf("rendering schema: %v", err)
	}
	fmt.Println(string(out))
}

func usage(fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintln(os.Stderr, "schemasniff infers a JSON Schema from a sample document.\n\nUsage:\n  schemasniff [-in file] [-yaml] [-version 07|2019-09|2020-12] [-depth N] [-no-format] [-llm] [-compact]")
		fs.PrintDefaults()
	}
}

func parseVersion(s string) (schemasniff.SchemaVersion, bool) {
	switch schemasniff.SchemaVersion(s) {
	case schemasniff.Draft07, schemasniff.Draft201909, schemasniff.Draft202012:
		return schemasniff.SchemaVersion(s), true
	}
	return "", false
}

func readInput(in string) ([]byte, error) {
	if in == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(in)
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "schemasniff: "+format+"\n", a...)
	os.Exit(1)
}
