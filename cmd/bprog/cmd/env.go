package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bprog-lang/bprog/internal/eval"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

var envFormat string

var envCmd = &cobra.Command{
	Use:   "env [file]",
	Short: "Run a program and dump its final Variables and Functions",
	Long: `Evaluate a program file to completion and print its final Variables
and Functions namespaces (spec.md's "Two environments" design) as YAML
or JSON.

Examples:
  bprog env script.bprog
  bprog env --format json script.bprog`,
	Args: cobra.ExactArgs(1),
	RunE: envScript,
}

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().StringVar(&envFormat, "format", "yaml", `output format: "yaml" or "json"`)
}

// envDump is the shape serialized for both formats: variable names
// mapped to their Display form, function names mapped to their stored
// Block's token sequence.
type envDump struct {
	Variables map[string]string   `yaml:"variables"`
	Functions map[string][]string `yaml:"functions"`
}

func envScript(cmd *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	out := cmd.OutOrStdout()
	e := eval.New(out, nil)
	if execErr := e.Exec(string(content)); execErr != nil {
		fmt.Fprintf(out, "Error: %s\n", execErr)
	}

	dump := buildEnvDump(e)

	switch strings.ToLower(envFormat) {
	case "yaml", "":
		encoded, err := yaml.Marshal(dump)
		if err != nil {
			return fmt.Errorf("encoding env as yaml: %w", err)
		}
		fmt.Fprint(out, string(encoded))
	case "json":
		encoded, err := encodeEnvJSON(dump)
		if err != nil {
			return fmt.Errorf("encoding env as json: %w", err)
		}
		fmt.Fprintln(out, encoded)
	default:
		return fmt.Errorf("unknown --format %q, want \"yaml\" or \"json\"", envFormat)
	}
	return nil
}

func buildEnvDump(e *eval.Evaluator) envDump {
	dump := envDump{
		Variables: map[string]string{},
		Functions: map[string][]string{},
	}
	for _, name := range e.Variables.Names() {
		v, ok := e.Variables.Get(name)
		if !ok {
			continue
		}
		dump.Variables[name] = v.Display(e.Variables)
	}
	for _, name := range e.Functions.Names() {
		body, ok := e.Functions.Get(name)
		if !ok {
			continue
		}
		dump.Functions[name] = body.Tokens
	}
	return dump
}

// encodeEnvJSON builds the JSON document incrementally with sjson
// rather than relying on struct tags, so variable/function names with
// characters JSON struct-field mapping would mangle still round-trip.
// sjson and gjson both treat "." in a path as nesting, so every name
// segment is escaped with escapePathSegment before being set, and the
// same escaped path is used to read the value back with gjson and
// confirm it survived the round trip unchanged.
func encodeEnvJSON(dump envDump) (string, error) {
	doc := "{}"
	var err error

	names := make([]string, 0, len(dump.Variables))
	for name := range dump.Variables {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		doc, err = sjson.Set(doc, "variables."+escapePathSegment(name), dump.Variables[name])
		if err != nil {
			return "", err
		}
	}

	names = names[:0]
	for name := range dump.Functions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		doc, err = sjson.Set(doc, "functions."+escapePathSegment(name), dump.Functions[name])
		if err != nil {
			return "", err
		}
	}

	if err := verifyEnvJSON(doc, dump); err != nil {
		return "", err
	}
	return doc, nil
}

// escapePathSegment backslash-escapes the sjson/gjson path metacharacters
// (".", "*", "?", "|") in a single path segment so a bprog name containing
// one of them addresses exactly one key instead of being read as nesting
// or a wildcard.
func escapePathSegment(name string) string {
	replacer := strings.NewReplacer(
		`.`, `\.`,
		`*`, `\*`,
		`?`, `\?`,
		`|`, `\|`,
	)
	return replacer.Replace(name)
}

// verifyEnvJSON parses doc back with gjson and re-fetches every
// variable/function by its escaped path, confirming the decoded value
// matches what was set. A name whose escaping didn't round-trip (or
// that collided with another escaped name) shows up as a missing or
// mismatched value here instead of silently shipping corrupted JSON.
func verifyEnvJSON(doc string, dump envDump) error {
	if !gjson.Valid(doc) {
		return fmt.Errorf("env JSON encoding produced invalid JSON")
	}
	parsed := gjson.Parse(doc)
	for name, want := range dump.Variables {
		got := parsed.Get("variables." + escapePathSegment(name))
		if !got.Exists() || got.String() != want {
			return fmt.Errorf("env JSON round-trip: variable %q did not survive encoding", name)
		}
	}
	for name, want := range dump.Functions {
		got := parsed.Get("functions." + escapePathSegment(name))
		if !got.Exists() || !tokensEqual(got, want) {
			return fmt.Errorf("env JSON round-trip: function %q did not survive encoding", name)
		}
	}
	return nil
}

// tokensEqual compares a gjson array result against the token slice
// that was encoded into it.
func tokensEqual(got gjson.Result, want []string) bool {
	gotArr := got.Array()
	if len(gotArr) != len(want) {
		return false
	}
	for i, tok := range want {
		if gotArr[i].String() != tok {
			return false
		}
	}
	return true
}
