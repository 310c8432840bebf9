package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/roach88/slotpack/internal/slot"
)

// Error codes surfaced in CLI output.
const (
	ErrCodeParse    = "PARSE_ERROR"
	ErrCodeNotFound = "FILE_NOT_FOUND"
	ErrCodeUsage    = "USAGE_ERROR"
	ErrCodeGeneric  = "INTERNAL_ERROR"
)

// ParseError reports a declaration that could not be tokenized.
type ParseError struct {
	Decl    string // offending declaration segment
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q: %s", ErrCodeParse, e.Decl, e.Message)
}

// layoutFile is the YAML layout document shape:
//
//	variables:
//	  - type: uint128
//	    name: balance
type layoutFile struct {
	Variables []layoutVariable `yaml:"variables"`
}

type layoutVariable struct {
	Type string `yaml:"type"`
	Name string `yaml:"name"`
}

// ParseDeclarations tokenizes a semicolon-separated list of
// "<type> <name>" declarations. Blank segments are skipped, so both
// terminated ("uint8 a;") and unterminated ("uint8 a") final
// declarations parse.
func ParseDeclarations(input string) ([]slot.Variable, error) {
	var out []slot.Variable
	for _, seg := range strings.Split(input, ";") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		fields := strings.Fields(seg)
		if len(fields) != 2 {
			return nil, &ParseError{Decl: seg, Message: `want "<type> <name>"`}
		}
		out = append(out, newVariable(fields[0], fields[1]))
	}
	return out, nil
}

// newVariable NFC-normalizes the name so the lexicographic tie-break is
// byte-stable regardless of how the input encodes combining characters.
func newVariable(typ, name string) slot.Variable {
	return slot.Variable{Type: typ, Name: norm.NFC.String(name)}
}

// LoadVariablesFile reads declarations from a file. Files ending in
// .yaml or .yml are parsed as strict YAML layouts; anything else is the
// semicolon-separated text form.
func LoadVariablesFile(path string) ([]slot.Variable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read variables file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAMLLayout(data)
	}
	return ParseDeclarations(string(data))
}

// parseYAMLLayout decodes a YAML layout with strict field validation
// (catches typos like "variable:" vs "variables:").
func parseYAMLLayout(data []byte) ([]slot.Variable, error) {
	var doc layoutFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML layout: %w", err)
	}

	out := make([]slot.Variable, 0, len(doc.Variables))
	for _, lv := range doc.Variables {
		if lv.Type == "" || lv.Name == "" {
			return nil, &ParseError{
				Decl:    strings.TrimSpace(lv.Type + " " + lv.Name),
				Message: "layout entries need both type and name",
			}
		}
		out = append(out, newVariable(lv.Type, lv.Name))
	}
	return out, nil
}
