package harness

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/slotpack/internal/slot"
)

// Scenario defines one declarative layout case.
type Scenario struct {
	// Name uniquely identifies this scenario; it also names the golden
	// snapshot file.
	Name string `yaml:"name"`

	// Description explains what this scenario demonstrates.
	Description string `yaml:"description,omitempty"`

	// Variables lists declarations as "<type> <name>" strings, in the
	// original (unoptimized) order.
	Variables []string `yaml:"variables"`

	// Expect holds the asserted outcome. Unset fields are not checked.
	Expect Expectation `yaml:"expect"`
}

// Expectation is the asserted outcome of a scenario. Slot counts use
// pointers so zero is expressible while unset fields stay unchecked.
type Expectation struct {
	OriginalSlots *int `yaml:"original_slots,omitempty"`
	MinSlots      *int `yaml:"min_slots,omitempty"`
	MaxSlots      *int `yaml:"max_slots,omitempty"`

	// WinningOrder is the expected winner as a sequence of variable
	// names (winner selection is name-based).
	WinningOrder []string `yaml:"winning_order,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file. Returns an error
// if the file doesn't exist, is malformed, contains unknown fields
// (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("missing required field: name")
	}
	if len(s.Variables) == 0 {
		return fmt.Errorf("missing required field: variables")
	}
	return nil
}

// parseVariables tokenizes the scenario's declaration strings.
func (s *Scenario) parseVariables() ([]slot.Variable, error) {
	out := make([]slot.Variable, 0, len(s.Variables))
	for _, decl := range s.Variables {
		fields := strings.Fields(decl)
		if len(fields) != 2 {
			return nil, fmt.Errorf("scenario %q: bad declaration %q: want \"<type> <name>\"", s.Name, decl)
		}
		out = append(out, slot.Variable{Type: fields[0], Name: fields[1]})
	}
	return out, nil
}
