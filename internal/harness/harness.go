package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/slotpack/internal/slot"
)

// Run parses a scenario's variables and executes the optimizer.
func Run(scenario *Scenario) (*slot.Result, error) {
	variables, err := scenario.parseVariables()
	if err != nil {
		return nil, err
	}
	return slot.FindOptimalOrdering(variables)
}

// RunAndVerify executes a scenario and asserts its expectations.
func RunAndVerify(t *testing.T, scenario *Scenario) *slot.Result {
	t.Helper()

	result, err := Run(scenario)
	require.NoError(t, err, "scenario %q failed to run", scenario.Name)

	e := scenario.Expect
	if e.OriginalSlots != nil {
		assert.Equal(t, *e.OriginalSlots, result.OriginalSlots, "scenario %q: original slots", scenario.Name)
	}
	if e.MinSlots != nil {
		assert.Equal(t, *e.MinSlots, result.MinSlots, "scenario %q: min slots", scenario.Name)
	}
	if e.MaxSlots != nil {
		assert.Equal(t, *e.MaxSlots, result.MaxSlots, "scenario %q: max slots", scenario.Name)
	}
	if e.WinningOrder != nil {
		got := make([]string, len(result.WinningOrder))
		for i, v := range result.WinningOrder {
			got[i] = v.Name
		}
		assert.Equal(t, e.WinningOrder, got, "scenario %q: winning order", scenario.Name)
	}

	return result
}

// RunFile loads a scenario from a YAML file and asserts it.
func RunFile(t *testing.T, path string) *slot.Result {
	t.Helper()

	scenario, err := LoadScenario(path)
	require.NoError(t, err)
	return RunAndVerify(t, scenario)
}
