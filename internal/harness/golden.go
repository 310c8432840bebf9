package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/slotpack/internal/slot"
)

// LayoutSnapshot captures the complete optimizer result for a scenario.
// Serialized as indented JSON for stable, reviewable golden files.
type LayoutSnapshot struct {
	ScenarioName  string             `json:"scenario_name"`
	OriginalSlots int                `json:"original_slots"`
	MinSlots      int                `json:"min_slots"`
	MaxSlots      int                `json:"max_slots"`
	WinningOrder  []SnapshotVariable `json:"winning_order"`
}

// SnapshotVariable is one variable of the snapshot's winning order.
type SnapshotVariable struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// RunWithGolden executes a scenario and compares the full result
// against a golden file under testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}

	AssertGolden(t, scenario.Name, result)
	return nil
}

// AssertGolden compares an optimizer result against a golden file
// without re-running the scenario.
func AssertGolden(t *testing.T, scenarioName string, result *slot.Result) {
	t.Helper()

	snapshot := LayoutSnapshot{
		ScenarioName:  scenarioName,
		OriginalSlots: result.OriginalSlots,
		MinSlots:      result.MinSlots,
		MaxSlots:      result.MaxSlots,
		WinningOrder:  make([]SnapshotVariable, 0, len(result.WinningOrder)),
	}
	for _, v := range result.WinningOrder {
		snapshot.WinningOrder = append(snapshot.WinningOrder, SnapshotVariable{Type: v.Type, Name: v.Name})
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}
	data = append(data, '\n')

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, data)
}
