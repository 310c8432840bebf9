// Package harness runs declarative layout scenarios.
//
// A scenario is a YAML file naming a set of variable declarations and
// the slot counts (and optionally the winning order) the optimizer is
// expected to report. Scenarios double as regression tests and as
// executable documentation of the packing semantics: each file states
// an observable property of the optimizer without reference to its
// implementation.
//
// Golden snapshots complement the inline expectations: RunWithGolden
// captures the full result as canonical JSON under testdata/golden and
// fails when any field drifts. Regenerate with:
//
//	go test ./internal/harness -update
package harness
