// Package harness runs conformance scenarios against the principle vignettes.
//
// A scenario names one vignette from the catalog, runs its demo driver into a
// transcript, and checks the recorded output.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: dip_foodies
//	description: "Each foodie eats from the provider it was given"
//	demo: dip
//	run_id: test-run-dip
//	expect:
//	  - "Man, that's some tasty pizza!"
//	  - "Some sick ice cream!"
//	assertions:
//	  - type: output_order
//	    texts: ["pizza", "ice cream"]
//
// Files are decoded strictly (unknown keys are rejected) and checked against
// an embedded CUE schema before the Go-side semantic checks run.
//
// # Assertion Types
//
//   - output_contains: some line contains text
//   - output_order: texts are found in order, each after the previous match
//   - output_count: exactly count lines contain text
//   - output_repeatable: running the demo again yields the same lines
//
// # Deterministic Testing
//
// Every run uses a fixed run ID (from run_id, or runid.DefaultFixedToken) and
// line numbers start at 1, so the same scenario always produces a
// byte-identical transcript. RunWithGolden compares that transcript against
// testdata/golden/{name}.golden.
package harness
