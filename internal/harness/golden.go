package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/solid/internal/transcript"
)

// GoldenDir is where golden transcripts live, relative to the test's package.
const GoldenDir = "testdata/golden"

// RunWithGolden executes a scenario and compares its transcript against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if the scenario cannot be run. A mismatch fails t via goldie.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	if err := AssertGolden(t, scenario.Name, result.Transcript); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an already recorded transcript against a golden
// file named after name.
func AssertGolden(t *testing.T, name string, tr *transcript.Transcript) error {
	t.Helper()

	data, err := tr.MarshalCanonical()
	if err != nil {
		return err
	}
	data = append(data, '\n')

	g := goldie.New(t,
		goldie.WithFixtureDir(GoldenDir),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)

	return nil
}
