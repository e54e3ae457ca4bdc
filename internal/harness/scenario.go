package harness

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/solid/internal/catalog"
)

// Scenario defines one conformance check of a vignette.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Demo is the catalog name of the vignette to run (e.g. "dip").
	Demo string `yaml:"demo"`

	// RunID is an optional fixed run ID for deterministic transcripts.
	// If empty, runid.DefaultFixedToken is used.
	RunID string `yaml:"run_id,omitempty"`

	// Expect, when present, is the exact full output, one entry per line.
	Expect []string `yaml:"expect,omitempty"`

	// Assertions check properties of the output.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Assertion validates the recorded output.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// Text is the substring to look for (output_contains, output_count).
	Text string `yaml:"text,omitempty"`

	// Texts are substrings that must appear in order (output_order).
	Texts []string `yaml:"texts,omitempty"`

	// Count is the expected number of matching lines (output_count).
	Count int `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertOutputContains   = "output_contains"
	AssertOutputOrder      = "output_order"
	AssertOutputCount      = "output_count"
	AssertOutputRepeatable = "output_repeatable"
)

// ScenarioError is returned when a scenario file is well-formed YAML but
// does not describe a runnable scenario.
type ScenarioError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ScenarioError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid scenario: %v", e.Err)
	}
	return fmt.Sprintf("invalid scenario %s: %v", e.Path, e.Err)
}

func (e *ScenarioError) Unwrap() error {
	return e.Err
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed, contains unknown
// fields, fails the schema, or names a demo that isn't in the catalog.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	scenario, err := ParseScenario(data)
	if err != nil {
		var serr *ScenarioError
		if errors.As(err, &serr) && serr.Path == "" {
			serr.Path = path
		}
		return nil, err
	}
	return scenario, nil
}

// ParseScenario parses scenario YAML that has already been read.
func ParseScenario(data []byte) (*Scenario, error) {
	// Untyped decode feeds the CUE schema; it sees the document as written.
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if raw == nil {
		return nil, &ScenarioError{Err: errors.New("document is empty")}
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // reject typos like "assertion:" vs "assertions:"
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, &ScenarioError{Err: err}
	}

	return &scenario, nil
}

// validateScenario checks what the schema cannot: the demo exists and each
// assertion carries the fields its type needs.
func validateScenario(s *Scenario) error {
	if _, err := catalog.Lookup(s.Demo); err != nil {
		return err
	}

	if len(s.Expect) == 0 && len(s.Assertions) == 0 {
		return fmt.Errorf("expect or assertions is required")
	}

	for i := range s.Assertions {
		if err := validateAssertion(i, &s.Assertions[i]); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	switch a.Type {
	case AssertOutputContains:
		if a.Text == "" {
			return fmt.Errorf("assertions[%d]: text is required for output_contains", index)
		}
	case AssertOutputOrder:
		if len(a.Texts) == 0 {
			return fmt.Errorf("assertions[%d]: texts list is required for output_order", index)
		}
	case AssertOutputCount:
		if a.Text == "" {
			return fmt.Errorf("assertions[%d]: text is required for output_count", index)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for output_count", index)
		}
	case AssertOutputRepeatable:
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
