package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/roach88/solid/internal/catalog"
)

// ScenarioOutcome is the result of one scenario file in a suite.
type ScenarioOutcome struct {
	Name   string   `json:"name"`
	Path   string   `json:"path"`
	Demo   string   `json:"demo,omitempty"`
	Pass   bool     `json:"pass"`
	Errors []string `json:"errors,omitempty"`
}

// ValidationResult summarizes a suite run over a scenarios directory.
type ValidationResult struct {
	Scenarios []ScenarioOutcome `json:"scenarios"`
	Total     int               `json:"total"`
	Passed    int               `json:"passed"`
	Failed    int               `json:"failed"`

	// Uncovered lists catalog vignettes that no scenario exercised.
	// It is only filled when the suite ran unfiltered.
	Uncovered []string `json:"uncovered,omitempty"`
}

// OK reports whether every scenario passed and every vignette was covered.
func (r *ValidationResult) OK() bool {
	return r.Failed == 0 && len(r.Uncovered) == 0
}

// FindScenarioFiles finds all YAML scenario files under dir. A non-empty
// filter is a glob matched against the file name without extension.
func FindScenarioFiles(dir string, filter string) ([]string, error) {
	var files []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		if filter != "" {
			name := strings.TrimSuffix(filepath.Base(path), ext)
			matched, err := filepath.Match(filter, name)
			if err != nil {
				return fmt.Errorf("invalid filter pattern: %w", err)
			}
			if !matched {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})

	return files, err
}

// ValidatePrinciples runs every scenario under dir and reports which
// vignettes the scenarios left uncovered.
//
// Per-scenario load and run failures are recorded in the result; the
// returned error is reserved for problems reading dir itself.
func (h *Harness) ValidatePrinciples(dir string, filter string) (*ValidationResult, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("scenarios directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}

	files, err := FindScenarioFiles(dir, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find scenarios: %w", err)
	}

	result := &ValidationResult{
		Scenarios: make([]ScenarioOutcome, 0, len(files)),
		Total:     len(files),
	}
	covered := make(map[string]bool)

	for _, path := range files {
		outcome := h.runFile(path)
		if outcome.Demo != "" {
			covered[outcome.Demo] = true
		}
		if outcome.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
		result.Scenarios = append(result.Scenarios, outcome)
	}

	if filter == "" {
		for _, name := range catalog.Names() {
			if !covered[name] {
				result.Uncovered = append(result.Uncovered, name)
			}
		}
	}

	return result, nil
}

func (h *Harness) runFile(path string) ScenarioOutcome {
	scenario, err := LoadScenario(path)
	if err != nil {
		h.logger.Warn("scenario load failed", "path", path, "error", err)
		return ScenarioOutcome{
			Name:   filepath.Base(path),
			Path:   path,
			Errors: []string{fmt.Sprintf("failed to load scenario: %v", err)},
		}
	}

	outcome := ScenarioOutcome{Name: scenario.Name, Path: path}
	entry, err := catalog.Lookup(scenario.Demo)
	if err == nil {
		outcome.Demo = entry.Name
	}

	res, err := h.Run(scenario)
	if err != nil {
		outcome.Errors = []string{fmt.Sprintf("scenario execution failed: %v", err)}
		return outcome
	}

	outcome.Pass = res.Pass
	outcome.Errors = res.Errors
	return outcome
}
