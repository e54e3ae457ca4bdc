package harness

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/solid/internal/catalog"
	"github.com/roach88/solid/internal/runid"
	"github.com/roach88/solid/internal/transcript"
)

// Harness runs scenarios and logs each run.
type Harness struct {
	logger *slog.Logger
}

// New creates a harness that logs to logger. A nil logger discards logs.
func New(logger *slog.Logger) *Harness {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Harness{logger: logger}
}

// Run executes a scenario with a harness that discards logs.
func Run(scenario *Scenario) (*Result, error) {
	return New(nil).Run(scenario)
}

// Run executes a scenario and returns the result.
//
// Execution flow:
//  1. Resolve the demo in the catalog
//  2. Record its output with a fixed run ID
//  3. Compare against expect, if given
//  4. Evaluate assertions
//
// An error is returned only when the scenario cannot be run at all; failed
// checks are reported in Result.Errors.
func (h *Harness) Run(scenario *Scenario) (*Result, error) {
	entry, err := catalog.Lookup(scenario.Demo)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve demo: %w", err)
	}

	gen := runid.NewFixed(scenario.RunID)
	tr := transcript.Record(entry.Name, gen.Generate(), entry.Demo)

	h.logger.Debug("demo recorded",
		"scenario", scenario.Name,
		"demo", entry.Name,
		"run_id", tr.RunID,
		"lines", len(tr.Lines),
	)

	result := NewResult(tr)
	lines := tr.Texts()

	if len(scenario.Expect) > 0 {
		if err := assertExpect(lines, scenario.Expect); err != nil {
			result.AddError(err.Error())
		}
	}

	for _, msg := range EvaluateAssertions(result, scenario.Assertions, &AssertionContext{Entry: entry}) {
		result.AddError(msg)
	}

	h.logger.Info("scenario finished",
		"scenario", scenario.Name,
		"run_id", tr.RunID,
		"pass", result.Pass,
		"errors", len(result.Errors),
	)

	return result, nil
}
