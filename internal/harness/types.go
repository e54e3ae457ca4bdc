package harness

import "github.com/roach88/solid/internal/transcript"

// Result is the outcome of a scenario run.
type Result struct {
	// Pass is true when the expected output and every assertion matched.
	Pass bool `json:"pass"`

	// Transcript is the recorded demo output.
	Transcript *transcript.Transcript `json:"transcript"`

	// Errors holds one message per failed check. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a passing result for the given transcript.
func NewResult(tr *transcript.Transcript) *Result {
	return &Result{
		Pass:       true,
		Transcript: tr,
		Errors:     []string{},
	}
}

// AddError records a failed check and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
