package harness

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/solid/internal/catalog"
	"github.com/roach88/solid/internal/transcript"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string   // Assertion type for categorization
	Expected string   // Human-readable expected outcome
	Actual   string   // Human-readable actual outcome
	Lines    []string // Full output for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nFull output:\n")
	for i, line := range e.Lines {
		fmt.Fprintf(&buf, "  [%d] %s\n", i+1, line)
	}

	return buf.String()
}

// AssertionContext provides what assertions need beyond the transcript.
type AssertionContext struct {
	// Entry is the vignette under test; output_repeatable runs it again.
	Entry catalog.Entry
}

// assertExpect checks that the output is exactly the expected lines.
func assertExpect(lines []string, expect []string) error {
	if slices.Equal(lines, expect) {
		return nil
	}

	actual := fmt.Sprintf("%d lines", len(lines))
	for i := 0; i < max(len(lines), len(expect)); i++ {
		var got, want string
		if i < len(lines) {
			got = lines[i]
		}
		if i < len(expect) {
			want = expect[i]
		}
		if got != want {
			actual = fmt.Sprintf("line %d is %q, want %q", i+1, got, want)
			break
		}
	}

	return &AssertionError{
		Type:     "expect",
		Expected: fmt.Sprintf("%d lines exactly as listed", len(expect)),
		Actual:   actual,
		Lines:    lines,
	}
}

// assertOutputContains checks that some line contains the text.
func assertOutputContains(lines []string, assertion Assertion) error {
	for _, line := range lines {
		if strings.Contains(line, assertion.Text) {
			return nil
		}
	}

	return &AssertionError{
		Type:     AssertOutputContains,
		Expected: fmt.Sprintf("a line containing %q", assertion.Text),
		Actual:   "not found in output",
		Lines:    lines,
	}
}

// assertOutputOrder checks that each text is found on a line after the line
// that matched the previous text.
func assertOutputOrder(lines []string, assertion Assertion) error {
	pos := 0
	prevLine := 0
	for i, text := range assertion.Texts {
		found := -1
		for j := pos; j < len(lines); j++ {
			if strings.Contains(lines[j], text) {
				found = j
				break
			}
		}
		if found >= 0 {
			pos = found + 1
			prevLine = found + 1
			continue
		}

		if slices.IndexFunc(lines, func(l string) bool { return strings.Contains(l, text) }) < 0 {
			return &AssertionError{
				Type:     AssertOutputOrder,
				Expected: fmt.Sprintf("all texts present: %q", assertion.Texts),
				Actual:   fmt.Sprintf("missing text: %q", text),
				Lines:    lines,
			}
		}
		return &AssertionError{
			Type:     AssertOutputOrder,
			Expected: fmt.Sprintf("texts in order: %q", assertion.Texts),
			Actual: fmt.Sprintf("%q not found after %q (line %d)",
				text, assertion.Texts[i-1], prevLine),
			Lines: lines,
		}
	}

	return nil
}

// assertOutputCount checks that exactly Count lines contain the text.
func assertOutputCount(lines []string, assertion Assertion) error {
	count := 0
	for _, line := range lines {
		if strings.Contains(line, assertion.Text) {
			count++
		}
	}

	if count != assertion.Count {
		return &AssertionError{
			Type:     AssertOutputCount,
			Expected: fmt.Sprintf("%d lines containing %q", assertion.Count, assertion.Text),
			Actual:   fmt.Sprintf("%d lines", count),
			Lines:    lines,
		}
	}

	return nil
}

// assertOutputRepeatable runs the demo again and compares the output.
func assertOutputRepeatable(lines []string, entry catalog.Entry) error {
	again := transcript.Record(entry.Name, "", entry.Demo).Texts()
	if slices.Equal(lines, again) {
		return nil
	}

	return &AssertionError{
		Type:     AssertOutputRepeatable,
		Expected: "identical output on a second run",
		Actual:   fmt.Sprintf("second run wrote %q", again),
		Lines:    lines,
	}
}

// EvaluateAssertions evaluates all assertions against the result.
// Returns a slice of error messages for failed assertions.
// The actx parameter provides the vignette for output_repeatable.
func EvaluateAssertions(result *Result, assertions []Assertion, actx *AssertionContext) []string {
	var errors []string
	lines := result.Transcript.Texts()

	for i, assertion := range assertions {
		var err error

		switch assertion.Type {
		case AssertOutputContains:
			err = assertOutputContains(lines, assertion)
		case AssertOutputOrder:
			err = assertOutputOrder(lines, assertion)
		case AssertOutputCount:
			err = assertOutputCount(lines, assertion)
		case AssertOutputRepeatable:
			if actx == nil || actx.Entry.Demo == nil {
				err = fmt.Errorf("assertion[%d]: output_repeatable requires a demo", i)
			} else {
				err = assertOutputRepeatable(lines, actx.Entry)
			}
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}

	return errors
}
