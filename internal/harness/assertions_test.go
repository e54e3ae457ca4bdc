package harness

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/solid/internal/catalog"
	"github.com/roach88/solid/internal/transcript"
)

var toyLines = []string{
	"Robot: The clanking robot slam-dances wildly!",
	"Robot: Adjusting hydraulics...",
	"Dinosaur: Eating some lesser creatures as a pre-performance snack...",
	"Dinosaur: The giant dinosaur roars into a song!",
}

func resultFor(lines ...string) *Result {
	rec := transcript.NewRecorder()
	for _, l := range lines {
		fmt.Fprintln(rec, l)
	}
	return NewResult(&transcript.Transcript{Demo: "test", Lines: rec.Lines()})
}

func TestAssertExpect(t *testing.T) {
	assert.NoError(t, assertExpect(toyLines, toyLines))

	err := assertExpect(toyLines[:2], toyLines)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `line 3 is "", want "Dinosaur: Eating`)

	err = assertExpect([]string{"a", "b"}, []string{"a", "c"})
	require.Error(t, err)

	var aerr *AssertionError
	require.True(t, errors.As(err, &aerr))
	assert.Equal(t, "expect", aerr.Type)
	assert.Equal(t, `line 2 is "b", want "c"`, aerr.Actual)
}

func TestAssertOutputContains(t *testing.T) {
	assert.NoError(t, assertOutputContains(toyLines, Assertion{Text: "hydraulics"}))

	err := assertOutputContains(toyLines, Assertion{Text: "Bear:"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Assertion failed: output_contains")
	assert.Contains(t, err.Error(), "not found in output")
}

func TestAssertOutputOrder(t *testing.T) {
	tests := []struct {
		name    string
		texts   []string
		wantErr string
	}{
		{name: "in order", texts: []string{"Robot:", "Dinosaur:"}},
		{name: "same line prefix repeated", texts: []string{"Robot:", "Robot:", "Dinosaur:", "Dinosaur:"}},
		{name: "single", texts: []string{"roars"}},
		{name: "reversed", texts: []string{"Dinosaur:", "Robot:"}, wantErr: `"Robot:" not found after "Dinosaur:" (line 3)`},
		{name: "missing", texts: []string{"Robot:", "Bear:"}, wantErr: `missing text: "Bear:"`},
		{name: "too many repeats", texts: []string{"Robot:", "Robot:", "Robot:"}, wantErr: "not found after"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := assertOutputOrder(toyLines, Assertion{Texts: tt.texts})
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAssertOutputCount(t *testing.T) {
	assert.NoError(t, assertOutputCount(toyLines, Assertion{Text: "Robot:", Count: 2}))
	assert.NoError(t, assertOutputCount(toyLines, Assertion{Text: "Bear:", Count: 0}))

	err := assertOutputCount(toyLines, Assertion{Text: "Robot:", Count: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Expected: 1 lines containing "Robot:"`)
	assert.Contains(t, err.Error(), "Actual: 2 lines")
}

func TestAssertOutputRepeatable(t *testing.T) {
	entry, err := catalog.Lookup("ocp")
	require.NoError(t, err)
	assert.NoError(t, assertOutputRepeatable(toyLines, entry))

	calls := 0
	flaky := catalog.Entry{
		Name: "flaky",
		Demo: func(w io.Writer) {
			calls++
			fmt.Fprintf(w, "call %d\n", calls)
		},
	}
	first := transcript.Record("flaky", "", flaky.Demo).Texts()

	err = assertOutputRepeatable(first, flaky)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "identical output on a second run")
}

func TestAssertionError_ListsOutput(t *testing.T) {
	err := &AssertionError{
		Type:     "output_contains",
		Expected: "x",
		Actual:   "y",
		Lines:    []string{"first", "second"},
	}

	msg := err.Error()
	assert.Contains(t, msg, "Full output:")
	assert.Contains(t, msg, "[1] first")
	assert.Contains(t, msg, "[2] second")
}

func TestEvaluateAssertions(t *testing.T) {
	entry, err := catalog.Lookup("ocp")
	require.NoError(t, err)
	result := resultFor(toyLines...)

	errs := EvaluateAssertions(result, []Assertion{
		{Type: AssertOutputContains, Text: "Robot:"},
		{Type: AssertOutputOrder, Texts: []string{"Robot:", "Dinosaur:"}},
		{Type: AssertOutputCount, Text: "Dinosaur:", Count: 2},
		{Type: AssertOutputRepeatable},
	}, &AssertionContext{Entry: entry})
	assert.Empty(t, errs)
}

func TestEvaluateAssertions_CollectsFailures(t *testing.T) {
	result := resultFor(toyLines...)

	errs := EvaluateAssertions(result, []Assertion{
		{Type: AssertOutputContains, Text: "Bear:"},
		{Type: AssertOutputCount, Text: "Robot:", Count: 5},
		{Type: AssertOutputRepeatable},
		{Type: "bogus"},
	}, nil)

	require.Len(t, errs, 4)
	assert.Contains(t, errs[0], "output_contains")
	assert.Contains(t, errs[1], "output_count")
	assert.Contains(t, errs[2], "output_repeatable requires a demo")
	assert.Contains(t, errs[3], `unknown assertion type "bogus"`)
}
