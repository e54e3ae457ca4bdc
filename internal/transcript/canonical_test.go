package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscript_MarshalCanonical(t *testing.T) {
	tr := &Transcript{
		Demo:  "dip",
		RunID: "test-run-dip",
		Lines: []Line{
			{Seq: 1, Text: "Man, that's some tasty pizza!"},
			{Seq: 2, Text: "Some sick ice cream!"},
		},
	}

	data, err := tr.MarshalCanonical()
	require.NoError(t, err)
	assert.Equal(t,
		`{"demo":"dip","lines":[{"seq":1,"text":"Man, that's some tasty pizza!"},{"seq":2,"text":"Some sick ice cream!"}],"run_id":"test-run-dip"}`,
		string(data))
}

func TestTranscript_MarshalCanonical_OmitsEmptyRunID(t *testing.T) {
	tr := &Transcript{Demo: "srp"}

	data, err := tr.MarshalCanonical()
	require.NoError(t, err)
	assert.Equal(t, `{"demo":"srp","lines":[]}`, string(data))
}

func TestMarshalCanonical_SortedKeys(t *testing.T) {
	data, err := MarshalCanonical(map[string]any{"b": 1, "a": 2, "c": map[string]any{"z": true, "y": false}})
	require.NoError(t, err)
	assert.Equal(t, `{"a":2,"b":1,"c":{"y":false,"z":true}}`, string(data))
}

func TestMarshalCanonical_NoHTMLEscape(t *testing.T) {
	data, err := MarshalCanonical("<cookies & milk>")
	require.NoError(t, err)
	assert.Equal(t, `"<cookies & milk>"`, string(data))
}

func TestMarshalCanonical_NFC(t *testing.T) {
	// "e" followed by a combining acute accent normalizes to a single "é".
	decomposed := "cafe\u0301"
	data, err := MarshalCanonical(decomposed)
	require.NoError(t, err)
	assert.Equal(t, "\"caf\u00e9\"", string(data))
}

func TestMarshalCanonical_StringSlice(t *testing.T) {
	data, err := MarshalCanonical([]string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, `["x","y"]`, string(data))
}

func TestMarshalCanonical_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		value any
		msg   string
	}{
		{name: "null", value: nil, msg: "null is forbidden"},
		{name: "float", value: 1.5, msg: "floats are forbidden"},
		{name: "nested float", value: []any{"ok", 2.5}, msg: "array[1]"},
		{name: "unsupported", value: struct{}{}, msg: "unsupported type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MarshalCanonical(tt.value)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestCompareUTF16(t *testing.T) {
	assert.Equal(t, -1, compareUTF16("a", "b"))
	assert.Equal(t, 1, compareUTF16("b", "a"))
	assert.Equal(t, 0, compareUTF16("same", "same"))
	assert.Equal(t, -1, compareUTF16("run", "run_id"))
	// U+FF61 sorts before U+1F600 in UTF-8 but after its surrogate pair in UTF-16.
	assert.Equal(t, 1, compareUTF16("\uFF61", "\U0001F600"))
}
