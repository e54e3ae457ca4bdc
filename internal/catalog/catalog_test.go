package catalog

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_Order(t *testing.T) {
	assert.Equal(t, []string{"srp", "ocp", "lsp", "isp", "dip"}, Names())

	all := All()
	require.Len(t, all, 5)
	for _, e := range all {
		assert.NotEmpty(t, e.Principle, e.Name)
		assert.NotEmpty(t, e.Summary, e.Name)
		assert.NotNil(t, e.Demo, e.Name)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	all[0].Name = "mutated"

	assert.Equal(t, "srp", All()[0].Name)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "exact", input: "dip", want: "dip"},
		{name: "upper case", input: "OCP", want: "ocp"},
		{name: "padded", input: "  lsp ", want: "lsp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Lookup(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.Name)
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("yagni")
	require.Error(t, err)

	var unknown *UnknownDemoError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "yagni", unknown.Name)
	assert.Equal(t, Names(), unknown.Known)
	assert.Contains(t, err.Error(), `unknown demo "yagni"`)
}

func TestEntries_RunDemo(t *testing.T) {
	for _, e := range All() {
		t.Run(e.Name, func(t *testing.T) {
			var buf bytes.Buffer
			e.Demo(&buf)
			assert.NotEmpty(t, buf.String())
		})
	}
}
