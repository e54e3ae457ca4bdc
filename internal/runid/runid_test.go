package runid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Generator = UUIDv7{}
	_ Generator = Fixed{}
)

func TestUUIDv7_Format(t *testing.T) {
	id := UUIDv7{}.Generate()
	assert.Len(t, id, 36)

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestUUIDv7_Unique(t *testing.T) {
	gen := UUIDv7{}
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := gen.Generate()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestUUIDv7_Sortable(t *testing.T) {
	gen := UUIDv7{}
	first := gen.Generate()
	second := gen.Generate()
	assert.LessOrEqual(t, first, second)
}

func TestFixed(t *testing.T) {
	gen := NewFixed("test-run-dip")
	assert.Equal(t, "test-run-dip", gen.Generate())
	assert.Equal(t, "test-run-dip", gen.Generate())
}

func TestFixed_Default(t *testing.T) {
	assert.Equal(t, DefaultFixedToken, NewFixed("").Generate())
	assert.Equal(t, "test-run-default", DefaultFixedToken)
}
