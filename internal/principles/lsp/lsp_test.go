package lsp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	_ Creature = (*Animal)(nil)
	_ Creature = (*Cat)(nil)
)

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	Demo(&buf)

	want := "Hello, Any Animal!\n" +
		"Animal sound!\n" +
		"Hello, Whiskers!\n" +
		"Meow!\n"
	assert.Equal(t, want, buf.String())
}

func TestGreetAnimal_Substitutable(t *testing.T) {
	tests := []struct {
		name     string
		creature Creature
		want     string
	}{
		{name: "animal", creature: NewAnimal("Rex"), want: "Hello, Rex!\nAnimal sound!\n"},
		{name: "cat", creature: NewCat("Rex"), want: "Hello, Rex!\nMeow!\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			GreetAnimal(&buf, tt.creature)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestCat_InheritsName(t *testing.T) {
	cat := NewCat("Whiskers")
	assert.Equal(t, "Whiskers", cat.Name())
	assert.Equal(t, "Animal sound!", cat.Animal.MakeSound())
	assert.Equal(t, "Meow!", cat.MakeSound())
}

func TestMakeSound_Idempotent(t *testing.T) {
	cat := NewCat("Whiskers")
	assert.Equal(t, cat.MakeSound(), cat.MakeSound())
}
