// Package lsp demonstrates the Liskov substitution principle: a Cat can
// stand in anywhere an Animal is expected.
package lsp

import (
	"fmt"
	"io"
)

// Creature is the behavior GreetAnimal relies on.
type Creature interface {
	Name() string
	MakeSound() string
}

// Animal is the base creature with a generic sound.
type Animal struct {
	name string
}

// NewAnimal creates an animal with the given name.
func NewAnimal(name string) *Animal {
	return &Animal{name: name}
}

// Name returns the animal's name.
func (a *Animal) Name() string {
	return a.name
}

// MakeSound returns the generic animal sound.
func (a *Animal) MakeSound() string {
	return "Animal sound!"
}

// Cat is an Animal that meows.
type Cat struct {
	Animal
}

// NewCat creates a cat with the given name.
func NewCat(name string) *Cat {
	return &Cat{Animal: Animal{name: name}}
}

// MakeSound overrides the generic sound.
func (c *Cat) MakeSound() string {
	return "Meow!"
}

// GreetAnimal says hello to c by name and writes the sound it makes.
func GreetAnimal(w io.Writer, c Creature) {
	fmt.Fprintf(w, "Hello, %s!\n", c.Name())
	fmt.Fprintln(w, c.MakeSound())
}

// Demo greets a generic animal and then a cat.
func Demo(w io.Writer) {
	GreetAnimal(w, NewAnimal("Any Animal"))
	GreetAnimal(w, NewCat("Whiskers"))
}
