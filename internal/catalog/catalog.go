// Package catalog lists the principle vignettes in a fixed order.
package catalog

import (
	"fmt"
	"io"
	"strings"

	"github.com/roach88/solid/internal/principles/dip"
	"github.com/roach88/solid/internal/principles/isp"
	"github.com/roach88/solid/internal/principles/lsp"
	"github.com/roach88/solid/internal/principles/ocp"
	"github.com/roach88/solid/internal/principles/srp"
)

// Entry describes one runnable vignette.
type Entry struct {
	Name      string            `json:"name"`
	Principle string            `json:"principle"`
	Summary   string            `json:"summary"`
	Demo      func(w io.Writer) `json:"-"`
}

// UnknownDemoError is returned by Lookup when no vignette has the given name.
type UnknownDemoError struct {
	Name  string
	Known []string
}

// Error implements the error interface.
func (e *UnknownDemoError) Error() string {
	return fmt.Sprintf("unknown demo %q (known: %s)", e.Name, strings.Join(e.Known, ", "))
}

var entries = []Entry{
	{
		Name:      "srp",
		Principle: "Single Responsibility Principle",
		Summary:   "A cookie knows its flavor; a dipper does the dipping.",
		Demo:      srp.Demo,
	},
	{
		Name:      "ocp",
		Principle: "Open-Closed Principle",
		Summary:   "A toy player works with any toy, new toys need no player changes.",
		Demo:      ocp.Demo,
	},
	{
		Name:      "lsp",
		Principle: "Liskov Substitution Principle",
		Summary:   "A cat can be greeted anywhere an animal can.",
		Demo:      lsp.Demo,
	},
	{
		Name:      "isp",
		Principle: "Interface Segregation Principle",
		Summary:   "Talents are separate contracts; performers implement only what they do.",
		Demo:      isp.Demo,
	},
	{
		Name:      "dip",
		Principle: "Dependency Inversion Principle",
		Summary:   "A foodie depends on a food provider abstraction injected at construction.",
		Demo:      dip.Demo,
	},
}

// All returns every vignette in catalog order.
// The returned slice is a copy and may be modified by the caller.
func All() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Names returns the short names of all vignettes in catalog order.
func Names() []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// Lookup finds a vignette by short name, ignoring case and surrounding space.
func Lookup(name string) (Entry, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, e := range entries {
		if e.Name == key {
			return e, nil
		}
	}
	return Entry{}, &UnknownDemoError{Name: name, Known: Names()}
}
