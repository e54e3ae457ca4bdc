// Package srp demonstrates the single responsibility principle.
//
// A cookie only knows its flavor. Dipping it is the dipper's job. Keeping
// the two apart means a change to how cookies are dipped never touches the
// cookie, and a new flavor never touches the dipper.
package srp

import (
	"fmt"
	"io"
)

// Flavored is anything that can report its flavor.
type Flavored interface {
	Flavor() string
}

// Cookie holds a flavor and nothing else.
type Cookie struct {
	flavor string
}

// NewCookie creates a cookie with the given flavor.
func NewCookie(flavor string) *Cookie {
	return &Cookie{flavor: flavor}
}

// Flavor returns the flavor set at construction.
func (c *Cookie) Flavor() string {
	return c.flavor
}

// MilkDipper dips flavored things into milk.
type MilkDipper struct {
	w io.Writer
}

// NewMilkDipper creates a dipper that narrates to w.
func NewMilkDipper(w io.Writer) *MilkDipper {
	return &MilkDipper{w: w}
}

// DipCookie dips c and writes one line describing it.
func (d *MilkDipper) DipCookie(c Flavored) {
	fmt.Fprintf(d.w, "Dipping the %s cookie into the milk and savoring that sweet taste!\n", c.Flavor())
}

// Demo dips a chocolate chip cookie.
func Demo(w io.Writer) {
	cookie := NewCookie("Chocolate Chip")
	NewMilkDipper(w).DipCookie(cookie)
}
