// Package ocp demonstrates the open-closed principle.
//
// ToyPlayer is closed for modification: it only knows the Toy contract.
// The set of toys is open for extension: CuddlyBear was added without
// touching ToyPlayer or any existing toy.
package ocp

import (
	"fmt"
	"io"
)

// Toy is something a ToyPlayer can play with.
type Toy interface {
	Play()
}

// DancingRobot slam-dances, then tends to its hydraulics.
type DancingRobot struct {
	w io.Writer
}

// NewDancingRobot creates a robot that narrates to w.
func NewDancingRobot(w io.Writer) *DancingRobot {
	return &DancingRobot{w: w}
}

// Play implements Toy.
func (r *DancingRobot) Play() {
	fmt.Fprintln(r.w, "Robot: The clanking robot slam-dances wildly!")
	r.adjustHydraulics()
}

func (r *DancingRobot) adjustHydraulics() {
	fmt.Fprintln(r.w, "Robot: Adjusting hydraulics...")
}

// SingingDinosaur snacks before it sings.
type SingingDinosaur struct {
	w io.Writer
}

// NewSingingDinosaur creates a dinosaur that narrates to w.
func NewSingingDinosaur(w io.Writer) *SingingDinosaur {
	return &SingingDinosaur{w: w}
}

// Play implements Toy.
func (d *SingingDinosaur) Play() {
	d.snack()
	fmt.Fprintln(d.w, "Dinosaur: The giant dinosaur roars into a song!")
}

func (d *SingingDinosaur) snack() {
	fmt.Fprintln(d.w, "Dinosaur: Eating some lesser creatures as a pre-performance snack...")
}

// CuddlyBear extends the toy box without any change to ToyPlayer.
type CuddlyBear struct {
	w io.Writer
}

// NewCuddlyBear creates a bear that narrates to w.
func NewCuddlyBear(w io.Writer) *CuddlyBear {
	return &CuddlyBear{w: w}
}

// Play implements Toy.
func (b *CuddlyBear) Play() {
	fmt.Fprintln(b.w, "Bear: The cuddly bear gives everyone a warm hug!")
}

// ToyPlayer plays with whatever toys it is handed.
type ToyPlayer struct{}

// PlayWithToys calls Play on each toy once, in order.
func (ToyPlayer) PlayWithToys(toys []Toy) {
	for _, toy := range toys {
		toy.Play()
	}
}

// Demo plays with a robot and a dinosaur.
func Demo(w io.Writer) {
	ToyPlayer{}.PlayWithToys([]Toy{
		NewDancingRobot(w),
		NewSingingDinosaur(w),
	})
}
