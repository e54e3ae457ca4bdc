// Package isp demonstrates the interface segregation principle.
//
// Talents are split into single-method contracts so a performer only
// implements what it can actually do, and a caller only asks for the one
// talent it needs.
package isp

import (
	"fmt"
	"io"
)

type Dancer interface {
	Dance()
}

type Juggler interface {
	Juggle()
}

type Singer interface {
	Sing()
}

// SimpleDancer can only dance.
type SimpleDancer struct {
	w io.Writer
}

func NewSimpleDancer(w io.Writer) *SimpleDancer {
	return &SimpleDancer{w: w}
}

func (d *SimpleDancer) Dance() {
	fmt.Fprintln(d.w, "Just a plain simple dancer dancing...")
}

// MultitalentedPerformer dances, juggles and sings.
type MultitalentedPerformer struct {
	w io.Writer
}

func NewMultitalentedPerformer(w io.Writer) *MultitalentedPerformer {
	return &MultitalentedPerformer{w: w}
}

func (p *MultitalentedPerformer) Dance() {
	fmt.Fprintln(p.w, "Can't compete with my dancing skillz!")
}

func (p *MultitalentedPerformer) Juggle() {
	fmt.Fprintln(p.w, "Can't compete with my juggling skillz!")
}

func (p *MultitalentedPerformer) Sing() {
	fmt.Fprintln(p.w, "Can't compete with my singing skillz!")
}

// LeadDance asks d to dance.
func LeadDance(d Dancer) { d.Dance() }

// OpenAct asks j to juggle.
func OpenAct(j Juggler) { j.Juggle() }

// Serenade asks s to sing.
func Serenade(s Singer) { s.Sing() }

// Demo has the simple dancer dance and the performer juggle.
func Demo(w io.Writer) {
	LeadDance(NewSimpleDancer(w))
	OpenAct(NewMultitalentedPerformer(w))
}
