package clean

type Speaker interface {
	Speak() string
}

type Base struct{ sound string }

func (b *Base) Speak() string { return b.sound }

type Loud struct {
	Base
}

func NewLoud() *Loud { return &Loud{Base: Base{sound: "HEY"}} }

type Stage struct {
	act Speaker
}

func (s Stage) Perform(extra Speaker) string { return s.act.Speak() + extra.Speak() }
