package violations

type Greeter interface {
	Greet() string
}

type English struct{}

func (English) Greet() string { return "hello" }

type Host struct {
	guest *English
}

func NewHost(e *English) *Host { return &Host{guest: e} }

func Welcome(e English) string { return e.Greet() }

func WelcomeAll(gs []*English) int { return len(gs) }

func Polite(g Greeter) string { return g.Greet() }

func WelcomeMany(es ...*English) int { return len(es) }

func ByKey(seen map[*English]bool) int { return len(seen) }

func Each(visit func(*English)) { visit(&English{}) }

func Queue(in chan *English) { close(in) }

// Newsletter only looks like a constructor.
func Newsletter(e *English) string { return e.Greet() }

func New(e *English) *Host { return &Host{guest: e} }
