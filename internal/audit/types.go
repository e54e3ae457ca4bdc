package audit

// Contract is an interface type declared in an audited package.
type Contract struct {
	Name    string   `json:"name"`
	Package string   `json:"package"`
	Methods []string `json:"methods"`
}

// Variant is a concrete named type declared in an audited package.
type Variant struct {
	Name    string `json:"name"`
	Package string `json:"package"`
}

// Implementation records that a variant satisfies a contract.
type Implementation struct {
	Variant    string `json:"variant"`
	Contract   string `json:"contract"`
	Package    string `json:"package"`
	ViaPointer bool   `json:"via_pointer"` // only *T satisfies the contract
}

// Violation is a consumer-side reference to a concrete variant.
type Violation struct {
	Package  string `json:"package"`
	Position string `json:"position"`
	Where    string `json:"where"`    // e.g. "param c of (*MilkDipper).DipCookie"
	Concrete string `json:"concrete"` // the referenced concrete type
}

// Report is the outcome of auditing a set of packages.
type Report struct {
	Packages        []string         `json:"packages"`
	Contracts       []Contract       `json:"contracts"`
	Variants        []Variant        `json:"variants"`
	Implementations []Implementation `json:"implementations"`
	Violations      []Violation      `json:"violations"`
}

// Clean reports whether no violations were found.
func (r *Report) Clean() bool {
	return len(r.Violations) == 0
}

// Options controls what is loaded.
type Options struct {
	// Dir is the directory packages are resolved from. Defaults to ".".
	Dir string

	// Patterns are go/packages patterns. Defaults to DefaultPattern.
	Patterns []string
}

// DefaultPattern selects the principle vignettes relative to the module root.
const DefaultPattern = "./internal/principles/..."
