package harness

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schema.cue
var schemaSource string

// validateSchema unifies a decoded scenario document with #Scenario.
func validateSchema(raw map[string]any) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile scenario schema: %w", err)
	}

	doc := ctx.Encode(raw)
	if err := doc.Err(); err != nil {
		return &ScenarioError{Err: fmt.Errorf("encode document: %w", err)}
	}

	unified := schema.LookupPath(cue.ParsePath("#Scenario")).Unify(doc)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		details := strings.TrimSpace(cueerrors.Details(err, nil))
		return &ScenarioError{Err: errors.New("schema: " + details)}
	}
	return nil
}
