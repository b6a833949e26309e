package puzzle

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// validateSchema unifies the raw YAML document with the embedded CUE
// definition schema and reports every violation at once.
func validateSchema(data []byte) error {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode definition: %w", err)
	}
	if doc == nil {
		return fmt.Errorf("definition is empty")
	}

	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE).LookupPath(cue.ParsePath("#Definition"))
	if err := schema.Err(); err != nil {
		// The schema is embedded; failing to compile it is a build
		// defect, not an input error.
		panic(fmt.Sprintf("puzzle: embedded schema invalid: %v", err))
	}

	unified := schema.Unify(ctx.Encode(doc))
	if err := unified.Validate(cue.Concrete(true), cue.Final()); err != nil {
		return &SchemaError{Details: cueerrors.Details(err, nil)}
	}
	return nil
}

// SchemaError reports a definition that failed CUE schema validation.
// Details contains CUE's multi-line diagnostic output, one line per
// violation with its path.
type SchemaError struct {
	Details string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("definition schema violation:\n%s", e.Details)
}
