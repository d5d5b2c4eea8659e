// Package schema validates persisted survey records against an
// embedded CUE schema before they are trusted by the rest of the
// program.
package schema

import (
	"embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cuejson "cuelang.org/go/encoding/json"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// Validator holds the compiled result schema.
type Validator struct {
	def cue.Value
}

// NewValidator compiles the embedded schema. A compile failure is a
// build defect, not a runtime condition, so it is returned as an error
// for the caller to surface.
func NewValidator() (*Validator, error) {
	content, err := schemaFS.ReadFile("schemas/result.cue")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded schema: %w", err)
	}

	ctx := cuecontext.New()
	inst := ctx.CompileBytes(content, cue.Filename("result.cue"))
	if instErr := inst.Err(); instErr != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", instErr)
	}

	def := inst.Value().LookupPath(cue.ParsePath("#SurveyResult"))
	if !def.Exists() {
		return nil, fmt.Errorf("schema definition #SurveyResult not found")
	}

	return &Validator{def: def}, nil
}

// ValidateResult checks one raw JSON survey record against
// #SurveyResult. Going through CUE's JSON decoder keeps integer
// fields integers; a detour through map[string]any would degrade them
// to floats and fail the int constraints.
func (v *Validator) ValidateResult(raw []byte) error {
	if err := cuejson.Validate(raw, v.def); err != nil {
		return fmt.Errorf("record does not match schema: %w", err)
	}
	return nil
}
