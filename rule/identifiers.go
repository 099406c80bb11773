package rule

import (
	"context"

	ndr "github.com/gondr/validator"
	"github.com/gondr/validator/pipeline"
)

// Identifiers reports every invalid-identifier flag raised during
// extraction, then the absence of the treatment (HN) identifier. Invalid
// identifier flags are not deduplicated here: duplicates in the source
// surface as duplicate issues, which is the contract of this layer.
type Identifiers struct{}

// Name returns the rule name.
func (Identifiers) Name() string {
	return "identifiers"
}

// Check implements pipeline.Rule.
func (Identifiers) Check(_ context.Context, rctx *pipeline.Context) []ndr.Issue {
	var issues []ndr.Issue

	for _, f := range rctx.Record.Art.Flags {
		if f.Kind == ndr.FlagInvalidIdentifier {
			issues = append(issues, ndr.Blocking(f.String()))
		}
	}

	p := rctx.Record.Patient
	if p.HospitalNumber == nil {
		tb := "none"
		if p.TBIdentifier != nil {
			tb = *p.TBIdentifier
		}
		issues = append(issues, blocking(
			"Missing valid Treatment Patient identifier (HN). Supplied TB ID: %s", tb))
	}

	return issues
}
