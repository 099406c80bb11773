package rule

import (
	"context"

	ndr "github.com/gondr/validator"
	"github.com/gondr/validator/pipeline"
)

// Agreement cross-checks each encounter's ARV code against the same-date
// prescribed regimen of type ART. Only fires when both codes are present and
// differ.
type Agreement struct{}

// Name returns the rule name.
func (Agreement) Name() string {
	return "arv-agreement"
}

// Check implements pipeline.Rule.
func (Agreement) Check(_ context.Context, rctx *pipeline.Context) []ndr.Issue {
	var issues []ndr.Issue
	rec := rctx.Record

	for _, date := range rec.Encounters.Keys() {
		enc, _ := rec.Encounters.Get(date)
		reg, ok := rec.Regimens.Get(date)
		if !ok || text(reg.TypeCode) != "ART" {
			continue
		}
		if present(enc.ARVCode) && reg.Code != "" && *enc.ARVCode != reg.Code {
			issues = append(issues, blocking("%s: ARV code mismatch (Encounter=%s, Regimen=%s).",
				date, *enc.ARVCode, reg.Code))
		}
	}

	return issues
}
