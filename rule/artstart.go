package rule

import (
	"context"

	ndr "github.com/gondr/validator"
	"github.com/gondr/validator/pipeline"
)

// ARTStart reports a missing ART start date. Emitted at most once per run
// regardless of how many encounters reference the date; the per-encounter
// repetition lives in the encounter rule.
type ARTStart struct{}

// Name returns the rule name.
func (ARTStart) Name() string {
	return "art-start"
}

// Check implements pipeline.Rule.
func (ARTStart) Check(_ context.Context, rctx *pipeline.Context) []ndr.Issue {
	art := rctx.Record.Art
	if art.HasFlag(ndr.FlagMissingARTStartDate) || art.StartDate == nil {
		return []ndr.Issue{ndr.Blocking("ARTStartDate is missing in HIVQuestions section.")}
	}
	return nil
}
