package rule

import (
	"context"

	ndr "github.com/gondr/validator"
	"github.com/gondr/validator/pipeline"
)

// Labs checks every laboratory report for a test identifier and a
// collection date.
type Labs struct{}

// Name returns the rule name.
func (Labs) Name() string {
	return "labs"
}

// Check implements pipeline.Rule.
func (Labs) Check(_ context.Context, rctx *pipeline.Context) []ndr.Issue {
	var issues []ndr.Issue

	for _, date := range rctx.Record.Labs.Keys() {
		lab, _ := rctx.Record.Labs.Get(date)
		if !present(lab.TestIdentifier) || !present(lab.CollectionDate) {
			issues = append(issues, blocking("%s: Lab report missing test ID or collection date.", date))
		}
	}

	return issues
}
