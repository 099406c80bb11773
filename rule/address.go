package rule

import (
	"context"

	ndr "github.com/gondr/validator"
	"github.com/gondr/validator/pipeline"
)

// addressOrder fixes the reporting order: address-type, LGA, state, country,
// then the whole-section-missing flag.
var addressOrder = []ndr.FlagKind{
	ndr.FlagMissingAddressType,
	ndr.FlagMissingLGACode,
	ndr.FlagMissingStateCode,
	ndr.FlagMissingCountryCode,
	ndr.FlagMissingAddress,
}

// Address reports each address-completeness flag raised during extraction,
// one issue per flag kind.
type Address struct{}

// Name returns the rule name.
func (Address) Name() string {
	return "address"
}

// Check implements pipeline.Rule.
func (Address) Check(_ context.Context, rctx *pipeline.Context) []ndr.Issue {
	var issues []ndr.Issue
	for _, kind := range addressOrder {
		if rctx.Record.Art.HasFlag(kind) {
			issues = append(issues, ndr.Blocking(kind.String()))
		}
	}
	return issues
}
