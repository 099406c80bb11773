package rule

import (
	"context"
	"strconv"
	"strings"

	ndr "github.com/gondr/validator"
	"github.com/gondr/validator/pipeline"
	"github.com/gondr/validator/pkg/strictdate"
)

// ageToleranceYears is the allowed difference between the reported age and
// the age computed from date of birth and report date.
const ageToleranceYears = 1

// Age validates the reported age against the age computed from the date of
// birth and the report date. Any parse failure, missing value included,
// degrades to a single generic warning.
type Age struct{}

// Name returns the rule name.
func (Age) Name() string {
	return "age"
}

// Check implements pipeline.Rule.
func (Age) Check(_ context.Context, rctx *pipeline.Context) []ndr.Issue {
	p := rctx.Record.Patient
	unable := []ndr.Issue{ndr.Warning("Unable to validate age (date format issue).")}

	if p.DateOfBirth == nil || p.ReportDate == nil || p.ReportedAge == nil {
		return unable
	}

	dob, err := strictdate.Parse(*p.DateOfBirth)
	if err != nil {
		return unable
	}
	report, err := strictdate.Parse(*p.ReportDate)
	if err != nil {
		return unable
	}
	reported, err := strconv.Atoi(strings.TrimSpace(*p.ReportedAge))
	if err != nil {
		return unable
	}

	computed := strictdate.Age(dob, report)
	diff := reported - computed
	if diff < 0 {
		diff = -diff
	}
	if diff > ageToleranceYears {
		return []ndr.Issue{blocking("Reported age (%s) vs calculated (%d) differs by >1 year.",
			*p.ReportedAge, computed)}
	}

	return nil
}
