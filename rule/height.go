package rule

import (
	"context"
	"strconv"
	"strings"

	ndr "github.com/gondr/validator"
	"github.com/gondr/validator/pipeline"
	"github.com/gondr/validator/pkg/strictdate"
)

// heightMaxCm is the upper plausibility bound for recorded heights.
const heightMaxCm = 200

// Height applies the anthropometric bound: first the height recorded at ART
// start, then each encounter's child height. Non-numeric or absent height
// values are skipped silently; there is no warning for them.
type Height struct{}

// Name returns the rule name.
func (Height) Name() string {
	return "height"
}

// Check implements pipeline.Rule.
func (Height) Check(_ context.Context, rctx *pipeline.Context) []ndr.Issue {
	var issues []ndr.Issue
	rec := rctx.Record

	if present(rec.Patient.HeightAtARTStart) {
		if v, ok := parseHeight(*rec.Patient.HeightAtARTStart); ok && v > heightMaxCm {
			started := "Unknown date"
			if rec.Art.StartDate != nil {
				started = strictdate.Format(*rec.Art.StartDate)
			}
			issues = append(issues, blocking("ART Start (%s): Child Height at ART start > 200 (%s).",
				started, formatHeight(v)))
		}
	}

	for _, date := range rec.Encounters.Keys() {
		enc, _ := rec.Encounters.Get(date)
		if enc.ChildHeight == nil {
			continue
		}
		if v, ok := parseHeight(*enc.ChildHeight); ok && v > heightMaxCm {
			issues = append(issues, blocking("%s: Child Height > 200 (%s).", date, formatHeight(v)))
		}
	}

	return issues
}

func parseHeight(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v, err == nil
}

func formatHeight(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
