package rule

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	ndr "github.com/gondr/validator"
	"github.com/gondr/validator/pipeline"
)

// Prescribed regimen duration policy, in days.
const (
	durationMin = 1
	durationMax = 180
	mmdCutoff   = 30
)

// Regimens validates the duration policy across the whole regimen
// collection: duration inside [1,180] (deduplicated by exact message text),
// multi-month dispensing required above 30 days, and non-numeric durations
// downgraded to warnings.
//
// Historically this scan ran nested inside the encounter loop, duplicating
// the >30/MMD and non-numeric issues once per encounter. The default is a
// single pass per run; the nested behavior is kept behind
// ndrvalidator.WithLegacyRegimenScan and executed by the encounter rule
// instead of this one.
type Regimens struct{}

// Name returns the rule name.
func (Regimens) Name() string {
	return "regimens"
}

// Check implements pipeline.Rule.
func (Regimens) Check(_ context.Context, rctx *pipeline.Context) []ndr.Issue {
	if rctx.Options.LegacyRegimenScan {
		return nil
	}
	return scanRegimens(rctx)
}

// scanRegimens runs one pass over the regimen collection. The bounds issue
// deduplicates across the whole run through the shared context, so legacy
// repeated invocations still emit it once.
func scanRegimens(rctx *pipeline.Context) []ndr.Issue {
	var issues []ndr.Issue

	for _, date := range rctx.Record.Regimens.Keys() {
		reg, _ := rctx.Record.Regimens.Get(date)

		duration := 0
		if present(reg.DurationDays) {
			v, err := strconv.Atoi(strings.TrimSpace(*reg.DurationDays))
			if err != nil {
				issues = append(issues, warning("%s: Regimen duration not numeric.", date))
				continue
			}
			duration = v
		}

		if duration < durationMin || duration > durationMax {
			msg := fmt.Sprintf("%s: PrescribedRegimenDuration %s is %d, expected between 1 and 180 days.",
				date, reg.CodeDescription, duration)
			if rctx.MarkSeen(msg) {
				issues = append(issues, ndr.Blocking(msg))
			}
		}

		if duration > mmdCutoff && !present(reg.MultiMonthDispensing) {
			issues = append(issues, blocking("%s: Regimen duration >30 days but MMD not specified.", date))
		}
	}

	return issues
}
