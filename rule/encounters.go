package rule

import (
	"context"
	"time"

	ndr "github.com/gondr/validator"
	"github.com/gondr/validator/pipeline"
	"github.com/gondr/validator/pkg/strictdate"
)

// TB status codes as recorded in HIVEncounter/TBStatus.
const (
	tbNoSigns        = "0" // no signs or symptoms
	tbPresumptive    = "1" // presumptive TB, under investigation
	tbPulmonary      = "2" // confirmed pulmonary TB
	tbExtraPulmonary = "3" // confirmed extra-pulmonary TB
	tbOnTreatment    = "4" // on TB treatment
)

// Encounters runs the per-encounter checks in key order: the Unknown-date
// sentinel, ARV code presence, visit-date chronology against the ART start
// date, and the TB/IPT cross-checks. With the legacy option set it also
// re-runs the regimen duration scan once per encounter, reproducing the
// historical duplication.
type Encounters struct{}

// Name returns the rule name.
func (Encounters) Name() string {
	return "encounters"
}

// Check implements pipeline.Rule.
func (Encounters) Check(_ context.Context, rctx *pipeline.Context) []ndr.Issue {
	var issues []ndr.Issue
	rec := rctx.Record

	for _, date := range rec.Encounters.Keys() {
		enc, _ := rec.Encounters.Get(date)

		if date == ndr.UnknownVisitDate {
			issues = append(issues, ndr.Blocking("Encounter missing VisitDate."))
			continue
		}

		if !present(enc.ARVCode) {
			issues = append(issues, blocking("%s: ARVDrugRegimen/Code is missing.", date))
		}

		visit, parseErr := strictdate.Parse(date)
		if parseErr != nil {
			issues = append(issues, warning("%s: VisitDate has invalid format.", date))
		} else {
			if rec.Art.StartDate != nil && visit.Before(*rec.Art.StartDate) && present(enc.ARVCode) {
				issues = append(issues, blocking("%s: Encounter precedes ARTStartDate (%s).",
					date, strictdate.Format(*rec.Art.StartDate)))
			}
			// Repeats per encounter, unlike the one-shot presence check.
			if rec.Art.StartDate == nil {
				issues = append(issues, blocking("%s: ARTStartDate Missing.", date))
			}
		}

		issues = append(issues, checkTB(rctx, date, enc, parseErr == nil, visit)...)

		if rctx.Options.LegacyRegimenScan {
			issues = append(issues, scanRegimens(rctx)...)
		}
	}

	return issues
}

// checkTB validates the TB status against the IPT (INH) regimen dates. A
// visit date that failed to parse uses the conservative defaults: status 0
// always reports, statuses 2/3/4 conflict with any IPT entry at all.
func checkTB(rctx *pipeline.Context, date string, enc ndr.Encounter, visitParsed bool, visit time.Time) []ndr.Issue {
	if enc.TBStatus == nil {
		return []ndr.Issue{blocking("%s: TBStatus is missing.", date)}
	}

	switch *enc.TBStatus {
	case tbNoSigns:
		hasIPT := false
		if visitParsed {
			for _, ipt := range rctx.IPTDates() {
				if ipt.OnOrAfter(visit) {
					hasIPT = true
					break
				}
			}
		}
		if !hasIPT {
			return []ndr.Issue{blocking("%s: TBStatus 0 but no IPT (INH) regimen on/after this date.", date)}
		}

	case tbPulmonary, tbExtraPulmonary, tbOnTreatment:
		conflict := false
		if visitParsed {
			for _, ipt := range rctx.IPTDates() {
				if ipt.OnOrAfter(visit) {
					conflict = true
					break
				}
			}
		} else {
			conflict = len(rctx.IPTDates()) > 0
		}
		if conflict {
			return []ndr.Issue{blocking("%s: IPT recorded for TBStatus %s (should receive TB treatment).",
				date, *enc.TBStatus)}
		}
	}

	// Status 1 (under investigation) and non-conforming values emit nothing.
	return nil
}
