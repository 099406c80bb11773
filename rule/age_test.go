package rule

import (
	"testing"

	ndr "github.com/gondr/validator"
)

func ageRecord(dob, report, reported *string) *ndr.ClinicalRecord {
	rec := ndr.NewClinicalRecord()
	rec.Patient.DateOfBirth = dob
	rec.Patient.ReportDate = report
	rec.Patient.ReportedAge = reported
	return rec
}

func TestAgeWithinTolerance(t *testing.T) {
	tests := []struct {
		name     string
		reported string
	}{
		{"exact", "24"},
		{"one year over", "25"},
		{"one year under", "23"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ageRecord(str("2000-01-01"), str("2024-01-02"), str(tt.reported))
			if issues := run(Age{}, rec); len(issues) != 0 {
				t.Errorf("issues = %q; want none", messages(issues))
			}
		})
	}
}

func TestAgeBeyondTolerance(t *testing.T) {
	// Born 2000-01-01, reported 2024-01-02: calculated age is 24 and a
	// reported 22 differs by two years.
	rec := ageRecord(str("2000-01-01"), str("2024-01-02"), str("22"))

	assertMessages(t, run(Age{}, rec), []string{
		"Reported age (22) vs calculated (24) differs by >1 year.",
	})
}

func TestAgeBirthdayNotYetReached(t *testing.T) {
	// The day before the birthday the calculated age is still 23, so a
	// reported 25 is out of tolerance and 22 is within it.
	rec := ageRecord(str("2000-01-10"), str("2024-01-09"), str("25"))
	assertMessages(t, run(Age{}, rec), []string{
		"Reported age (25) vs calculated (23) differs by >1 year.",
	})

	rec = ageRecord(str("2000-01-10"), str("2024-01-09"), str("22"))
	if issues := run(Age{}, rec); len(issues) != 0 {
		t.Errorf("issues = %q; want none", messages(issues))
	}
}

func TestAgeReportedVerbatimInMessage(t *testing.T) {
	// The reported value is echoed raw, surrounding whitespace included.
	rec := ageRecord(str("2000-01-01"), str("2024-01-02"), str(" 30 "))

	assertMessages(t, run(Age{}, rec), []string{
		"Reported age ( 30 ) vs calculated (24) differs by >1 year.",
	})
}

func TestAgeUnableToValidate(t *testing.T) {
	tests := []struct {
		name string
		rec  *ndr.ClinicalRecord
	}{
		{"missing dob", ageRecord(nil, str("2024-01-02"), str("24"))},
		{"missing report date", ageRecord(str("2000-01-01"), nil, str("24"))},
		{"missing reported age", ageRecord(str("2000-01-01"), str("2024-01-02"), nil)},
		{"bad dob format", ageRecord(str("01/01/2000"), str("2024-01-02"), str("24"))},
		{"bad report date format", ageRecord(str("2000-01-01"), str("Jan 2 2024"), str("24"))},
		{"non-numeric reported age", ageRecord(str("2000-01-01"), str("2024-01-02"), str("twenty"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := run(Age{}, tt.rec)
			assertMessages(t, issues, []string{"Unable to validate age (date format issue)."})
			if issues[0].Severity != ndr.SeverityWarning {
				t.Errorf("severity = %q; want warning", issues[0].Severity)
			}
		})
	}
}
