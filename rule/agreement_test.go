package rule

import (
	"testing"

	ndr "github.com/gondr/validator"
)

func TestAgreement(t *testing.T) {
	tests := []struct {
		name    string
		arvCode *string
		regimen ndr.Regimen
		noReg   bool
		want    []string
	}{
		{
			name:    "codes match",
			arvCode: str("TDF-3TC-DTG"),
			regimen: ndr.Regimen{Code: "TDF-3TC-DTG", TypeCode: str("ART")},
		},
		{
			name:    "codes differ",
			arvCode: str("TDF-3TC-DTG"),
			regimen: ndr.Regimen{Code: "AZT-3TC-NVP", TypeCode: str("ART")},
			want:    []string{"2024-01-01: ARV code mismatch (Encounter=TDF-3TC-DTG, Regimen=AZT-3TC-NVP)."},
		},
		{
			name:    "non-ART regimen skipped",
			arvCode: str("TDF-3TC-DTG"),
			regimen: ndr.Regimen{Code: "INH 300mg", TypeCode: str("IPT")},
		},
		{
			name:    "regimen without type code skipped",
			arvCode: str("TDF-3TC-DTG"),
			regimen: ndr.Regimen{Code: "AZT-3TC-NVP"},
		},
		{
			name:    "encounter without ARV code skipped",
			regimen: ndr.Regimen{Code: "AZT-3TC-NVP", TypeCode: str("ART")},
		},
		{
			name:    "regimen without code skipped",
			arvCode: str("TDF-3TC-DTG"),
			regimen: ndr.Regimen{TypeCode: str("ART")},
		},
		{
			name:    "no same-date regimen",
			arvCode: str("TDF-3TC-DTG"),
			noReg:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ndr.NewClinicalRecord()
			rec.Encounters.Set("2024-01-01", ndr.Encounter{ARVCode: tt.arvCode})
			if !tt.noReg {
				rec.Regimens.Set("2024-01-01", tt.regimen)
			}
			assertMessages(t, run(Agreement{}, rec), tt.want)
		})
	}
}

func TestAgreementFollowsEncounterOrder(t *testing.T) {
	rec := ndr.NewClinicalRecord()
	rec.Encounters.Set("2024-02-01", ndr.Encounter{ARVCode: str("A")})
	rec.Encounters.Set("2024-01-01", ndr.Encounter{ARVCode: str("A")})
	rec.Regimens.Set("2024-01-01", ndr.Regimen{Code: "B", TypeCode: str("ART")})
	rec.Regimens.Set("2024-02-01", ndr.Regimen{Code: "B", TypeCode: str("ART")})

	assertMessages(t, run(Agreement{}, rec), []string{
		"2024-02-01: ARV code mismatch (Encounter=A, Regimen=B).",
		"2024-01-01: ARV code mismatch (Encounter=A, Regimen=B).",
	})
}
