package rule

import (
	"testing"

	ndr "github.com/gondr/validator"
)

func TestLabs(t *testing.T) {
	tests := []struct {
		name string
		lab  ndr.LabReport
		want []string
	}{
		{
			name: "complete",
			lab:  ndr.LabReport{TestIdentifier: str("VL"), CollectionDate: str("2023-07-01")},
		},
		{
			name: "missing test id",
			lab:  ndr.LabReport{CollectionDate: str("2023-07-01")},
			want: []string{"2023-07-01: Lab report missing test ID or collection date."},
		},
		{
			name: "empty collection date",
			lab:  ndr.LabReport{TestIdentifier: str("VL"), CollectionDate: str("")},
			want: []string{"2023-07-01: Lab report missing test ID or collection date."},
		},
		{
			name: "both missing",
			lab:  ndr.LabReport{},
			want: []string{"2023-07-01: Lab report missing test ID or collection date."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ndr.NewClinicalRecord()
			rec.Labs.Set("2023-07-01", tt.lab)
			assertMessages(t, run(Labs{}, rec), tt.want)
		})
	}
}

func TestLabsUnknownDateStillChecked(t *testing.T) {
	rec := ndr.NewClinicalRecord()
	rec.Labs.Set(ndr.UnknownVisitDate, ndr.LabReport{})

	assertMessages(t, run(Labs{}, rec), []string{
		"Unknown: Lab report missing test ID or collection date.",
	})
}
