// Package extract normalizes a parsed NDR document tree into a flat, typed
// ClinicalRecord. Sections are located by best-effort descendant search; an
// absent section leaves its fields unset and, where the rules depend on it,
// appends a structural flag. No business-rule judgment happens here.
package extract

import (
	ndr "github.com/gondr/validator"
	"github.com/gondr/validator/document"
	"github.com/gondr/validator/pkg/strictdate"
)

// Record builds a ClinicalRecord from a parsed document. It never fails: a
// well-formed tree that lacks expected sections degrades gracefully.
func Record(doc *document.Document) *ndr.ClinicalRecord {
	rec := ndr.NewClinicalRecord()

	demographics(doc, rec)
	address(doc, rec)
	commonQuestions(doc, rec)
	hivQuestions(doc, rec)
	regimens(doc, rec)
	encounters(doc, rec)
	labs(doc, rec)

	return rec
}

func demographics(doc *document.Document, rec *ndr.ClinicalRecord) {
	demo := doc.Find("PatientDemographics")
	if demo == nil {
		return
	}

	p := &rec.Patient
	p.PatientID = demo.ChildText("PatientIdentifier")
	p.DateOfBirth = demo.ChildText("PatientDateOfBirth")
	p.Sex = demo.ChildText("PatientSexCode")
	p.FacilityName = demo.FindText("FacilityName")
	p.FacilityID = demo.FindText("FacilityID")

	identifiers := demo.Find("OtherPatientIdentifiers")
	if identifiers == nil {
		return
	}
	for _, id := range identifiers.Childs("Identifier") {
		typeCode := id.ChildText("IDTypeCode")
		number := id.ChildText("IDNumber")
		switch {
		case typeCode == nil || *typeCode == "":
			// no classification possible
		case *typeCode == "HN":
			p.HospitalNumber = number
		case *typeCode == "TB":
			p.TBIdentifier = number
		default:
			p.OtherIdentifiers[*typeCode] = text(number)
			rec.Art.AddFlag(ndr.InvalidIdentifier(*typeCode))
		}
	}
}

// addressFields maps each PatientAddress child element to its flag, in the
// order the validator reports them.
var addressFields = []struct {
	element string
	kind    ndr.FlagKind
}{
	{"AddressTypeCode", ndr.FlagMissingAddressType},
	{"LGACode", ndr.FlagMissingLGACode},
	{"StateCode", ndr.FlagMissingStateCode},
	{"CountryCode", ndr.FlagMissingCountryCode},
}

func address(doc *document.Document, rec *ndr.ClinicalRecord) {
	addr := doc.Find("PatientAddress")
	if addr == nil {
		rec.Art.AddFlag(ndr.MissingField(ndr.FlagMissingAddress))
		return
	}

	a := &ndr.Address{}
	values := map[string]**string{
		"AddressTypeCode": &a.TypeCode,
		"LGACode":         &a.LGACode,
		"StateCode":       &a.StateCode,
		"CountryCode":     &a.CountryCode,
	}
	for _, f := range addressFields {
		v := addr.ChildText(f.element)
		*values[f.element] = v
		if v == nil || *v == "" {
			rec.Art.AddFlag(ndr.MissingField(f.kind))
		}
	}
	rec.Patient.Address = a
}

func commonQuestions(doc *document.Document, rec *ndr.ClinicalRecord) {
	common := doc.Find("CommonQuestions")
	if common == nil {
		return
	}
	rec.Patient.ReportedAge = common.ChildText("PatientAge")
	rec.Patient.ReportDate = common.ChildText("DateOfLastReport")
}

func hivQuestions(doc *document.Document, rec *ndr.ClinicalRecord) {
	hiv := doc.Find("HIVQuestions")
	if hiv == nil {
		rec.Art.AddFlag(ndr.MissingField(ndr.FlagMissingARTStartDate))
		return
	}

	if s := hiv.ChildText("ARTStartDate"); s != nil && *s != "" {
		// Unparsable values leave StartDate unset without a flag; the
		// validator reports the absence either way.
		if t, err := strictdate.Parse(*s); err == nil {
			rec.Art.StartDate = &t
		}
	} else {
		rec.Art.AddFlag(ndr.MissingField(ndr.FlagMissingARTStartDate))
	}

	if h := hiv.ChildText("ChildHeightAtARTStart"); h != nil && *h != "" {
		rec.Patient.HeightAtARTStart = h
	}
}

func regimens(doc *document.Document, rec *ndr.ClinicalRecord) {
	for _, reg := range doc.FindAll("Regimen") {
		rec.Regimens.Set(visitDate(reg), ndr.Regimen{
			Code:                 text(reg.ChildText("PrescribedRegimen/Code")),
			CodeDescription:      text(reg.ChildText("PrescribedRegimen/CodeDescTxt")),
			TypeCode:             reg.ChildText("PrescribedRegimenTypeCode"),
			DurationDays:         reg.ChildText("PrescribedRegimenDuration"),
			MultiMonthDispensing: reg.ChildText("MultiMonthDispensing"),
		})
	}
}

func encounters(doc *document.Document, rec *ndr.ClinicalRecord) {
	for _, enc := range doc.FindAll("HIVEncounter") {
		rec.Encounters.Set(visitDate(enc), ndr.Encounter{
			ARVCode:     enc.ChildText("ARVDrugRegimen/Code"),
			TBStatus:    enc.ChildText("TBStatus"),
			ChildHeight: enc.ChildText("ChildHeight"),
		})
	}
}

func labs(doc *document.Document, rec *ndr.ClinicalRecord) {
	for _, lab := range doc.FindAll("LaboratoryReport") {
		rec.Labs.Set(visitDate(lab), ndr.LabReport{
			TestIdentifier: lab.ChildText("LaboratoryTestIdentifier"),
			CollectionDate: lab.ChildText("CollectionDate"),
		})
	}
}

// visitDate returns the entry's VisitDate text, or the Unknown sentinel when
// the element is absent or empty. Later entries with the same date overwrite
// earlier ones; that is a documented last-write-wins policy, not a merge.
func visitDate(e *document.Element) string {
	if d := e.ChildText("VisitDate"); d != nil && *d != "" {
		return *d
	}
	return ndr.UnknownVisitDate
}

func text(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
