package ndrvalidator

import "time"

// UnknownVisitDate is the sentinel key used when a repeated element omits
// its VisitDate. Entries under this key are processed only far enough to
// report the defect.
const UnknownVisitDate = "Unknown"

// VisitMap is an ordered association from visit-date string to a value.
// Insertion order is preserved and matches document order; setting an
// existing key overwrites the value in place (last write wins, original
// position kept).
type VisitMap[V any] struct {
	keys   []string
	values map[string]V
}

// NewVisitMap creates an empty VisitMap.
func NewVisitMap[V any]() *VisitMap[V] {
	return &VisitMap[V]{values: make(map[string]V)}
}

// Set inserts or overwrites the value for key.
func (m *VisitMap[V]) Set(key string, value V) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether it exists.
func (m *VisitMap[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order. The returned slice is shared;
// callers must not modify it.
func (m *VisitMap[V]) Keys() []string {
	return m.keys
}

// Len returns the number of entries.
func (m *VisitMap[V]) Len() int {
	return len(m.keys)
}

// Address holds the patient address codes. Fields are nil when the source
// element is absent.
type Address struct {
	TypeCode    *string
	LGACode     *string
	StateCode   *string
	CountryCode *string
}

// PatientInfo holds identity and demographic values as raw strings. Optional
// fields are nil when absent from the source document; none are date-parsed.
type PatientInfo struct {
	PatientID   *string
	Sex         *string
	DateOfBirth *string
	ReportedAge *string
	ReportDate  *string

	// HospitalNumber and TBIdentifier come from the repeated identifier
	// list, classified by type code HN / TB.
	HospitalNumber *string
	TBIdentifier   *string

	// OtherIdentifiers records every identifier whose type code is neither
	// HN nor TB, keyed by type code.
	OtherIdentifiers map[string]string

	FacilityName *string
	FacilityID   *string

	Address *Address

	HeightAtARTStart *string
}

// ArtContext carries the ART start date and the structural flags raised
// during extraction.
type ArtContext struct {
	// StartDate is nil if the source field is missing or unparsable.
	StartDate *time.Time

	// Flags accumulates structural defects. Additive, never removed.
	Flags []Flag
}

// AddFlag appends a structural flag.
func (a *ArtContext) AddFlag(f Flag) {
	a.Flags = append(a.Flags, f)
}

// HasFlag reports whether any flag of the given kind is present.
func (a *ArtContext) HasFlag(kind FlagKind) bool {
	for _, f := range a.Flags {
		if f.Kind == kind {
			return true
		}
	}
	return false
}

// Encounter is one HIV encounter, keyed externally by visit date.
type Encounter struct {
	// ARVCode is the drug-regimen code, nil when absent.
	ARVCode *string

	// TBStatus is "0".."4" or free text when non-conforming; nil when the
	// element is absent. An empty element is present-but-empty and is
	// distinct from nil.
	TBStatus *string

	// ChildHeight is a raw numeric string, nil when absent.
	ChildHeight *string
}

// Regimen is one prescribed regimen, keyed externally by visit date.
type Regimen struct {
	Code            string
	CodeDescription string

	// TypeCode is e.g. "ART"; nil when absent.
	TypeCode *string

	// DurationDays is a raw numeric string; nil when absent.
	DurationDays *string

	// MultiMonthDispensing is present/truthy when non-nil and non-empty.
	MultiMonthDispensing *string
}

// LabReport is one laboratory report, keyed externally by visit date.
type LabReport struct {
	TestIdentifier *string
	CollectionDate *string
}

// ClinicalRecord is the flat, typed form of one patient's NDR document. It
// is created fresh per extraction, owned solely by the caller, and treated
// as immutable input by the validator.
type ClinicalRecord struct {
	Patient PatientInfo
	Art     ArtContext

	Encounters *VisitMap[Encounter]
	Regimens   *VisitMap[Regimen]
	Labs       *VisitMap[LabReport]
}

// NewClinicalRecord creates an empty record with initialized collections.
func NewClinicalRecord() *ClinicalRecord {
	return &ClinicalRecord{
		Patient:    PatientInfo{OtherIdentifiers: make(map[string]string)},
		Encounters: NewVisitMap[Encounter](),
		Regimens:   NewVisitMap[Regimen](),
		Labs:       NewVisitMap[LabReport](),
	}
}
