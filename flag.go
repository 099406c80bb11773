package ndrvalidator

// FlagKind enumerates the structural defects the extractor can raise.
// Keeping this closed lets the validator match flags exhaustively instead of
// comparing strings.
type FlagKind int

const (
	// FlagMissingARTStartDate is raised when HIVQuestions lacks an
	// ARTStartDate value, or the whole section is absent.
	FlagMissingARTStartDate FlagKind = iota
	// FlagMissingAddressType is raised when PatientAddress lacks AddressTypeCode.
	FlagMissingAddressType
	// FlagMissingLGACode is raised when PatientAddress lacks LGACode.
	FlagMissingLGACode
	// FlagMissingStateCode is raised when PatientAddress lacks StateCode.
	FlagMissingStateCode
	// FlagMissingCountryCode is raised when PatientAddress lacks CountryCode.
	FlagMissingCountryCode
	// FlagMissingAddress is raised when the PatientAddress element is absent.
	FlagMissingAddress
	// FlagInvalidIdentifier is raised once per identifier entry whose type
	// code is neither HN nor TB. The offending type code is carried on the Flag.
	FlagInvalidIdentifier
)

var flagKindText = map[FlagKind]string{
	FlagMissingARTStartDate: "Missing ARTStartDate",
	FlagMissingAddressType:  "Missing AddressTypeCode in PatientAddress",
	FlagMissingLGACode:      "Missing LGACode in PatientAddress",
	FlagMissingStateCode:    "Missing StateCode in PatientAddress",
	FlagMissingCountryCode:  "Missing CountryCode in PatientAddress",
	FlagMissingAddress:      "Missing PatientAddress element",
	FlagInvalidIdentifier:   "Invalid identifier",
}

// String returns the canonical flag text.
func (k FlagKind) String() string {
	return flagKindText[k]
}

// Flag is one structural defect raised during extraction. Flags are
// additive: the extractor appends, nothing removes. Duplicate invalid
// identifier flags are preserved so that duplicates in the source surface as
// duplicate issues.
type Flag struct {
	Kind FlagKind

	// TypeCode is the identifier type code for FlagInvalidIdentifier;
	// empty for other kinds.
	TypeCode string
}

// String returns the flag text, e.g. "Invalid identifier: NIN".
func (f Flag) String() string {
	if f.Kind == FlagInvalidIdentifier {
		return f.Kind.String() + ": " + f.TypeCode
	}
	return f.Kind.String()
}

// MissingField creates a flag for a missing structural field or section.
func MissingField(kind FlagKind) Flag {
	return Flag{Kind: kind}
}

// InvalidIdentifier creates a flag for an unrecognized identifier type code.
func InvalidIdentifier(typeCode string) Flag {
	return Flag{Kind: FlagInvalidIdentifier, TypeCode: typeCode}
}
