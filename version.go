package ndrvalidator

// Version is the library version.
const Version = "0.1.0"

// RulesRevision identifies the NDR validation rule revision this package
// implements. Earlier revisions lacked the identifier/address checks and the
// height bounds; they are superseded, not alternate modes.
const RulesRevision = "May 2025"
