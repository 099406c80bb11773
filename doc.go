// Package ndrvalidator checks a single clinical-care record against the
// national data repository (NDR) consistency rules and produces an ordered,
// human-readable list of defects.
//
// The package is built around a two-stage pipeline: the extractor normalizes
// a parsed NDR XML document into a flat, typed ClinicalRecord, and the
// validator inspects that record with a fixed, ordered rule set. The rule set
// covers ART chronology, TB/IPT mutual exclusion, regimen duration and
// multi-month dispensing policy, identifier and address completeness, age
// consistency, and anthropometric bounds.
//
// # Quick Start
//
//	import (
//	    ndr "github.com/gondr/validator"
//	    "github.com/gondr/validator/engine"
//	)
//
//	v := engine.New()
//	record, result, err := v.ValidateBytes(ctx, xmlBytes)
//	if err != nil {
//	    log.Fatal(err) // input was not well-formed XML
//	}
//	for _, line := range result.Strings() {
//	    fmt.Println(line) // "❌ ..." or "⚠️ ..."
//	}
//
// # Architecture
//
// Data flows one way: XML bytes -> document tree -> extractor ->
// ClinicalRecord -> rule pipeline -> Result. The extractor never fails on a
// well-formed tree; absent sections degrade to typed flags on the record.
// The validator is a pure function of its input: validating the same record
// twice yields byte-identical, identically ordered issue lists.
//
// Rules run strictly sequentially because callers depend on the exact issue
// ordering. There is no shared mutable state between validations, so any
// number of records may be validated concurrently with independent Validator
// instances or a single shared one.
//
// # Functional Options
//
//	v := engine.New(
//	    ndr.WithStrictMode(true),
//	    ndr.WithMetrics(true),
//	)
package ndrvalidator
