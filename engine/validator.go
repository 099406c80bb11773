// Package engine wires the extractor and the rule pipeline into the main
// record validator.
package engine

import (
	"context"
	"io"

	ndr "github.com/gondr/validator"
	"github.com/gondr/validator/document"
	"github.com/gondr/validator/extract"
	"github.com/gondr/validator/pipeline"
	"github.com/gondr/validator/rule"
)

// Validator is the main NDR record validator. It is safe for concurrent use:
// all per-run state lives in the pipeline context.
type Validator struct {
	options *ndr.Options
	pipe    *pipeline.Pipeline
	metrics *ndr.Metrics
}

// New creates a Validator with the given options.
func New(opts ...ndr.Option) *Validator {
	options := ndr.DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	v := &Validator{options: options}
	v.buildPipeline()
	return v
}

// buildPipeline registers the rules in the order callers observe issues.
// The regimen rule internally yields to the encounter rule when the legacy
// per-encounter rescan is enabled.
func (v *Validator) buildPipeline() {
	v.pipe = pipeline.New(v.options)
	v.pipe.Register(
		rule.Identifiers{},
		rule.ARTStart{},
		rule.Address{},
		rule.Encounters{},
		rule.Regimens{},
		rule.Agreement{},
		rule.Labs{},
		rule.Age{},
		rule.Height{},
	)

	if v.options.CollectMetrics {
		v.metrics = ndr.NewMetrics()
		v.pipe.SetMetrics(v.metrics)
	}
}

// Validate checks one ClinicalRecord and returns the ordered issue list.
// The record is treated as immutable input; the caller owns the result.
func (v *Validator) Validate(ctx context.Context, record *ndr.ClinicalRecord) *ndr.Result {
	return v.pipe.Run(ctx, record)
}

// ValidateReader parses XML from r, extracts the clinical record, and
// validates it. A *document.MalformedInputError is returned, with no record
// and no result, when the input is not well-formed XML.
func (v *Validator) ValidateReader(ctx context.Context, r io.Reader) (*ndr.ClinicalRecord, *ndr.Result, error) {
	doc, err := document.Parse(r)
	if err != nil {
		return nil, nil, err
	}
	record := extract.Record(doc)
	return record, v.Validate(ctx, record), nil
}

// ValidateBytes parses and validates an in-memory XML document.
func (v *Validator) ValidateBytes(ctx context.Context, data []byte) (*ndr.ClinicalRecord, *ndr.Result, error) {
	doc, err := document.ParseBytes(data)
	if err != nil {
		return nil, nil, err
	}
	record := extract.Record(doc)
	return record, v.Validate(ctx, record), nil
}

// Options returns the active configuration.
func (v *Validator) Options() *ndr.Options {
	return v.options
}

// Metrics returns the metrics collector, or nil when metrics are disabled.
func (v *Validator) Metrics() *ndr.Metrics {
	return v.metrics
}
