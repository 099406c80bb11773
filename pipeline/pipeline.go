package pipeline

import (
	"context"
	"time"

	ndr "github.com/gondr/validator"
)

// Rule represents a single validation rule family in the pipeline.
//
// Rules should be:
// - Stateless: all run state lives in the Context
// - Deterministic: identical input yields identical issues in identical order
type Rule interface {
	// Name returns the unique identifier for this rule.
	Name() string

	// Check inspects the record and returns any issues found, in emission
	// order.
	Check(ctx context.Context, rctx *Context) []ndr.Issue
}

// RuleFunc is a function type that implements Rule.
type RuleFunc struct {
	name string
	fn   func(ctx context.Context, rctx *Context) []ndr.Issue
}

// NewRuleFunc creates a Rule from a function.
func NewRuleFunc(name string, fn func(ctx context.Context, rctx *Context) []ndr.Issue) Rule {
	return &RuleFunc{name: name, fn: fn}
}

// Name returns the rule name.
func (r *RuleFunc) Name() string {
	return r.name
}

// Check calls the wrapped function.
func (r *RuleFunc) Check(ctx context.Context, rctx *Context) []ndr.Issue {
	return r.fn(ctx, rctx)
}

// Pipeline executes rules strictly in registration order. Callers see issues
// in rule order, so unlike a general phase runner there are no parallel
// groups and no reordering.
type Pipeline struct {
	rules   []Rule
	options *ndr.Options
	metrics *ndr.Metrics
}

// New creates a pipeline with the given options.
func New(options *ndr.Options) *Pipeline {
	if options == nil {
		options = ndr.DefaultOptions()
	}
	return &Pipeline{options: options}
}

// Register appends a rule. Registration order is execution order.
func (p *Pipeline) Register(rules ...Rule) {
	p.rules = append(p.rules, rules...)
}

// SetMetrics sets the metrics collector.
func (p *Pipeline) SetMetrics(m *ndr.Metrics) {
	p.metrics = m
}

// RuleCount returns the number of registered rules.
func (p *Pipeline) RuleCount() int {
	return len(p.rules)
}

// Run validates one record and returns the accumulated result. The caller
// owns the result and may Release() it when done.
func (p *Pipeline) Run(ctx context.Context, record *ndr.ClinicalRecord) *ndr.Result {
	start := time.Now()
	result := ndr.AcquireResult()
	rctx := NewContext(record, p.options)

	for _, rule := range p.rules {
		select {
		case <-ctx.Done():
			return p.finish(start, result)
		default:
		}

		if p.options.MaxIssues > 0 && len(result.Issues) >= p.options.MaxIssues {
			break
		}

		ruleStart := time.Now()
		issues := rule.Check(ctx, rctx)
		if p.metrics != nil {
			p.metrics.RecordRule(rule.Name(), time.Since(ruleStart), len(issues))
			for _, issue := range issues {
				p.metrics.RecordIssue(issue)
			}
		}
		result.AddIssues(issues)
	}

	return p.finish(start, result)
}

func (p *Pipeline) finish(start time.Time, result *ndr.Result) *ndr.Result {
	if p.options.StrictMode && result.HasWarnings() {
		result.Valid = false
	}
	if p.metrics != nil {
		p.metrics.RecordValidation(time.Since(start), result.Valid)
	}
	return result
}
