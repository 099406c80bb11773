package ndrvalidator

import (
	"sync"
	"sync/atomic"
	"time"
)

// Metrics tracks validation counters using lock-free atomic operations.
// All methods are safe for concurrent use.
type Metrics struct {
	// Validation counts
	validationsTotal atomic.Uint64
	validationsValid atomic.Uint64

	// Timing (stored as nanoseconds)
	validationTimeTotal atomic.Uint64
	validationTimeMin   atomic.Uint64
	validationTimeMax   atomic.Uint64

	// Issue counts by severity
	blockingTotal atomic.Uint64
	warningsTotal atomic.Uint64

	// Per-rule timing
	ruleTiming sync.Map // map[string]*ruleMetrics
}

// ruleMetrics tracks counters for a single rule.
type ruleMetrics struct {
	invocations atomic.Uint64
	totalTime   atomic.Uint64 // nanoseconds
	issuesFound atomic.Uint64
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	m := &Metrics{}
	// Initialize min to max uint64 so first value becomes the minimum
	m.validationTimeMin.Store(^uint64(0))
	return m
}

// RecordValidation records a completed validation.
func (m *Metrics) RecordValidation(duration time.Duration, valid bool) {
	m.validationsTotal.Add(1)
	if valid {
		m.validationsValid.Add(1)
	}

	ns := uint64(duration.Nanoseconds())
	m.validationTimeTotal.Add(ns)

	// Update min (CAS loop)
	for {
		old := m.validationTimeMin.Load()
		if ns >= old {
			break
		}
		if m.validationTimeMin.CompareAndSwap(old, ns) {
			break
		}
	}

	// Update max (CAS loop)
	for {
		old := m.validationTimeMax.Load()
		if ns <= old {
			break
		}
		if m.validationTimeMax.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordIssue records one emitted issue.
func (m *Metrics) RecordIssue(issue Issue) {
	if issue.IsBlocking() {
		m.blockingTotal.Add(1)
	} else {
		m.warningsTotal.Add(1)
	}
}

// RecordRule records one rule execution.
func (m *Metrics) RecordRule(name string, duration time.Duration, issues int) {
	v, _ := m.ruleTiming.LoadOrStore(name, &ruleMetrics{})
	rm := v.(*ruleMetrics)
	rm.invocations.Add(1)
	rm.totalTime.Add(uint64(duration.Nanoseconds()))
	rm.issuesFound.Add(uint64(issues))
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	ValidationsTotal uint64         `json:"validationsTotal"`
	ValidationsValid uint64         `json:"validationsValid"`
	BlockingTotal    uint64         `json:"blockingTotal"`
	WarningsTotal    uint64         `json:"warningsTotal"`
	TotalTime        time.Duration  `json:"totalTime"`
	MinTime          time.Duration  `json:"minTime"`
	MaxTime          time.Duration  `json:"maxTime"`
	Rules            []RuleSnapshot `json:"rules,omitempty"`
}

// RuleSnapshot is a point-in-time copy of one rule's counters.
type RuleSnapshot struct {
	Name        string        `json:"name"`
	Invocations uint64        `json:"invocations"`
	TotalTime   time.Duration `json:"totalTime"`
	IssuesFound uint64        `json:"issuesFound"`
}

// Snapshot returns a consistent-enough copy of the counters for reporting.
func (m *Metrics) Snapshot() Snapshot {
	s := Snapshot{
		ValidationsTotal: m.validationsTotal.Load(),
		ValidationsValid: m.validationsValid.Load(),
		BlockingTotal:    m.blockingTotal.Load(),
		WarningsTotal:    m.warningsTotal.Load(),
		TotalTime:        time.Duration(m.validationTimeTotal.Load()),
		MaxTime:          time.Duration(m.validationTimeMax.Load()),
	}
	if min := m.validationTimeMin.Load(); min != ^uint64(0) {
		s.MinTime = time.Duration(min)
	}
	m.ruleTiming.Range(func(key, value any) bool {
		rm := value.(*ruleMetrics)
		s.Rules = append(s.Rules, RuleSnapshot{
			Name:        key.(string),
			Invocations: rm.invocations.Load(),
			TotalTime:   time.Duration(rm.totalTime.Load()),
			IssuesFound: rm.issuesFound.Load(),
		})
		return true
	})
	return s
}
