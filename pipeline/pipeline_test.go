package pipeline

import (
	"context"
	"testing"

	ndr "github.com/gondr/validator"
)

func emit(issues ...ndr.Issue) func(context.Context, *Context) []ndr.Issue {
	return func(context.Context, *Context) []ndr.Issue {
		return issues
	}
}

func TestPipelineRunsRulesInRegistrationOrder(t *testing.T) {
	p := New(nil)
	p.Register(
		NewRuleFunc("first", emit(ndr.Blocking("a"))),
		NewRuleFunc("second", emit(ndr.Warning("b"), ndr.Blocking("c"))),
		NewRuleFunc("third", emit()),
		NewRuleFunc("fourth", emit(ndr.Blocking("d"))),
	)
	if p.RuleCount() != 4 {
		t.Fatalf("RuleCount() = %d; want 4", p.RuleCount())
	}

	result := p.Run(context.Background(), ndr.NewClinicalRecord())
	defer result.Release()

	want := []string{"a", "b", "c", "d"}
	if len(result.Issues) != len(want) {
		t.Fatalf("issues = %v; want %d entries", result.Issues, len(want))
	}
	for i, w := range want {
		if result.Issues[i].Message != w {
			t.Errorf("issue[%d] = %q; want %q", i, result.Issues[i].Message, w)
		}
	}
	if result.Valid {
		t.Error("result with blocking issues must not be valid")
	}
}

func TestPipelineValidWithoutIssues(t *testing.T) {
	p := New(nil)
	p.Register(NewRuleFunc("noop", emit()))

	result := p.Run(context.Background(), ndr.NewClinicalRecord())
	defer result.Release()

	if !result.Valid || len(result.Issues) != 0 {
		t.Errorf("Valid = %v, issues = %v; want valid and empty", result.Valid, result.Issues)
	}
}

func TestPipelineWarningsKeepValidByDefault(t *testing.T) {
	p := New(nil)
	p.Register(NewRuleFunc("warn", emit(ndr.Warning("w"))))

	result := p.Run(context.Background(), ndr.NewClinicalRecord())
	defer result.Release()

	if !result.Valid {
		t.Error("warnings alone must not invalidate the result")
	}
}

func TestPipelineStrictModeDemotesWarnings(t *testing.T) {
	opts := ndr.DefaultOptions()
	opts.StrictMode = true
	p := New(opts)
	p.Register(NewRuleFunc("warn", emit(ndr.Warning("w"))))

	result := p.Run(context.Background(), ndr.NewClinicalRecord())
	defer result.Release()

	if result.Valid {
		t.Error("strict mode must invalidate a result that has warnings")
	}
}

func TestPipelineMaxIssuesStopsBetweenRules(t *testing.T) {
	opts := ndr.DefaultOptions()
	opts.MaxIssues = 2
	p := New(opts)
	p.Register(
		NewRuleFunc("first", emit(ndr.Blocking("a"), ndr.Blocking("b"), ndr.Blocking("c"))),
		NewRuleFunc("second", emit(ndr.Blocking("d"))),
	)

	result := p.Run(context.Background(), ndr.NewClinicalRecord())
	defer result.Release()

	// Rules are never cut mid-run: the first rule's three issues all land,
	// the second rule never runs.
	if len(result.Issues) != 3 {
		t.Errorf("issues = %v; want the first rule's 3", result.Issues)
	}
}

func TestPipelineCancelledContextStopsEarly(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New(nil)
	p.Register(NewRuleFunc("never", emit(ndr.Blocking("a"))))

	result := p.Run(ctx, ndr.NewClinicalRecord())
	defer result.Release()

	if len(result.Issues) != 0 {
		t.Errorf("issues = %v; want none after cancellation", result.Issues)
	}
}

func TestPipelineRecordsMetrics(t *testing.T) {
	m := ndr.NewMetrics()
	p := New(nil)
	p.SetMetrics(m)
	p.Register(NewRuleFunc("one", emit(ndr.Blocking("a"), ndr.Warning("b"))))

	p.Run(context.Background(), ndr.NewClinicalRecord()).Release()

	snap := m.Snapshot()
	if snap.ValidationsTotal != 1 || snap.ValidationsValid != 0 {
		t.Errorf("snapshot = %+v; want 1 validation, 0 valid", snap)
	}
	if snap.BlockingTotal != 1 || snap.WarningsTotal != 1 {
		t.Errorf("snapshot = %+v; want 1 blocking, 1 warning", snap)
	}
	if len(snap.Rules) != 1 || snap.Rules[0].Name != "one" || snap.Rules[0].IssuesFound != 2 {
		t.Errorf("rule snapshot = %+v; want one rule with 2 issues", snap.Rules)
	}
}

func TestContextIPTDates(t *testing.T) {
	rec := ndr.NewClinicalRecord()
	rec.Regimens.Set("2024-01-15", ndr.Regimen{Code: "INH 300mg"})
	rec.Regimens.Set("2024-02-01", ndr.Regimen{Code: "TDF-3TC-DTG"})
	rec.Regimens.Set("2024-03-01", ndr.Regimen{Code: "isoniazid (inh)"})
	rec.Regimens.Set("bad-date", ndr.Regimen{Code: "INH"})

	rctx := NewContext(rec, ndr.DefaultOptions())
	dates := rctx.IPTDates()
	if len(dates) != 3 {
		t.Fatalf("IPTDates() len = %d; want 3", len(dates))
	}
	if dates[0].Raw != "2024-01-15" || dates[1].Raw != "2024-03-01" || dates[2].Raw != "bad-date" {
		t.Errorf("IPT dates out of order: %+v", dates)
	}
	if !dates[0].Parsed || dates[2].Parsed {
		t.Errorf("parse flags wrong: %+v", dates)
	}

	visit := dates[0].Time
	if !dates[0].OnOrAfter(visit) {
		t.Error("a date must be on-or-after itself")
	}
	if dates[2].OnOrAfter(visit) {
		t.Error("an unparsed date must never satisfy an ordered comparison")
	}
}

func TestContextMarkSeen(t *testing.T) {
	rctx := NewContext(ndr.NewClinicalRecord(), ndr.DefaultOptions())

	if !rctx.MarkSeen("msg") {
		t.Error("first occurrence should report true")
	}
	if rctx.MarkSeen("msg") {
		t.Error("second occurrence should report false")
	}
	if !rctx.MarkSeen("other") {
		t.Error("distinct messages are tracked independently")
	}
}
