package rule

import (
	"context"
	"testing"
	"time"

	ndr "github.com/gondr/validator"
	"github.com/gondr/validator/pipeline"
	"github.com/gondr/validator/pkg/strictdate"
)

func str(s string) *string {
	return &s
}

func mustDate(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := strictdate.Parse(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return &d
}

func run(r pipeline.Rule, rec *ndr.ClinicalRecord) []ndr.Issue {
	return runWith(r, rec, ndr.DefaultOptions())
}

func runWith(r pipeline.Rule, rec *ndr.ClinicalRecord, opts *ndr.Options) []ndr.Issue {
	return r.Check(context.Background(), pipeline.NewContext(rec, opts))
}

func messages(issues []ndr.Issue) []string {
	out := make([]string, len(issues))
	for i, is := range issues {
		out[i] = is.Message
	}
	return out
}

func assertMessages(t *testing.T, issues []ndr.Issue, want []string) {
	t.Helper()
	got := messages(issues)
	if len(got) != len(want) {
		t.Fatalf("issues = %q; want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("issue[%d] = %q; want %q", i, got[i], want[i])
		}
	}
}
