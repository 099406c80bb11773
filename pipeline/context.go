// Package pipeline provides the ordered rule-execution infrastructure for
// record validation.
package pipeline

import (
	"strings"
	"time"

	ndr "github.com/gondr/validator"
	"github.com/gondr/validator/pkg/strictdate"
)

// IPTDate is one regimen visit date whose code identifies Isoniazid
// Preventive Therapy (the code contains "INH", case-insensitively).
type IPTDate struct {
	// Raw is the visit-date key, possibly the Unknown sentinel or malformed.
	Raw string

	// Time is the parsed date; valid only when Parsed is true.
	Time time.Time

	// Parsed reports whether Raw parsed under the strict date grammar.
	Parsed bool
}

// OnOrAfter reports whether this IPT date is on or after visit. Dates that
// failed to parse never satisfy an ordered comparison.
func (d IPTDate) OnOrAfter(visit time.Time) bool {
	return d.Parsed && !d.Time.Before(visit)
}

// Context holds all state shared by the rules during one validation run: the
// record under inspection, the lazily built IPT date set, and the cross-rule
// message dedup set.
type Context struct {
	Record  *ndr.ClinicalRecord
	Options *ndr.Options

	iptDates   []IPTDate
	iptBuilt   bool
	seenIssues map[string]bool
}

// NewContext creates a context for one validation run.
func NewContext(record *ndr.ClinicalRecord, options *ndr.Options) *Context {
	return &Context{
		Record:     record,
		Options:    options,
		seenIssues: make(map[string]bool),
	}
}

// IPTDates returns the visit dates of every regimen whose code contains
// "INH" case-insensitively, in insertion order. Built once per run.
func (c *Context) IPTDates() []IPTDate {
	if c.iptBuilt {
		return c.iptDates
	}
	c.iptBuilt = true
	for _, date := range c.Record.Regimens.Keys() {
		reg, _ := c.Record.Regimens.Get(date)
		if !strings.Contains(strings.ToUpper(reg.Code), "INH") {
			continue
		}
		entry := IPTDate{Raw: date}
		if t, err := strictdate.Parse(date); err == nil {
			entry.Time = t
			entry.Parsed = true
		}
		c.iptDates = append(c.iptDates, entry)
	}
	return c.iptDates
}

// MarkSeen records message and reports whether this is its first occurrence
// in the run. Rules that deduplicate by exact message text use this.
func (c *Context) MarkSeen(message string) bool {
	if c.seenIssues[message] {
		return false
	}
	c.seenIssues[message] = true
	return true
}
