// Package strictdate parses calendar dates in the strict YYYY-MM-DD grammar
// used throughout NDR records and computes whole-year ages from them.
package strictdate

import (
	"strings"
	"time"
)

// Layout is the only accepted date format.
const Layout = "2006-01-02"

// Parse parses s as a strict YYYY-MM-DD date. Surrounding whitespace is
// ignored; anything else non-conforming is an error.
func Parse(s string) (time.Time, error) {
	return time.Parse(Layout, strings.TrimSpace(s))
}

// Format renders t as YYYY-MM-DD.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Age returns the whole-year age at ref for someone born on dob. A birthday
// not yet reached in the reference year decrements the year difference by one.
func Age(dob, ref time.Time) int {
	years := ref.Year() - dob.Year()
	if ref.Month() < dob.Month() || (ref.Month() == dob.Month() && ref.Day() < dob.Day()) {
		years--
	}
	return years
}
