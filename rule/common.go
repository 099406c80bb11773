// Package rule implements the NDR consistency rules. One file per rule
// family; the engine registers them in the order callers observe issues.
package rule

import (
	ndr "github.com/gondr/validator"
)

// present reports whether an optional raw value is set and non-empty. It
// matches the truthiness the legacy rule set applied to raw fields: nil and
// "" are both treated as absent.
func present(p *string) bool {
	return p != nil && *p != ""
}

// text returns the raw value or "" when unset.
func text(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// blocking and warning are shorthand constructors shared by all rules.
var (
	blocking = ndr.Blockingf
	warning  = ndr.Warningf
)
