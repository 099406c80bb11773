package ndrvalidator

import "fmt"

// Severity classifies a validation issue.
type Severity string

const (
	// SeverityBlocking indicates a defect that blocks repository acceptance.
	SeverityBlocking Severity = "blocking"
	// SeverityWarning indicates a recoverable data-quality problem, such as
	// an unparsable date or a non-numeric value.
	SeverityWarning Severity = "warning"
)

// Marker returns the display prefix used for this severity.
func (s Severity) Marker() string {
	if s == SeverityWarning {
		return "⚠️"
	}
	return "❌"
}

// IsValid returns true if this is a known severity.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityBlocking, SeverityWarning:
		return true
	default:
		return false
	}
}

// Issue is a single validation finding. The Message carries no severity
// marker; String renders the display form.
type Issue struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// IsBlocking returns true if this issue blocks acceptance.
func (i Issue) IsBlocking() bool {
	return i.Severity == SeverityBlocking
}

// IsWarning returns true if this is a warning.
func (i Issue) IsWarning() bool {
	return i.Severity == SeverityWarning
}

// String returns the display form, e.g. "❌ 2024-01-10: TBStatus is missing."
func (i Issue) String() string {
	return i.Severity.Marker() + " " + i.Message
}

// Blocking creates a blocking issue.
func Blocking(message string) Issue {
	return Issue{Severity: SeverityBlocking, Message: message}
}

// Blockingf creates a blocking issue with a formatted message.
func Blockingf(format string, args ...any) Issue {
	return Issue{Severity: SeverityBlocking, Message: fmt.Sprintf(format, args...)}
}

// Warning creates a warning issue.
func Warning(message string) Issue {
	return Issue{Severity: SeverityWarning, Message: message}
}

// Warningf creates a warning issue with a formatted message.
func Warningf(format string, args ...any) Issue {
	return Issue{Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)}
}
