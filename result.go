package ndrvalidator

import (
	"sync"
)

// Result contains the outcome of validating one ClinicalRecord.
// Use Release() to return it to the pool when done.
type Result struct {
	// Valid is true if no blocking issues were found (warnings are allowed
	// unless strict mode marked them blocking for validity).
	Valid bool `json:"valid"`

	// Issues contains all issues in emission order. Callers depend on this
	// ordering; it is part of the contract.
	Issues []Issue `json:"issues,omitempty"`

	// mu protects concurrent access to Issues
	mu sync.Mutex
}

// resultPool holds reusable Result instances.
var resultPool = sync.Pool{
	New: func() any {
		return &Result{
			Issues: make([]Issue, 0, 16),
		}
	},
}

// AcquireResult gets a Result from the pool.
// The result starts as valid with no issues.
func AcquireResult() *Result {
	r := resultPool.Get().(*Result)
	r.Reset()
	return r
}

// Release returns the Result to the pool.
// After calling Release, the Result must not be used.
func (r *Result) Release() {
	if r == nil {
		return
	}
	if cap(r.Issues) <= 1024 {
		resultPool.Put(r)
	}
}

// Reset clears the result for reuse.
func (r *Result) Reset() {
	r.Valid = true
	r.Issues = r.Issues[:0]
}

// AddIssue appends a validation issue.
// This method is thread-safe.
func (r *Result) AddIssue(issue Issue) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Issues = append(r.Issues, issue)
	if issue.IsBlocking() {
		r.Valid = false
	}
}

// AddIssues appends multiple issues, preserving their order.
// This method is thread-safe.
func (r *Result) AddIssues(issues []Issue) {
	if len(issues) == 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.Issues = append(r.Issues, issues...)
	for _, issue := range issues {
		if issue.IsBlocking() {
			r.Valid = false
			break
		}
	}
}

// AddBlocking is a convenience method to append a blocking issue.
func (r *Result) AddBlocking(message string) {
	r.AddIssue(Blocking(message))
}

// AddWarning is a convenience method to append a warning issue.
func (r *Result) AddWarning(message string) {
	r.AddIssue(Warning(message))
}

// HasBlocking returns true if there are any blocking issues.
func (r *Result) HasBlocking() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, issue := range r.Issues {
		if issue.IsBlocking() {
			return true
		}
	}
	return false
}

// HasWarnings returns true if there are any warning issues.
func (r *Result) HasWarnings() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, issue := range r.Issues {
		if issue.IsWarning() {
			return true
		}
	}
	return false
}

// BlockingCount returns the number of blocking issues.
func (r *Result) BlockingCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, issue := range r.Issues {
		if issue.IsBlocking() {
			count++
		}
	}
	return count
}

// WarningCount returns the number of warning issues.
func (r *Result) WarningCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, issue := range r.Issues {
		if issue.IsWarning() {
			count++
		}
	}
	return count
}

// Blocking returns all blocking issues in order.
func (r *Result) Blocking() []Issue {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Issue
	for _, issue := range r.Issues {
		if issue.IsBlocking() {
			out = append(out, issue)
		}
	}
	return out
}

// Warnings returns all warning issues in order.
func (r *Result) Warnings() []Issue {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Issue
	for _, issue := range r.Issues {
		if issue.IsWarning() {
			out = append(out, issue)
		}
	}
	return out
}

// Strings renders all issues in order with their severity markers, suitable
// for direct display.
func (r *Result) Strings() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.Issues))
	for i, issue := range r.Issues {
		out[i] = issue.String()
	}
	return out
}

// Clone creates a copy of the result (not pooled).
func (r *Result) Clone() *Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := &Result{
		Valid:  r.Valid,
		Issues: make([]Issue, len(r.Issues)),
	}
	copy(clone.Issues, r.Issues)
	return clone
}

// NewResult creates a new (non-pooled) result.
// Prefer AcquireResult() for better performance.
func NewResult() *Result {
	return &Result{
		Valid:  true,
		Issues: make([]Issue, 0, 8),
	}
}
