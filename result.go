package yangvalidator

import (
	"sync"
)

// Result contains the outcome of validating one data tree.
// Use Release() to return it to the pool when done.
type Result struct {
	// Valid is true if no error issues were found.
	Valid bool `json:"valid"`

	// Issues contains all validation issues found.
	Issues []Issue `json:"issues,omitempty"`

	// JobID is set when using batch validation to correlate results.
	JobID string `json:"jobId,omitempty"`

	// Op is the operation the tree was validated as.
	Op Op `json:"op"`

	// Nodes is the number of data nodes visited.
	Nodes int `json:"nodes"`

	// Dropped is the number of redundant filter nodes silently removed
	// from the tree (filter mode only).
	Dropped int `json:"dropped,omitempty"`

	// Deferred is the number of checks handed to the resolver after the
	// walk (references and when/must conditions).
	Deferred int `json:"deferred,omitempty"`

	// mu protects concurrent access to Issues.
	mu sync.Mutex
}

// resultPool holds reusable Result instances.
var resultPool = sync.Pool{
	New: func() any {
		return &Result{
			Issues: make([]Issue, 0, 8),
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
	// Don't return results with oversized issue slices
	if cap(r.Issues) <= 256 {
		resultPool.Put(r)
	}
}

// Reset clears the result for reuse.
func (r *Result) Reset() {
	r.Valid = true
	r.Issues = r.Issues[:0]
	r.JobID = ""
	r.Op = OpNormal
	r.Nodes = 0
	r.Dropped = 0
	r.Deferred = 0
}

// AddIssue adds a validation issue to the result.
// This method is thread-safe.
func (r *Result) AddIssue(issue Issue) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Issues = append(r.Issues, issue)
	if issue.IsError() {
		r.Valid = false
	}
}

// AddIssues adds multiple issues to the result.
// This method is thread-safe.
func (r *Result) AddIssues(issues []Issue) {
	if len(issues) == 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.Issues = append(r.Issues, issues...)
	for _, issue := range issues {
		if issue.IsError() {
			r.Valid = false
			break
		}
	}
}

// HasErrors returns true if the result contains at least one error issue.
func (r *Result) HasErrors() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, issue := range r.Issues {
		if issue.IsError() {
			return true
		}
	}
	return false
}

// Errors returns the error issues only.
func (r *Result) Errors() []Issue {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []Issue
	for _, issue := range r.Issues {
		if issue.IsError() {
			errs = append(errs, issue)
		}
	}
	return errs
}
