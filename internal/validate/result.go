package validate

import "fmt"

// Result aggregates the outcome of a validation pass. Every rule in the pass
// is evaluated, so a failing Result carries one violation per broken rule
// rather than just the first.
type Result struct {
	violations []string
}

// Ok reports whether the pass found no violations.
func (r Result) Ok() bool {
	return len(r.violations) == 0
}

// Violations returns the collected violation messages in evaluation order.
func (r Result) Violations() []string {
	out := make([]string, len(r.violations))
	copy(out, r.violations)
	return out
}

// Merge combines two results, preserving evaluation order.
func (r Result) Merge(other Result) Result {
	if other.Ok() {
		return r
	}
	merged := Result{violations: make([]string, 0, len(r.violations)+len(other.violations))}
	merged.violations = append(merged.violations, r.violations...)
	merged.violations = append(merged.violations, other.violations...)
	return merged
}

func (r *Result) addf(format string, args ...any) {
	r.violations = append(r.violations, fmt.Sprintf(format, args...))
}
