// Package category contains the category link graph model and its
// validation rules: cycle detection over active links, dependency chain
// reporting and the pre-mutation gate for a proposed link. All functions
// are pure over the snapshot they receive and never mutate it.
package category

// ValidationResult aggregates the outcome of a graph validation. Errors
// make the operation fail; warnings are advisory and never block.
type ValidationResult struct {
	IsValid  bool
	Errors   []string
	Warnings []string
}

// NewValidationResult returns a valid, empty result.
func NewValidationResult() ValidationResult {
	return ValidationResult{IsValid: true}
}

// AddError appends an error and marks the result invalid.
func (r *ValidationResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.IsValid = false
}

// AddWarning appends an advisory warning.
func (r *ValidationResult) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// Merge folds another result into this one. The merged result is valid
// only if both were.
func (r *ValidationResult) Merge(other ValidationResult) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	if !other.IsValid {
		r.IsValid = false
	}
}
