package crud

import (
	"github.com/10021987z/dzilo-sub003/pkg/serrors"
)

// Validator is a pure mapping from a draft to its violations. It holds no
// hidden state, so callers may run it on every edit or only on submit with
// identical results.
type Validator struct {
	rules []Rule
}

func NewValidator(rules ...Rule) *Validator {
	return &Validator{rules: rules}
}

// With returns a new validator with extra rules appended.
func (v *Validator) With(rules ...Rule) *Validator {
	combined := make([]Rule, 0, len(v.rules)+len(rules))
	combined = append(combined, v.rules...)
	combined = append(combined, rules...)
	return &Validator{rules: combined}
}

// Validate runs every rule and collects all violations in a single pass.
// An empty result means the draft is submittable.
func (v *Validator) Validate(d Draft) serrors.ValidationErrors {
	errs := make(serrors.ValidationErrors)
	for _, rule := range v.rules {
		rule(d, errs)
	}
	return errs
}
