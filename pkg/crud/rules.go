package crud

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/10021987z/dzilo-sub003/pkg/serrors"
)

const dateLayout = "2006-01-02"

// Rule inspects a draft and records its violations. Rules never stop the
// pass; validation is exhaustive so the user sees every problem at once.
type Rule func(d Draft, errs serrors.ValidationErrors)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Required fails when the field is empty or whitespace-only.
func Required(path FieldPath, fieldLocaleKey string) Rule {
	return func(d Draft, errs serrors.ValidationErrors) {
		if isBlank(d.String(path)) {
			errs.Merge(serrors.ValidationErrors{
				path.String(): &serrors.FieldError{
					Field:          path.String(),
					Rule:           "required",
					FieldLocaleKey: fieldLocaleKey,
				},
			})
		}
	}
}

// EmailShape is the deliberately permissive address check: must contain "@"
// and a dot. Blank values are left to Required.
func EmailShape(path FieldPath, fieldLocaleKey string) Rule {
	return func(d Draft, errs serrors.ValidationErrors) {
		value := d.String(path)
		if isBlank(value) {
			return
		}
		if !strings.Contains(value, "@") || !strings.Contains(value, ".") {
			errs.Merge(serrors.ValidationErrors{
				path.String(): &serrors.FieldError{
					Field:          path.String(),
					Rule:           "emailshape",
					FieldLocaleKey: fieldLocaleKey,
				},
			})
		}
	}
}

// DateOrder fails when both dates are present and end < start. The error is
// attached to the end field, never the start field.
func DateOrder(start, end FieldPath, endFieldLocaleKey string) Rule {
	return func(d Draft, errs serrors.ValidationErrors) {
		startVal, err1 := time.Parse(dateLayout, d.String(start))
		endVal, err2 := time.Parse(dateLayout, d.String(end))
		if err1 != nil || err2 != nil {
			return
		}
		if endVal.Before(startVal) {
			errs.Merge(serrors.ValidationErrors{
				end.String(): &serrors.FieldError{
					Field:          end.String(),
					Rule:           "dateOrder",
					FieldLocaleKey: endFieldLocaleKey,
				},
			})
		}
	}
}

// MinLength fails when the field is shorter than n characters. Blank values
// are left to Required.
func MinLength(path FieldPath, n int, fieldLocaleKey string) Rule {
	return func(d Draft, errs serrors.ValidationErrors) {
		value := d.String(path)
		if value == "" {
			return
		}
		if len([]rune(value)) < n {
			errs.Merge(serrors.ValidationErrors{
				path.String(): &serrors.FieldError{
					Field:          path.String(),
					Rule:           "min",
					Param:          fmt.Sprint(n),
					FieldLocaleKey: fieldLocaleKey,
				},
			})
		}
	}
}

// FieldsMatch fails when the confirmation field differs from the reference
// field. The error is attached to the confirmation field.
func FieldsMatch(reference, confirmation FieldPath, confirmationLocaleKey string) Rule {
	return func(d Draft, errs serrors.ValidationErrors) {
		if d.String(reference) != d.String(confirmation) {
			errs.Merge(serrors.ValidationErrors{
				confirmation.String(): &serrors.FieldError{
					Field:          confirmation.String(),
					Rule:           "eqfield",
					FieldLocaleKey: confirmationLocaleKey,
				},
			})
		}
	}
}

// RequiredSections validates every item of a variable-length section list:
// each named subfield must be non-blank. Per-item errors are keyed
// "section_<index>_<subfield>"; when any item fails, an aggregate flag is
// raised under the list key so a submit gate can short-circuit cheaply.
func RequiredSections(listKey string, subfieldLocaleKeys map[string]string, subfields ...string) Rule {
	return func(d Draft, errs serrors.ValidationErrors) {
		invalid := false
		for i, section := range d.Sections(listKey) {
			for _, field := range subfields {
				if isBlank(section.String(FieldPath(field))) {
					key := fmt.Sprintf("section_%d_%s", i, field)
					errs.Merge(serrors.ValidationErrors{
						key: &serrors.FieldError{
							Field:          field,
							Rule:           "required",
							FieldLocaleKey: subfieldLocaleKeys[field],
						},
					})
					invalid = true
				}
			}
		}
		if invalid {
			errs.Merge(serrors.ValidationErrors{
				listKey: &serrors.FieldError{
					Field: listKey,
					Rule:  "sectionsInvalid",
				},
			})
		}
	}
}

// PasswordStrength scores a password 0..5 by summing five independent
// checks: length >= 8, an uppercase letter, a lowercase letter, a digit, and
// a symbol. The score feeds a UI meter only; of the five checks only the
// length requirement blocks submission (via MinLength).
func PasswordStrength(password string) int {
	score := 0
	if len([]rune(password)) >= 8 {
		score++
	}
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			if !unicode.IsSpace(r) {
				hasSymbol = true
			}
		}
	}
	for _, ok := range []bool{hasUpper, hasLower, hasDigit, hasSymbol} {
		if ok {
			score++
		}
	}
	return score
}
