package crud_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/10021987z/dzilo-sub003/pkg/crud"
)

func TestValidator_IsPure(t *testing.T) {
	t.Parallel()
	v := crud.NewValidator(
		crud.Required("firstName", ""),
		crud.EmailShape("email", ""),
		crud.DateOrder("startDate", "endDate", ""),
	)
	d := crud.Draft{
		"firstName": "  ",
		"email":     "nope",
		"startDate": "2024-02-01",
		"endDate":   "2024-01-01",
	}

	first := v.Validate(d)
	second := v.Validate(d)

	assert.Equal(t, first.Fields(), second.Fields())
}

func TestRequired_BlankAndWhitespace(t *testing.T) {
	t.Parallel()
	v := crud.NewValidator(crud.Required("title", ""))

	for _, value := range []string{"", "   ", "\t\n"} {
		errs := v.Validate(crud.Draft{"title": value})
		assert.Contains(t, errs, "title", "value %q must be rejected", value)
	}

	errs := v.Validate(crud.Draft{"title": "Annual review"})
	assert.Empty(t, errs)
}

func TestEmailShape_Permissive(t *testing.T) {
	t.Parallel()
	v := crud.NewValidator(crud.EmailShape("email", ""))

	// Intentionally loose: an "@" and a dot are enough.
	assert.Empty(t, v.Validate(crud.Draft{"email": "a@b.c"}))
	assert.Empty(t, v.Validate(crud.Draft{"email": "weird@but.accepted@x"}))

	assert.Contains(t, v.Validate(crud.Draft{"email": "no-at-sign.com"}), "email")
	assert.Contains(t, v.Validate(crud.Draft{"email": "no-dot@com"}), "email")

	// Blank is Required's job, not the shape check's.
	assert.Empty(t, v.Validate(crud.Draft{"email": ""}))
}

func TestDateOrder_ErrorAttachesToEndField(t *testing.T) {
	t.Parallel()
	v := crud.NewValidator(crud.DateOrder("period.startDate", "period.endDate", ""))

	errs := v.Validate(crud.Draft{
		"period": crud.Draft{
			"startDate": "2024-02-01",
			"endDate":   "2024-01-01",
		},
	})
	assert.Contains(t, errs, "period.endDate")
	assert.NotContains(t, errs, "period.startDate")

	// Equal dates are fine; the rule is strictly end < start.
	errs = v.Validate(crud.Draft{
		"period": crud.Draft{
			"startDate": "2024-01-01",
			"endDate":   "2024-01-01",
		},
	})
	assert.Empty(t, errs)
}

func TestDateOrder_SkipsWhenEitherMissing(t *testing.T) {
	t.Parallel()
	v := crud.NewValidator(crud.DateOrder("startDate", "endDate", ""))

	assert.Empty(t, v.Validate(crud.Draft{"startDate": "2024-02-01"}))
	assert.Empty(t, v.Validate(crud.Draft{"endDate": "2024-01-01"}))
	assert.Empty(t, v.Validate(crud.Draft{"startDate": "garbage", "endDate": "2024-01-01"}))
}

func TestMinLength(t *testing.T) {
	t.Parallel()
	v := crud.NewValidator(crud.MinLength("password", 8, ""))

	assert.Contains(t, v.Validate(crud.Draft{"password": "short"}), "password")
	assert.Empty(t, v.Validate(crud.Draft{"password": "longenough"}))
	// Blank stays Required's responsibility.
	assert.Empty(t, v.Validate(crud.Draft{"password": ""}))
}

func TestFieldsMatch(t *testing.T) {
	t.Parallel()
	v := crud.NewValidator(crud.FieldsMatch("password", "confirmPassword", ""))

	errs := v.Validate(crud.Draft{"password": "Password1", "confirmPassword": "Password2"})
	assert.Contains(t, errs, "confirmPassword")
	assert.NotContains(t, errs, "password")

	assert.Empty(t, v.Validate(crud.Draft{"password": "Password1", "confirmPassword": "Password1"}))
}

func TestRequiredSections(t *testing.T) {
	t.Parallel()
	v := crud.NewValidator(crud.RequiredSections("sections", nil, "title", "content"))

	errs := v.Validate(crud.Draft{
		"sections": []crud.Draft{
			{"title": "Intro", "content": "ok"},
			{"title": "", "content": "ok"},
			{"title": "Numbers", "content": " "},
		},
	})

	assert.Contains(t, errs, "section_1_title")
	assert.Contains(t, errs, "section_2_content")
	assert.Contains(t, errs, "sections", "aggregate flag must be raised")
	assert.NotContains(t, errs, "section_0_title")

	errs = v.Validate(crud.Draft{
		"sections": []crud.Draft{{"title": "Intro", "content": "ok"}},
	})
	assert.Empty(t, errs)
}

func TestValidation_IsExhaustive(t *testing.T) {
	t.Parallel()
	v := crud.NewValidator(
		crud.Required("firstName", ""),
		crud.Required("lastName", ""),
		crud.Required("email", ""),
		crud.EmailShape("email", ""),
		crud.MinLength("password", 8, ""),
	)

	errs := v.Validate(crud.Draft{
		"firstName": "",
		"lastName":  " ",
		"email":     "bad",
		"password":  "short",
	})

	require.Len(t, errs, 4, "all violations collected in one pass")
}

func TestPasswordStrength(t *testing.T) {
	t.Parallel()
	cases := []struct {
		password string
		score    int
	}{
		{"", 0},
		{"abc", 1},
		{"abcdefgh", 2},
		{"Abcdefgh", 3},
		{"Abcdefg1", 4},
		{"Abcdef1!", 5},
		{"PASSWORD1!", 4},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.score, crud.PasswordStrength(tc.password), "password %q", tc.password)
	}
}
