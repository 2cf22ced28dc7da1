package crud_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/10021987z/dzilo-sub003/pkg/crud"
)

func contractDefaults() crud.Draft {
	return crud.Draft{
		"employeeName": "",
		"type":         "permanent",
		"period": crud.Draft{
			"startDate": "",
			"endDate":   "",
		},
	}
}

func TestFormModel_SetField_TopLevel(t *testing.T) {
	t.Parallel()
	form := crud.NewFormModel(contractDefaults())

	require.NoError(t, form.SetField("employeeName", "Ada Lovelace"))

	draft := form.Draft()
	assert.Equal(t, "Ada Lovelace", draft.String("employeeName"))
	assert.Equal(t, "permanent", draft.String("type"))
}

func TestFormModel_SetField_NestedPreservesSiblings(t *testing.T) {
	t.Parallel()
	form := crud.NewFormModel(contractDefaults())
	require.NoError(t, form.SetField("period.endDate", "2024-12-31"))

	require.NoError(t, form.SetField("period.startDate", "2024-01-01"))

	draft := form.Draft()
	assert.Equal(t, "2024-01-01", draft.String("period.startDate"))
	assert.Equal(t, "2024-12-31", draft.String("period.endDate"), "sibling must be untouched")
}

func TestFormModel_SetField_RejectsDeepPaths(t *testing.T) {
	t.Parallel()
	form := crud.NewFormModel(contractDefaults())

	err := form.SetField("period.start.day", "01")
	require.ErrorIs(t, err, crud.ErrPathTooDeep)

	err = form.SetField("", "x")
	require.ErrorIs(t, err, crud.ErrEmptyPath)
}

func TestFormModel_SetChecked(t *testing.T) {
	t.Parallel()
	form := crud.NewFormModel(crud.Draft{"isFavorite": false})

	require.NoError(t, form.SetChecked("isFavorite", true))
	assert.True(t, form.Draft().Bool("isFavorite"))

	require.NoError(t, form.SetChecked("isFavorite", false))
	assert.False(t, form.Draft().Bool("isFavorite"))
}

func TestFormModel_Reset(t *testing.T) {
	t.Parallel()
	form := crud.NewFormModel(contractDefaults())
	require.NoError(t, form.SetField("employeeName", "Ada Lovelace"))

	form.Reset(nil)
	assert.Equal(t, "", form.Draft().String("employeeName"), "create-mode reset restores defaults")

	form.Reset(crud.Draft{"employeeName": "Grace Hopper"})
	assert.Equal(t, "Grace Hopper", form.Draft().String("employeeName"), "edit-mode reset uses the seed")
}

func TestFormModel_DraftIsSnapshot(t *testing.T) {
	t.Parallel()
	form := crud.NewFormModel(contractDefaults())

	snapshot := form.Draft()
	snapshot["employeeName"] = "mutated"

	assert.Equal(t, "", form.Draft().String("employeeName"))
}

func TestDraft_Values_DottedAndIndexedKeys(t *testing.T) {
	t.Parallel()
	d := crud.Draft{
		"title":      "Q1 report",
		"isArchived": false,
		"period": crud.Draft{
			"startDate": "2024-01-01",
		},
		"sections": []crud.Draft{
			{"title": "Intro", "content": "..."},
			{"title": "Numbers", "content": "..."},
		},
	}

	values := d.Values()
	assert.Equal(t, "Q1 report", values.Get("title"))
	assert.Equal(t, "false", values.Get("isArchived"))
	assert.Equal(t, "2024-01-01", values.Get("period.startDate"))
	assert.Equal(t, "Intro", values.Get("sections[0].title"))
	assert.Equal(t, "Numbers", values.Get("sections[1].title"))
}
