package crud_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/10021987z/dzilo-sub003/pkg/crud"
)

type docTemplate struct {
	id         uuid.UUID
	name       string
	category   string
	isFavorite bool
	createdAt  time.Time
}

func (d docTemplate) ID() uuid.UUID { return d.id }

func newTemplateList(items ...docTemplate) *crud.ListModel[docTemplate] {
	list := crud.NewListModel(
		crud.WithSearchFields(func(d docTemplate) string { return d.name }),
		crud.WithCategory("category", func(d docTemplate) string { return d.category }),
		crud.WithStringSortKey("name", func(d docTemplate) string { return d.name }),
		crud.WithDateSortKey("createdAt", func(d docTemplate) time.Time { return d.createdAt }),
		crud.WithToggle("isFavorite", func(d docTemplate) docTemplate {
			d.isFavorite = !d.isFavorite
			return d
		}),
	)
	for _, item := range items {
		list.Upsert(item)
	}
	return list
}

func sampleTemplates() []docTemplate {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return []docTemplate{
		{id: uuid.New(), name: "Offer letter", category: "hr", createdAt: base},
		{id: uuid.New(), name: "NDA agreement", category: "legal", createdAt: base.Add(24 * time.Hour)},
		{id: uuid.New(), name: "Abc onboarding", category: "hr", createdAt: base.Add(48 * time.Hour)},
	}
}

func names(items []docTemplate) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.name
	}
	return out
}

func TestListModel_EmptyQueryReturnsAllInOrder(t *testing.T) {
	t.Parallel()
	items := sampleTemplates()
	list := newTemplateList(items...)

	got := list.Filtered(crud.Query{Search: "", Categories: map[string]string{"category": ""}})

	assert.Equal(t, names(items), names(got))
}

func TestListModel_SubstringFilterIsExactAndIdempotent(t *testing.T) {
	t.Parallel()
	list := newTemplateList(sampleTemplates()...)

	first := list.Filtered(crud.Query{Search: "abc"})
	require.Equal(t, []string{"Abc onboarding"}, names(first))

	second := list.Filtered(crud.Query{Search: "abc"})
	assert.Equal(t, names(first), names(second))
}

func TestListModel_CategoricalAndSearchPredicatesCombineWithAnd(t *testing.T) {
	t.Parallel()
	list := newTemplateList(sampleTemplates()...)

	got := list.Filtered(crud.Query{
		Search:     "o",
		Categories: map[string]string{"category": "hr"},
	})

	assert.Equal(t, []string{"Offer letter", "Abc onboarding"}, names(got))
}

func TestListModel_FuzzySearch(t *testing.T) {
	t.Parallel()
	list := newTemplateList(sampleTemplates()...)

	got := list.Filtered(crud.Query{Search: "ndaag", Fuzzy: true})

	assert.Equal(t, []string{"NDA agreement"}, names(got))
}

func TestListModel_SortBySameKeySameDirectionIsNoOp(t *testing.T) {
	t.Parallel()
	list := newTemplateList(sampleTemplates()...)

	require.NoError(t, list.SortBy("name", crud.SortAsc))
	first := names(list.All())

	require.NoError(t, list.SortBy("name", crud.SortAsc))
	assert.Equal(t, first, names(list.All()))
	assert.Equal(t, []string{"Abc onboarding", "NDA agreement", "Offer letter"}, first)
}

func TestListModel_SortByRepeatWithoutDirectionFlips(t *testing.T) {
	t.Parallel()
	list := newTemplateList(sampleTemplates()...)

	require.NoError(t, list.SortBy("name"))
	key, dir := list.SortState()
	assert.Equal(t, "name", key)
	assert.Equal(t, crud.SortAsc, dir)

	require.NoError(t, list.SortBy("name"))
	_, dir = list.SortState()
	assert.Equal(t, crud.SortDesc, dir)
	assert.Equal(t, []string{"Offer letter", "NDA agreement", "Abc onboarding"}, names(list.All()))

	// Choosing a new key resets to ascending.
	require.NoError(t, list.SortBy("createdAt"))
	_, dir = list.SortState()
	assert.Equal(t, crud.SortAsc, dir)
}

func TestListModel_SortByUnknownKey(t *testing.T) {
	t.Parallel()
	list := newTemplateList(sampleTemplates()...)
	assert.Error(t, list.SortBy("salary"))
}

func TestListModel_UpsertReplacesById(t *testing.T) {
	t.Parallel()
	items := sampleTemplates()
	list := newTemplateList(items...)

	renamed := items[1]
	renamed.name = "NDA agreement v2"
	list.Upsert(renamed)

	assert.Equal(t, 3, list.Len())
	got, ok := list.Get(items[1].id)
	require.True(t, ok)
	assert.Equal(t, "NDA agreement v2", got.name)
	// Replacement happens in place, not by re-append.
	assert.Equal(t, []string{"Offer letter", "NDA agreement v2", "Abc onboarding"}, names(list.All()))
}

func TestListModel_Remove(t *testing.T) {
	t.Parallel()
	items := sampleTemplates()
	list := newTemplateList(items...)

	assert.True(t, list.Remove(items[0].id))
	assert.False(t, list.Remove(items[0].id))
	assert.Equal(t, 2, list.Len())
}

func TestListModel_ToggleTwiceIsInvolution(t *testing.T) {
	t.Parallel()
	items := sampleTemplates()
	list := newTemplateList(items...)

	toggled, err := list.Toggle(items[0].id, "isFavorite")
	require.NoError(t, err)
	assert.True(t, toggled.isFavorite)

	restored, err := list.Toggle(items[0].id, "isFavorite")
	require.NoError(t, err)
	assert.Equal(t, items[0].isFavorite, restored.isFavorite)

	_, err = list.Toggle(items[0].id, "isArchived")
	assert.Error(t, err)

	_, err = list.Toggle(uuid.New(), "isFavorite")
	assert.Error(t, err)
}
