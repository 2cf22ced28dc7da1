package crud

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/10021987z/dzilo-sub003/pkg/serrors"
)

// Entity is anything a ListModel can hold.
type Entity interface {
	ID() uuid.UUID
}

// SortDirection of a ListModel ordering.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

var ErrUnknownToggle = serrors.NewError("CRUD_UNKNOWN_TOGGLE", "unknown toggle field", "")
var ErrNotInList = serrors.NewError("CRUD_NOT_IN_LIST", "entity not found in list", "")

// Query is an AND-combination of independent predicates. Zero values are
// always-true for their dimension.
type Query struct {
	// Search is matched case-insensitively as a substring of every declared
	// searchable field.
	Search string
	// Fuzzy switches Search to normalized fuzzy matching.
	Fuzzy bool
	// Categories maps a registered dimension name to the exact value the
	// entity must have. Empty values are skipped.
	Categories map[string]string
}

type sortKeyFunc[T Entity] func(a, b T) int

// ListModel is the canonical in-memory collection of one entity type:
// ordered, unique by id, insertion order preserved for ties.
type ListModel[T Entity] struct {
	mu       sync.RWMutex
	items    []T
	searches []func(T) string
	sortKeys map[string]sortKeyFunc[T]
	cats     map[string]func(T) string
	toggles  map[string]func(T) T

	sortKey string
	sortDir SortDirection
}

type ListOption[T Entity] func(*ListModel[T])

// WithSearchFields declares the string fields free-text search runs over.
func WithSearchFields[T Entity](fields ...func(T) string) ListOption[T] {
	return func(m *ListModel[T]) {
		m.searches = append(m.searches, fields...)
	}
}

// WithCategory declares a categorical filter dimension.
func WithCategory[T Entity](name string, value func(T) string) ListOption[T] {
	return func(m *ListModel[T]) {
		m.cats[name] = value
	}
}

var listCollator = collate.New(language.English, collate.IgnoreCase)
var collatorMu sync.Mutex

// WithStringSortKey declares a locale-aware string sort key.
func WithStringSortKey[T Entity](name string, value func(T) string) ListOption[T] {
	return func(m *ListModel[T]) {
		m.sortKeys[name] = func(a, b T) int {
			collatorMu.Lock()
			defer collatorMu.Unlock()
			return listCollator.CompareString(value(a), value(b))
		}
	}
}

// WithDateSortKey declares a timestamp sort key.
func WithDateSortKey[T Entity](name string, value func(T) time.Time) ListOption[T] {
	return func(m *ListModel[T]) {
		m.sortKeys[name] = func(a, b T) int {
			return value(a).Compare(value(b))
		}
	}
}

// WithNumericSortKey declares a numeric sort key.
func WithNumericSortKey[T Entity](name string, value func(T) float64) ListOption[T] {
	return func(m *ListModel[T]) {
		m.sortKeys[name] = func(a, b T) int {
			switch {
			case value(a) < value(b):
				return -1
			case value(a) > value(b):
				return 1
			default:
				return 0
			}
		}
	}
}

// WithToggle declares a boolean field that Toggle can flip in place.
func WithToggle[T Entity](name string, flip func(T) T) ListOption[T] {
	return func(m *ListModel[T]) {
		m.toggles[name] = flip
	}
}

func NewListModel[T Entity](opts ...ListOption[T]) *ListModel[T] {
	m := &ListModel[T]{
		sortKeys: map[string]sortKeyFunc[T]{},
		cats:     map[string]func(T) string{},
		toggles:  map[string]func(T) T{},
		sortDir:  SortAsc,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// All returns the collection in its current order.
func (m *ListModel[T]) All() []T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]T, len(m.items))
	copy(out, m.items)
	return out
}

func (m *ListModel[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

func (m *ListModel[T]) Get(id uuid.UUID) (T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, item := range m.items {
		if item.ID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Filtered applies the query's predicates; an empty query returns the full
// collection in its current order. Filtering never mutates the model, so
// re-applying the same query is idempotent.
func (m *ListModel[T]) Filtered(q Query) []T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]T, 0, len(m.items))
	for _, item := range m.items {
		if m.matches(item, q) {
			out = append(out, item)
		}
	}
	return out
}

func (m *ListModel[T]) matches(item T, q Query) bool {
	for name, want := range q.Categories {
		if want == "" {
			continue
		}
		value, ok := m.cats[name]
		if !ok {
			continue
		}
		if value(item) != want {
			return false
		}
	}

	search := strings.TrimSpace(q.Search)
	if search == "" {
		return true
	}
	for _, field := range m.searches {
		haystack := field(item)
		if q.Fuzzy {
			if fuzzy.MatchNormalizedFold(search, haystack) {
				return true
			}
			continue
		}
		if strings.Contains(strings.ToLower(haystack), strings.ToLower(search)) {
			return true
		}
	}
	return false
}

// SortBy reorders the collection by a registered key. The sort is stable.
// Re-selecting the current key without an explicit direction flips the
// direction; selecting a new key resets to ascending.
func (m *ListModel[T]) SortBy(key string, direction ...SortDirection) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cmp, ok := m.sortKeys[key]
	if !ok {
		return ErrNotInList.WithDetail("no sort key %q", key)
	}

	switch {
	case len(direction) > 0:
		m.sortDir = direction[0]
	case m.sortKey == key:
		if m.sortDir == SortAsc {
			m.sortDir = SortDesc
		} else {
			m.sortDir = SortAsc
		}
	default:
		m.sortDir = SortAsc
	}
	m.sortKey = key

	dir := 1
	if m.sortDir == SortDesc {
		dir = -1
	}
	sort.SliceStable(m.items, func(i, j int) bool {
		return dir*cmp(m.items[i], m.items[j]) < 0
	})
	return nil
}

// SortState reports the active key and direction.
func (m *ListModel[T]) SortState() (string, SortDirection) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sortKey, m.sortDir
}

// Upsert replaces the entity with the same id in place, or appends it.
func (m *ListModel[T]) Upsert(entity T) T {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, item := range m.items {
		if item.ID() == entity.ID() {
			m.items[i] = entity
			return entity
		}
	}
	m.items = append(m.items, entity)
	return entity
}

// Remove deletes the entity by id. No cascading side effects.
func (m *ListModel[T]) Remove(id uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, item := range m.items {
		if item.ID() == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true
		}
	}
	return false
}

// Toggle flips a registered boolean field in place and returns the updated
// entity. Toggling twice restores the original state.
func (m *ListModel[T]) Toggle(id uuid.UUID, field string) (T, error) {
	var zero T
	flip, ok := m.toggles[field]
	if !ok {
		return zero, ErrUnknownToggle.WithDetail("%q", field)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, item := range m.items {
		if item.ID() == id {
			m.items[i] = flip(item)
			return m.items[i], nil
		}
	}
	return zero, ErrNotInList
}
