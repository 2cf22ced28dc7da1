package crud

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Draft is the in-progress, not-yet-committed value of an entity being
// created or edited. Nested groups are stored as child drafts; repeated
// sections as []Draft. A draft lives only for the duration of one open form
// lifecycle and is discarded on cancel.
type Draft map[string]any

// Clone deep-copies the draft one nesting level down, which is the maximum
// depth a FieldPath can address.
func (d Draft) Clone() Draft {
	if d == nil {
		return Draft{}
	}
	out := make(Draft, len(d))
	for k, v := range d {
		switch val := v.(type) {
		case Draft:
			out[k] = val.Clone()
		case map[string]any:
			out[k] = Draft(val).Clone()
		case []Draft:
			sections := make([]Draft, len(val))
			for i, s := range val {
				sections[i] = s.Clone()
			}
			out[k] = sections
		default:
			out[k] = v
		}
	}
	return out
}

// Get resolves a field path against the draft.
func (d Draft) Get(path FieldPath) (any, bool) {
	parent, child, nested := path.Split()
	if !nested {
		v, ok := d[parent]
		return v, ok
	}
	group, ok := d.group(parent)
	if !ok {
		return nil, false
	}
	v, ok := group[child]
	return v, ok
}

// String returns the field as a trimmed-preserving string; non-strings are
// formatted, absent fields yield "".
func (d Draft) String(path FieldPath) string {
	v, ok := d.Get(path)
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case time.Time:
		return s.Format("2006-01-02")
	default:
		return fmt.Sprint(v)
	}
}

// Bool reads a checkbox-backed field; absent or non-bool fields are false.
func (d Draft) Bool(path FieldPath) bool {
	v, ok := d.Get(path)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// Sections returns the repeated-section list stored under key, or nil.
func (d Draft) Sections(key string) []Draft {
	v, ok := d[key]
	if !ok {
		return nil
	}
	sections, _ := v.([]Draft)
	return sections
}

func (d Draft) group(key string) (Draft, bool) {
	v, ok := d[key]
	if !ok {
		return nil, false
	}
	switch g := v.(type) {
	case Draft:
		return g, true
	case map[string]any:
		return Draft(g), true
	default:
		return nil, false
	}
}

// Values renders the draft as url.Values with dotted keys
// ("period.startDate") and indexed section keys ("sections[0].title") so it
// can be decoded into a typed DTO with go-playground/form.
func (d Draft) Values() url.Values {
	values := url.Values{}
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		switch v := d[k].(type) {
		case Draft:
			encodeGroup(values, k, v)
		case map[string]any:
			encodeGroup(values, k, Draft(v))
		case []Draft:
			for i, section := range v {
				encodeGroup(values, fmt.Sprintf("%s[%d]", k, i), section)
			}
		default:
			values.Set(k, encodeScalar(v))
		}
	}
	return values
}

func encodeGroup(values url.Values, prefix string, group Draft) {
	keys := make([]string, 0, len(group))
	for k := range group {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		values.Set(prefix+"."+k, encodeScalar(group[k]))
	}
}

func encodeScalar(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format("2006-01-02")
	default:
		return strings.TrimSpace(fmt.Sprint(val))
	}
}
