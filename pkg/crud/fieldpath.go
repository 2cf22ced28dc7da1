package crud

import (
	"strings"

	"github.com/10021987z/dzilo-sub003/pkg/serrors"
)

// FieldPath addresses a leaf field within a draft. At most one level of
// nesting is supported ("period.startDate"); anything deeper is rejected.
type FieldPath string

var ErrPathTooDeep = serrors.NewError(
	"CRUD_PATH_TOO_DEEP",
	"field paths deeper than one level are not supported",
	"",
)

var ErrEmptyPath = serrors.NewError(
	"CRUD_EMPTY_PATH",
	"field path must not be empty",
	"",
)

func (p FieldPath) String() string { return string(p) }

// Split breaks the path into its parent and child segments. For a top-level
// path, parent holds the key and nested is false.
func (p FieldPath) Split() (parent, child string, nested bool) {
	s := string(p)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, "", false
}

func (p FieldPath) validate() error {
	s := string(p)
	if s == "" {
		return ErrEmptyPath
	}
	segments := strings.Split(s, ".")
	if len(segments) > 2 {
		return ErrPathTooDeep
	}
	for _, seg := range segments {
		if seg == "" {
			return ErrEmptyPath
		}
	}
	return nil
}
