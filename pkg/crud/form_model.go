package crud

// FormModel owns the draft of one entity being created or edited. Field
// edits never touch unrelated fields: a nested write replaces only the
// addressed child and preserves its siblings.
type FormModel struct {
	defaults Draft
	draft    Draft
}

// NewFormModel starts a create-mode form whose draft is seeded from the
// entity's declared default shape.
func NewFormModel(defaults Draft) *FormModel {
	return &FormModel{
		defaults: defaults.Clone(),
		draft:    defaults.Clone(),
	}
}

// NewEditFormModel starts an edit-mode form seeded from an existing entity's
// snapshot. Defaults are still kept for a later create-mode Reset.
func NewEditFormModel(defaults, seed Draft) *FormModel {
	return &FormModel{
		defaults: defaults.Clone(),
		draft:    seed.Clone(),
	}
}

// SetField writes a single field. For a one-level nested path the parent
// group is created on demand.
func (m *FormModel) SetField(path FieldPath, value any) error {
	if err := path.validate(); err != nil {
		return err
	}
	parent, child, nested := path.Split()
	if !nested {
		m.draft[parent] = value
		return nil
	}
	group, ok := m.draft.group(parent)
	if !ok {
		group = Draft{}
		m.draft[parent] = group
	}
	group[child] = value
	return nil
}

// SetChecked is the checkbox specialization of SetField.
func (m *FormModel) SetChecked(path FieldPath, checked bool) error {
	return m.SetField(path, checked)
}

// SetSections replaces the repeated-section list stored under key.
func (m *FormModel) SetSections(key string, sections []Draft) {
	copied := make([]Draft, len(sections))
	for i, s := range sections {
		copied[i] = s.Clone()
	}
	m.draft[key] = copied
}

// Reset restores the draft to the supplied seed (edit mode) or, when seed is
// nil, to the declared defaults (create mode).
func (m *FormModel) Reset(seed Draft) {
	if seed == nil {
		m.draft = m.defaults.Clone()
		return
	}
	m.draft = seed.Clone()
}

// Draft returns a snapshot of the current draft. Mutating the snapshot does
// not affect the form.
func (m *FormModel) Draft() Draft {
	return m.draft.Clone()
}
