package form

// DraftMode is either Creating or Editing(target).
// The zero value is Creating; an Editing mode always carries its target id.
type DraftMode struct {
	target string
}

// Creating is the mode of a brand-new draft.
func Creating() DraftMode {
	return DraftMode{}
}

// Editing is the mode of a draft that will replace the note with id target.
// An empty target yields Creating.
func Editing(target string) DraftMode {
	return DraftMode{target: target}
}

// IsEditing reports whether the draft targets an existing note.
func (m DraftMode) IsEditing() bool {
	return m.target != ""
}

// Target returns the id being edited, or "" when creating.
func (m DraftMode) Target() string {
	return m.target
}

func (m DraftMode) String() string {
	if m.IsEditing() {
		return "edit " + m.target
	}
	return "new"
}
