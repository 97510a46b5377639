package views

// SubForm is one locally-keyed instance of a repeatable nested form (an
// opposing party or witness on the case form). Each instance carries its
// own expand/collapse display flag, owned by the parent form's state.
type SubForm struct {
	Key      int
	Expanded bool
	values   map[string]string
}

// SetField records a field edit on the sub-form.
func (s *SubForm) SetField(name, value string) {
	if s.values == nil {
		s.values = make(map[string]string)
	}
	s.values[name] = value
}

// Field returns the current value of a field.
func (s *SubForm) Field(name string) string { return s.values[name] }

// SubFormList manages the repeatable sub-form instances of a parent form.
type SubFormList struct {
	forms   []*SubForm
	nextKey int
	// isBlank decides whether an instance is skipped at submit time.
	isBlank func(*SubForm) bool
}

// NewSubFormList builds an empty list. isBlank marks instances with no
// data entered; those are silently skipped at submit rather than rejected.
func NewSubFormList(isBlank func(*SubForm) bool) *SubFormList {
	return &SubFormList{isBlank: isBlank}
}

// Add appends a new expanded instance and returns it.
func (l *SubFormList) Add() *SubForm {
	l.nextKey++
	form := &SubForm{Key: l.nextKey, Expanded: true}
	l.forms = append(l.forms, form)
	return form
}

// Remove deletes the instance with the given local key.
func (l *SubFormList) Remove(key int) {
	for i, form := range l.forms {
		if form.Key == key {
			l.forms = append(l.forms[:i], l.forms[i+1:]...)
			return
		}
	}
}

// Toggle flips an instance's expand/collapse display state.
func (l *SubFormList) Toggle(key int) {
	for _, form := range l.forms {
		if form.Key == key {
			form.Expanded = !form.Expanded
			return
		}
	}
}

// All returns every instance in insertion order.
func (l *SubFormList) All() []*SubForm { return l.forms }

// Submittable returns the instances that carry data, in order. Blank
// instances are skipped.
func (l *SubFormList) Submittable() []*SubForm {
	var out []*SubForm
	for _, form := range l.forms {
		if l.isBlank != nil && l.isBlank(form) {
			continue
		}
		out = append(out, form)
	}
	return out
}
