package views

import "errors"

// FormState is the lifecycle of a form view.
type FormState int

const (
	// FormFetching applies to edit mode while the record loads.
	FormFetching FormState = iota
	// FormReady accepts field edits and a submit.
	FormReady
	// FormSubmitting disables the submit control; a second submit is a no-op.
	FormSubmitting
	// FormSucceeded means the insert/update landed; navigate back to the list.
	FormSucceeded
	// FormFailed keeps the entered values so nothing is lost on a failed submit.
	FormFailed
	// FormAborted means the edit-mode fetch failed; redirect to the list
	// instead of rendering a broken form.
	FormAborted
)

// ErrRequiredFieldMissing rejects a submit before any store call is made.
var ErrRequiredFieldMissing = errors.New("required field is empty")

// ErrSubmitInProgress rejects a second submit while one is in flight.
var ErrSubmitInProgress = errors.New("submit already in progress")

// Submitter persists the normalized field values: exactly one insert
// (create mode) or update (edit mode) per successful submit. Optional
// blanks arrive as nil.
type Submitter func(values map[string]*string) error

// FormView is the state machine behind a create/edit screen. Field state
// is a flat name → value map; required fields block submission client-side
// so an incomplete form never reaches the store.
type FormView struct {
	editMode bool
	recordID string

	state    FormState
	values   map[string]string
	required []string
	err      error
}

// NewCreateForm starts a blank create-mode form.
func NewCreateForm(required ...string) *FormView {
	return &FormView{
		state:    FormReady,
		values:   make(map[string]string),
		required: required,
	}
}

// NewEditForm starts an edit-mode form in the Fetching state; the caller
// resolves it with RecordFetched or FetchFailed.
func NewEditForm(recordID string, required ...string) *FormView {
	return &FormView{
		editMode: true,
		recordID: recordID,
		state:    FormFetching,
		values:   make(map[string]string),
		required: required,
	}
}

// State returns the current lifecycle state.
func (f *FormView) State() FormState { return f.state }

// Err returns the last submit or fetch failure.
func (f *FormView) Err() error { return f.err }

// EditMode reports whether the form updates an existing record.
func (f *FormView) EditMode() bool { return f.editMode }

// RecordID returns the edited record's identifier, empty in create mode.
func (f *FormView) RecordID() string { return f.recordID }

// RecordFetched populates the fields from the loaded record and makes the
// form interactive.
func (f *FormView) RecordFetched(values map[string]string) {
	if f.state != FormFetching {
		return
	}
	for k, v := range values {
		f.values[k] = v
	}
	f.state = FormReady
}

// FetchFailed aborts an edit form whose record could not be loaded.
func (f *FormView) FetchFailed(err error) {
	if f.state != FormFetching {
		return
	}
	f.err = err
	f.state = FormAborted
}

// SetField records a field edit.
func (f *FormView) SetField(name, value string) {
	if f.state != FormReady && f.state != FormFailed {
		return
	}
	f.values[name] = value
	if f.state == FormFailed {
		f.state = FormReady
	}
}

// Field returns the current value of a field.
func (f *FormView) Field(name string) string { return f.values[name] }

// Values returns a copy of the current field state.
func (f *FormView) Values() map[string]string {
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// Submit validates required fields, normalizes blank optional values to
// nil, and issues exactly one store call. On failure the entered values
// stay intact; on success the caller navigates back to the list view.
func (f *FormView) Submit(persist Submitter) error {
	switch f.state {
	case FormSubmitting:
		return ErrSubmitInProgress
	case FormReady, FormFailed:
		// fall through
	default:
		return errors.New("form is not ready to submit")
	}

	for _, name := range f.required {
		if f.values[name] == "" {
			return ErrRequiredFieldMissing
		}
	}

	f.state = FormSubmitting

	normalized := make(map[string]*string, len(f.values))
	for name, value := range f.values {
		if value == "" {
			normalized[name] = nil
			continue
		}
		v := value
		normalized[name] = &v
	}

	if err := persist(normalized); err != nil {
		f.err = err
		f.state = FormFailed
		return err
	}

	f.err = nil
	f.state = FormSucceeded
	return nil
}
