package views

// ConfirmDialog is the parent-controlled confirmation overlay shown before
// destructive actions. The callback can only fire through an explicit
// Confirm, and never twice for one opening.
type ConfirmDialog struct {
	open      bool
	title     string
	message   string
	itemName  string
	onConfirm func()
}

// Open shows the dialog for one pending action.
func (d *ConfirmDialog) Open(title, message, itemName string, onConfirm func()) {
	d.open = true
	d.title = title
	d.message = message
	d.itemName = itemName
	d.onConfirm = onConfirm
}

// IsOpen reports whether the dialog is visible.
func (d *ConfirmDialog) IsOpen() bool { return d.open }

// Title returns the dialog title.
func (d *ConfirmDialog) Title() string { return d.title }

// Message returns the dialog message.
func (d *ConfirmDialog) Message() string { return d.message }

// ItemName returns the display name of the record under confirmation.
func (d *ConfirmDialog) ItemName() string { return d.itemName }

// Confirm fires the pending callback once and closes the dialog. A second
// Confirm is a no-op.
func (d *ConfirmDialog) Confirm() {
	if !d.open || d.onConfirm == nil {
		return
	}
	callback := d.onConfirm
	d.close()
	callback()
}

// Cancel closes the dialog without side effects.
func (d *ConfirmDialog) Cancel() {
	d.close()
}

func (d *ConfirmDialog) close() {
	d.open = false
	d.onConfirm = nil
	d.itemName = ""
}
