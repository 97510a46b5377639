package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmDialogFiresOnce(t *testing.T) {
	var dialog ConfirmDialog
	calls := 0

	dialog.Open("Delete contact", "This cannot be undone.", "Ada Lovelace", func() { calls++ })
	assert.True(t, dialog.IsOpen())
	assert.Equal(t, "Ada Lovelace", dialog.ItemName())

	dialog.Confirm()
	assert.Equal(t, 1, calls)
	assert.False(t, dialog.IsOpen())

	// A second confirm on a closed dialog is a no-op
	dialog.Confirm()
	assert.Equal(t, 1, calls)
}

func TestConfirmDialogCancel(t *testing.T) {
	var dialog ConfirmDialog
	calls := 0

	dialog.Open("Delete case", "This cannot be undone.", "Estate of Byron", func() { calls++ })
	dialog.Cancel()

	assert.False(t, dialog.IsOpen())
	assert.Equal(t, 0, calls)

	// Cancel then confirm still never fires the callback
	dialog.Confirm()
	assert.Equal(t, 0, calls)
}

func TestConfirmDialogReopen(t *testing.T) {
	var dialog ConfirmDialog
	first, second := 0, 0

	dialog.Open("Delete", "msg", "first", func() { first++ })
	dialog.Cancel()

	dialog.Open("Delete", "msg", "second", func() { second++ })
	dialog.Confirm()

	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
}
