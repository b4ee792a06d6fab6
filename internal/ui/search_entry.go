package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// SearchEntry is a single-line Entry with a clear button.
// Escape and the clear button both empty the field and fire OnCleared once.
type SearchEntry struct {
	widget.Entry

	// OnCleared is called after the field has been cleared by the user.
	OnCleared func()
}

// NewSearchEntry creates a new instance of SearchEntry.
func NewSearchEntry() *SearchEntry {
	entry := &SearchEntry{}
	entry.ExtendBaseWidget(entry)
	entry.ActionItem = widget.NewButtonWithIcon("", theme.CancelIcon(), entry.Clear)
	return entry
}

// Clear empties the field without going through OnChanged, then fires OnCleared.
func (e *SearchEntry) Clear() {
	onChanged := e.OnChanged
	e.OnChanged = nil
	e.SetText("")
	e.OnChanged = onChanged

	if e.OnCleared != nil {
		e.OnCleared()
	}
}

// TypedKey intercepts Escape; every other key keeps the Entry behavior.
func (e *SearchEntry) TypedKey(key *fyne.KeyEvent) {
	if key.Name == fyne.KeyEscape {
		e.Clear()
		return
	}
	e.Entry.TypedKey(key)
}

// Keyboard requests a single-line keyboard on mobile devices.
func (e *SearchEntry) Keyboard() mobile.KeyboardType {
	return mobile.SingleLineKeyboard
}
