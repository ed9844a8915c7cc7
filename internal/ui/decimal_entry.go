package ui

import (
	"strings"

	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// DecimalEntry is a custom Entry widget for signed decimal input such as
// "-9.5". It embeds widget.Entry to inherit all standard behavior.
type DecimalEntry struct {
	widget.Entry
}

// NewDecimalEntry creates a new instance of DecimalEntry.
func NewDecimalEntry() *DecimalEntry {
	entry := &DecimalEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedRune intercepts text input events.
// It allows digits, a single decimal point, and a single leading minus.
func (e *DecimalEntry) TypedRune(r rune) {
	switch {
	case r >= '0' && r <= '9':
		e.Entry.TypedRune(r)
	case r == '.' && !strings.ContainsRune(e.Entry.Text, '.'):
		e.Entry.TypedRune(r)
	case r == '-' && e.CursorColumn == 0 && !strings.ContainsRune(e.Entry.Text, '-'):
		e.Entry.TypedRune(r)
	}
	// Anything else is ignored.
	// Note: pasted text bypasses TypedRune; the Validator attached by the
	// add form catches that case.
}

// Keyboard overrides the default keyboard type.
// This ensures that on mobile devices, a numeric keypad is shown.
func (e *DecimalEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}
