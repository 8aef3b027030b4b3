package ui

import (
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-ringclock/internal/config"
	"github.com/tartampluch/go-ringclock/internal/timesource"
)

// TimeEntry is an Entry restricted to HH:MM:SS input.
type TimeEntry struct {
	widget.Entry
}

// NewTimeEntry creates a TimeEntry validated by timesource.ParseHMS.
func NewTimeEntry() *TimeEntry {
	entry := &TimeEntry{}
	entry.ExtendBaseWidget(entry)
	entry.PlaceHolder = config.PlaceholderHMS
	entry.Validator = func(s string) error {
		_, err := timesource.ParseHMS(s)
		return err
	}
	return entry
}

// TypedRune accepts digits and the separator, up to the length of HH:MM:SS.
// Pasted text bypasses this filter and is caught by the Validator.
func (e *TimeEntry) TypedRune(r rune) {
	if len(e.Text) >= config.MaxHMSLength {
		return
	}
	if (r >= '0' && r <= '9') || r == config.HMSSeparator {
		e.Entry.TypedRune(r)
	}
}
