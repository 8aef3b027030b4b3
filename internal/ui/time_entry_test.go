package ui_test

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-ringclock/internal/ui"
)

func TestTimeEntry_TypedRune(t *testing.T) {
	entry := ui.NewTimeEntry()
	window := test.NewWindow(entry)
	defer window.Close()

	tests := []struct {
		name     string
		input    rune
		accepted bool
	}{
		{"Digit_Zero", '0', true},
		{"Digit_Nine", '9', true},
		{"Separator", ':', true},
		{"Letter_a", 'a', false},
		{"Symbol_Dash", '-', false},
		{"Symbol_Dot", '.', false},
		{"Symbol_Space", ' ', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry.SetText("")
			test.Type(entry, string(tt.input))

			if tt.accepted {
				assert.Equal(t, string(tt.input), entry.Text)
			} else {
				assert.Empty(t, entry.Text)
			}
		})
	}
}

func TestTimeEntry_StopsAtFullLength(t *testing.T) {
	entry := ui.NewTimeEntry()
	window := test.NewWindow(entry)
	defer window.Close()

	test.Type(entry, "12:34:567")
	assert.Equal(t, "12:34:56", entry.Text)
}

func TestTimeEntry_Validator(t *testing.T) {
	entry := ui.NewTimeEntry()

	entry.SetText("23:59:59")
	assert.NoError(t, entry.Validate())

	// SetText bypasses the rune filter; validation still rejects it.
	entry.SetText("25:00:00")
	assert.Error(t, entry.Validate())

	entry.SetText("abc")
	assert.Error(t, entry.Validate())
}
