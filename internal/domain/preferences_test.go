package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"09:00", 540, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{" 14:30 ", 870, false},
		{"9", 0, true},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		assert.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestPeakWindow_Unset(t *testing.T) {
	var p AttentionPreferences
	_, _, ok := p.PeakWindow()
	assert.False(t, ok)

	p.PeakStart = "09:00"
	_, _, ok = p.PeakWindow()
	assert.False(t, ok, "end missing should disable the window")
}

func TestPeakWindow_Inverted(t *testing.T) {
	p := AttentionPreferences{PeakStart: "12:00", PeakEnd: "09:00"}
	_, _, ok := p.PeakWindow()
	assert.False(t, ok, "inverted window should be treated as unset")
}

func TestPeakWindow_Valid(t *testing.T) {
	p := AttentionPreferences{PeakStart: "09:00", PeakEnd: "12:00"}
	start, end, ok := p.PeakWindow()
	assert.True(t, ok)
	assert.Equal(t, 540, start)
	assert.Equal(t, 720, end)
}

func TestBudgetFor_ClampsNegative(t *testing.T) {
	p := AttentionPreferences{Budgets: map[AttentionCategory]int{CategoryReview: -30}}
	limit, ok := p.BudgetFor(CategoryReview)
	assert.True(t, ok)
	assert.Equal(t, 0, limit)
}

func TestSwitchBudget_Default(t *testing.T) {
	var p AttentionPreferences
	assert.Equal(t, DefaultSwitchLimit, p.SwitchBudget())

	one := 1
	p.SwitchLimit = &one
	assert.Equal(t, 1, p.SwitchBudget())

	neg := -5
	p.SwitchLimit = &neg
	assert.Equal(t, 0, p.SwitchBudget())
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:05", FormatClock(545))
	assert.Equal(t, "00:00", FormatClock(0))
}
