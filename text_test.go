package datalist_test

import (
	"slices"
	"testing"

	"github.com/go-theft-auto/datalist"
)

var unit = datalist.FixedMeasurer{CharWidth: 1, Height: 10}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"empty", "", 10, []string{""}},
		{"fits", "one two", 10, []string{"one two"}},
		{"words", "one two three", 8, []string{"one two", "three"}},
		{"newlines", "a\n\nb", 10, []string{"a", "", "b"}},
		{"long word", "abcdefghij k", 4, []string{"abcd", "efgh", "ij k"}},
		{"no width", "a b\nc", 0, []string{"a b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := datalist.WrapText(unit, tt.text, tt.width); !slices.Equal(got, tt.want) {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestWrapKeepsGraphemes(t *testing.T) {
	// Each flag is one cluster of two runes.
	got := datalist.WrapText(unit, "\U0001F1E9\U0001F1EA\U0001F1EB\U0001F1F7\U0001F1EE\U0001F1F9", 2)
	want := []string{"\U0001F1E9\U0001F1EA\U0001F1EB\U0001F1F7", "\U0001F1EE\U0001F1F9"}
	if !slices.Equal(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestWrappedHeight(t *testing.T) {
	if h := datalist.WrappedHeight(unit, "one two three", 8); h != 20 {
		t.Errorf("expected 20, got %d", h)
	}
}

func TestTruncateText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"truncated", 6, "trun.."},
		{"ab", 0, ""},
		{"abcdef", 2, ""},
		{"two\nlines", 20, "two.."},
		{"ae\u0301zzz", 4, "ae\u0301.."},
	}
	for _, tt := range tests {
		if got := datalist.TruncateText(unit, tt.text, tt.width); got != tt.want {
			t.Errorf("%q at %d: expected %q, got %q", tt.text, tt.width, tt.want, got)
		}
	}
}

func TestFits(t *testing.T) {
	if !datalist.Fits(unit, "abc", 3) || datalist.Fits(unit, "abcd", 3) {
		t.Error("width check is off")
	}
	if datalist.Fits(unit, "a\nb", 10) {
		t.Error("multi-line text never fits one line")
	}
}

func TestFixedMeasurerDefaults(t *testing.T) {
	var m datalist.FixedMeasurer
	if m.LineHeight() != 13 || m.TextWidth("ab") != 14 {
		t.Errorf("expected 7x13 defaults, got %d/%d", m.TextWidth("ab"), m.LineHeight())
	}
}
