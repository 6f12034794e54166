package term

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/datalist"
)

func TestTeaKey(t *testing.T) {
	tests := []struct {
		chord datalist.KeyChord
		want  string
	}{
		{datalist.KeyChord{Key: datalist.KeyPageDown}, "pgdown"},
		{datalist.KeyChord{Key: datalist.KeyC, Mods: datalist.ModCtrl}, "ctrl+c"},
		{datalist.KeyChord{Key: datalist.KeyDown, Mods: datalist.ModAlt}, "alt+down"},
		{datalist.KeyChord{Key: datalist.KeyEscape}, "esc"},
		{datalist.KeyChord{Key: datalist.KeyNone}, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TeaKey(tt.chord), tt.chord.String())
	}
}

func TestKeyMapChord(t *testing.T) {
	km := NewKeyMap(datalist.DefaultKeyMap())

	tests := []struct {
		msg  tea.KeyMsg
		want datalist.KeyChord
	}{
		{tea.KeyMsg{Type: tea.KeyPgDown}, datalist.KeyChord{Key: datalist.KeyPageDown}},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, datalist.KeyChord{Key: datalist.KeyC, Mods: datalist.ModCtrl}},
		{tea.KeyMsg{Type: tea.KeyDown, Alt: true}, datalist.KeyChord{Key: datalist.KeyDown, Mods: datalist.ModAlt}},
		{tea.KeyMsg{Type: tea.KeyF2}, datalist.KeyChord{Key: datalist.KeyF2}},
	}
	for _, tt := range tests {
		got, ok := km.Chord(tt.msg)
		require.True(t, ok, tt.msg.String())
		assert.Equal(t, tt.want, got, tt.msg.String())
	}

	_, ok := km.Chord(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.False(t, ok)
}

func TestKeyMapFollowsRebinding(t *testing.T) {
	dk := datalist.DefaultKeyMap()
	dk.Rebind(datalist.ActionEdit, datalist.KeyChord{Key: datalist.KeyEnter, Mods: datalist.ModAlt})
	km := NewKeyMap(dk)

	_, ok := km.Chord(tea.KeyMsg{Type: tea.KeyF2})
	assert.False(t, ok)
	got, ok := km.Chord(tea.KeyMsg{Type: tea.KeyEnter, Alt: true})
	require.True(t, ok)
	assert.Equal(t, datalist.KeyChord{Key: datalist.KeyEnter, Mods: datalist.ModAlt}, got)
}

func TestKeyMapHelp(t *testing.T) {
	km := NewKeyMap(datalist.DefaultKeyMap())

	short := km.ShortHelp()
	require.NotEmpty(t, short)
	assert.Equal(t, "quit", short[len(short)-1].Help().Desc)

	var descs []string
	for _, col := range km.FullHelp() {
		assert.LessOrEqual(t, len(col), 4)
		for _, b := range col {
			descs = append(descs, b.Help().Desc)
		}
	}
	assert.Contains(t, descs, "copy row")
	assert.Contains(t, descs, "drop down")
}
