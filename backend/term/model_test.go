package term

import (
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/datalist"
)

func newTestModel(t *testing.T, rows int) *Model {
	t.Helper()
	l := datalist.New(datalist.WithStyle(datalist.TerminalStyle()), datalist.WithGridLines(false))
	_, err := l.AddColumn("Name", datalist.TypeString, 10, datalist.RenderText, true)
	require.NoError(t, err)
	_, err = l.AddColumn("Qty", datalist.TypeInt, 5, datalist.RenderText, true)
	require.NoError(t, err)
	for i := range rows {
		r := l.NewRow()
		require.NoError(t, l.SetValue(r, 0, datalist.String(fmt.Sprintf("item %d", i))))
		require.NoError(t, l.SetValue(r, 1, datalist.Int(int32(i))))
		require.True(t, l.AddRow(r))
	}

	m := New(l, WithRenderer(lipgloss.NewRenderer(io.Discard)))
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	return m
}

func click(m *Model, x, y int) {
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
}

func press(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, 30)
	out := m.View()

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 10)
	assert.Contains(t, lines[0], "Name")
	assert.Contains(t, lines[0], "Qty")
	assert.Contains(t, lines[1], "item 0")
	assert.Contains(t, lines[len(lines)-1], "quit")
}

func TestModelViewBeforeSize(t *testing.T) {
	l := datalist.New()
	m := New(l)
	assert.Empty(t, m.View())
}

func TestModelClickAndKeys(t *testing.T) {
	m := newTestModel(t, 30)
	rows := m.List().Rows()

	click(m, 2, 3)
	require.Equal(t, rows.At(2), m.List().Selection())

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, rows.At(3), m.List().Selection())

	press(m, tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, rows.At(29), m.List().Selection())
	assert.Greater(t, m.List().Viewport().VScroll.Value, 0)

	press(m, tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, rows.At(0), m.List().Selection())
	assert.Equal(t, 0, m.List().Viewport().VScroll.Value)
}

func TestModelWheel(t *testing.T) {
	m := newTestModel(t, 30)
	m.Update(tea.MouseMsg{X: 2, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Greater(t, m.List().Viewport().VScroll.Value, 0)

	m.Update(tea.MouseMsg{X: 2, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.Equal(t, 0, m.List().Viewport().VScroll.Value)
}

func TestModelEditCommit(t *testing.T) {
	m := newTestModel(t, 5)
	rows := m.List().Rows()
	click(m, 2, 1)

	press(m, tea.KeyMsg{Type: tea.KeyF2})
	s := m.List().Editing()
	require.NotNil(t, s)
	assert.Equal(t, "item 0", s.Text)
	assert.Equal(t, "item 0", m.input.Value())
	assert.Contains(t, m.View(), "item 0")

	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")})
	assert.Equal(t, "item 0!", m.List().Editing().Text)

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, m.List().Editing())
	assert.Equal(t, "item 0!", m.List().Value(rows.At(0), 0).AsString())
}

func TestModelEditCancel(t *testing.T) {
	m := newTestModel(t, 5)
	rows := m.List().Rows()
	click(m, 2, 1)

	press(m, tea.KeyMsg{Type: tea.KeyF2})
	press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "item ", m.List().Editing().Text)

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.List().Editing())
	assert.Equal(t, "item 0", m.List().Value(rows.At(0), 0).AsString())
}

func TestModelEditFailedClearsInput(t *testing.T) {
	m := newTestModel(t, 5)
	click(m, 12, 1)

	// Qty is the first editable column only once Name is hidden.
	require.NoError(t, m.List().SetColumnVisible(0, false))
	press(m, tea.KeyMsg{Type: tea.KeyF2})
	require.NotNil(t, m.List().Editing())
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.List().Editing(), "a parse failure keeps the edit open")
	assert.Empty(t, m.List().Editing().Text)
	assert.Empty(t, m.input.Value())
}

func TestModelSecondClickStartsEditAfterDelay(t *testing.T) {
	m := newTestModel(t, 5)
	start := time.Now()
	m.Update(tickMsg(start))

	click(m, 2, 1)
	m.Update(tickMsg(start.Add(time.Second)))
	require.Nil(t, m.List().Editing())

	click(m, 2, 1)
	_, _, pending := m.List().PendingEdit()
	require.True(t, pending)

	m.Update(tickMsg(start.Add(2 * time.Second)))
	require.NotNil(t, m.List().Editing())
	assert.Equal(t, "item 0", m.input.Value())
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, 1)
	cmd := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelHelpToggleShrinksList(t *testing.T) {
	m := newTestModel(t, 30)
	_, h := m.List().Size()
	assert.Equal(t, 9, h)

	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	_, h = m.List().Size()
	assert.Less(t, h, 9)
}

func TestModelFocus(t *testing.T) {
	m := newTestModel(t, 5)
	click(m, 2, 1)
	press(m, tea.KeyMsg{Type: tea.KeyF2})
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})

	m.Update(tea.BlurMsg{})
	assert.False(t, m.List().Focused())
	assert.Nil(t, m.List().Editing(), "losing focus commits")
	assert.Equal(t, "item 0?", m.List().Value(m.List().Rows().At(0), 0).AsString())
}
