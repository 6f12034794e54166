package term

import (
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-theft-auto/datalist"
)

// FrameInterval is how often the model advances the list's timers.
const FrameInterval = 50 * time.Millisecond

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model is a bubbletea model showing one list. Mouse and key messages go to
// the list as discrete events; while a cell is edited, keys go to a
// textinput whose value is mirrored into the edit session.
type Model struct {
	list    *datalist.DataList
	canvas  *Canvas
	keys    KeyMap
	help    help.Model
	input   textinput.Model
	editing *datalist.EditSession

	width, height int
	last          time.Time
	showHelp      bool
	pressed       datalist.MouseButton
	hasPressed    bool
	status        func() string
	statusStyle   lipgloss.Style
}

// Option configures a Model.
type Option func(*Model)

// WithHelp shows or hides the help line under the list.
func WithHelp(show bool) Option {
	return func(m *Model) { m.showHelp = show }
}

// WithStatus shows the result of fn right-aligned on the help line.
func WithStatus(fn func() string) Option {
	return func(m *Model) { m.status = fn }
}

// WithRenderer styles output with r instead of the default renderer.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(m *Model) {
		m.canvas.SetRenderer(r)
		m.statusStyle = r.NewStyle().Faint(true)
	}
}

// New wraps list. It switches the list to cell metrics and gives it focus.
func New(list *datalist.DataList, opts ...Option) *Model {
	list.SetMeasurer(CellMeasurer{})
	list.SetFocus(true)

	in := textinput.New()
	in.Prompt = ""
	in.Cursor.SetMode(cursor.CursorStatic)

	m := &Model{
		list:        list,
		canvas:      NewCanvas(0, 0),
		keys:        NewKeyMap(list.KeyMap()),
		help:        help.New(),
		input:       in,
		showHelp:    true,
		statusStyle: lipgloss.NewStyle().Faint(true),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// List returns the wrapped list.
func (m *Model) List() *datalist.DataList { return m.list }

func (m *Model) Init() tea.Cmd {
	m.last = time.Now()
	return tick()
}

func (m *Model) listHeight() int {
	if m.showHelp {
		return max(0, m.height-lipgloss.Height(m.footer()))
	}
	return m.height
}

func (m *Model) relayout() {
	m.list.Resize(m.width, m.listHeight())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.relayout()

	case tickMsg:
		now := time.Time(msg)
		if !m.last.IsZero() {
			m.list.Update(float32(now.Sub(m.last).Seconds()))
		}
		m.last = now
		cmds = append(cmds, tick())

	case tea.FocusMsg:
		m.list.SetFocus(true)
	case tea.BlurMsg:
		m.list.SetFocus(false)

	case tea.MouseMsg:
		m.mouse(msg)

	case tea.KeyMsg:
		if cmd, quit := m.key(msg); quit {
			return m, tea.Quit
		} else if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if cmd := m.syncEdit(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) mouse(msg tea.MouseMsg) {
	x, y := msg.X, msg.Y
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.list.MouseWheel(1)
		return
	case tea.MouseButtonWheelDown:
		m.list.MouseWheel(-1)
		return
	case tea.MouseButtonWheelLeft:
		m.list.Perform(datalist.ActionLeft)
		return
	case tea.MouseButtonWheelRight:
		m.list.Perform(datalist.ActionRight)
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		b, ok := mouseButton(msg.Button)
		if !ok {
			return
		}
		m.pressed, m.hasPressed = b, true
		m.list.MouseDown(x, y, b)
	case tea.MouseActionRelease:
		// Some terminals report releases without the button.
		b, ok := mouseButton(msg.Button)
		if !ok {
			b, ok = m.pressed, m.hasPressed
		}
		m.hasPressed = false
		if ok {
			m.list.MouseUp(x, y, b)
		}
	case tea.MouseActionMotion:
		m.list.MouseMove(x, y)
	}
}

func mouseButton(b tea.MouseButton) (datalist.MouseButton, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return datalist.MouseButtonLeft, true
	case tea.MouseButtonRight:
		return datalist.MouseButtonRight, true
	case tea.MouseButtonMiddle:
		return datalist.MouseButtonMiddle, true
	}
	return 0, false
}

// key handles a key press. quit is true when the program should exit.
func (m *Model) key(msg tea.KeyMsg) (cmd tea.Cmd, quit bool) {
	chord, bound := m.keys.Chord(msg)
	if m.list.Editing() == nil {
		switch {
		case bound:
			m.list.KeyDown(chord.Key, chord.Mods)
		case key.Matches(msg, m.keys.Quit):
			return nil, true
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.relayout()
		}
		return nil, false
	}

	if bound {
		switch a, _ := m.list.KeyMap().Lookup(chord); a {
		case datalist.ActionAccept, datalist.ActionCommit:
			// textinput holds one line, so Enter always commits.
			_ = m.list.FinishEdit(true)
			return nil, false
		case datalist.ActionCancel:
			m.list.KeyDown(chord.Key, chord.Mods)
			return nil, false
		}
	}
	m.input, cmd = m.input.Update(msg)
	m.list.SetEditText(m.input.Value())
	return cmd, false
}

// syncEdit mirrors the list's edit session into the textinput.
func (m *Model) syncEdit() tea.Cmd {
	s := m.list.Editing()
	switch {
	case s == nil:
		if m.editing != nil {
			m.input.Blur()
			m.editing = nil
		}
	case s != m.editing:
		m.editing = s
		m.input.SetValue(s.Text)
		m.input.CursorEnd()
		return m.input.Focus()
	case s.Text != m.input.Value():
		m.input.SetValue(s.Text)
		m.input.CursorEnd()
	}
	return nil
}

func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	m.canvas.Resize(m.width, m.listHeight())
	m.list.Paint(m.canvas)
	if r, ok := m.list.EditBounds(); ok && m.editing != nil && r.X >= 0 && r.W > 0 {
		m.input.Width = max(1, r.W-1)
		m.canvas.Overlay(r.X, r.Y, m.input.View())
	}
	out := m.canvas.Render()
	if m.showHelp {
		out += "\n" + m.footer()
	}
	return out
}

func (m *Model) footer() string {
	line := m.help.View(m.keys)
	if m.status == nil {
		return line
	}
	status := m.statusStyle.Render(m.status())
	gap := m.width - lipgloss.Width(line) - lipgloss.Width(status)
	if gap < 1 {
		return line
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, line, lipgloss.PlaceHorizontal(gap+lipgloss.Width(status), lipgloss.Right, status))
}
