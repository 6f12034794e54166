package datalist

// Style defines the system colors and metrics a list paints with.
// Override maps take precedence over every color here.
type Style struct {
	// List colors (final fallback of the resolution chain)
	Back Color
	Text Color

	// Active selection pair, used while the list has focus
	Highlight     Color
	HighlightText Color

	// Inactive selection pair
	InactiveHighlight     Color
	InactiveHighlightText Color

	// Disabled or read-only list
	ControlBack Color
	ControlText Color

	// Header
	HeaderBack    Color
	HeaderText    Color
	HeaderPressed Color
	HeaderBorder  Color
	SortArrow     Color

	// Widgets drawn inside cells
	CheckBorder   Color
	CheckMark     Color
	ProgressTrack Color
	ProgressFill  Color

	// Scrollbar
	ScrollbarBack Color
	ScrollbarGrab Color

	// Edit box and tooltip
	EditBack     Color
	EditText     Color
	EditBorder   Color
	TooltipBack  Color
	TooltipText  Color
	TooltipFrame Color

	// GridLineScale is applied to the back color for grid lines.
	GridLineScale float32

	// Sizing, in list units
	CellPadding   int // Around cell text; row height is line height + 2*CellPadding
	ScrollbarSize int // Thickness of both scrollbars
	CheckSize     int // Checkbox square
	ResizeGrip    int // Header edge band (exclusive) that starts a resize
}

// DefaultStyle returns a light style close to a stock desktop list view.
func DefaultStyle() Style {
	return Style{
		Back: ColorWhite,
		Text: ColorBlack,

		Highlight:     RGB(0, 120, 215),
		HighlightText: ColorWhite,

		InactiveHighlight:     RGB(191, 205, 219),
		InactiveHighlightText: ColorBlack,

		ControlBack: RGB(240, 240, 240),
		ControlText: RGB(109, 109, 109),

		HeaderBack:    RGB(240, 240, 240),
		HeaderText:    ColorBlack,
		HeaderPressed: RGB(204, 228, 247),
		HeaderBorder:  RGB(213, 213, 213),
		SortArrow:     RGB(96, 96, 96),

		CheckBorder:   RGB(51, 51, 51),
		CheckMark:     RGB(0, 84, 153),
		ProgressTrack: RGB(230, 230, 230),
		ProgressFill:  RGB(6, 176, 37),

		ScrollbarBack: RGB(240, 240, 240),
		ScrollbarGrab: RGB(192, 192, 192),

		EditBack:     ColorWhite,
		EditText:     ColorBlack,
		EditBorder:   RGB(0, 120, 215),
		TooltipBack:  RGB(255, 255, 225),
		TooltipText:  ColorBlack,
		TooltipFrame: RGB(118, 118, 118),

		GridLineScale: 0.75,

		CellPadding:   4,
		ScrollbarSize: 14,
		CheckSize:     13,
		ResizeGrip:    5,
	}
}

// DarkStyle returns a dark variant of DefaultStyle.
func DarkStyle() Style {
	s := DefaultStyle()
	s.Back = RGB(30, 30, 30)
	s.Text = RGB(220, 220, 220)
	s.Highlight = RGB(50, 100, 150)
	s.InactiveHighlight = RGB(60, 60, 60)
	s.InactiveHighlightText = RGB(220, 220, 220)
	s.ControlBack = RGB(45, 45, 45)
	s.ControlText = ColorGray
	s.HeaderBack = RGB(40, 40, 40)
	s.HeaderText = RGB(220, 220, 220)
	s.HeaderPressed = RGB(70, 70, 70)
	s.HeaderBorder = RGB(80, 80, 80)
	s.SortArrow = ColorLightGray
	s.CheckBorder = ColorLightGray
	s.CheckMark = RGB(120, 180, 255)
	s.ProgressTrack = RGB(50, 50, 50)
	s.ScrollbarBack = RGB(35, 35, 35)
	s.ScrollbarGrab = RGB(90, 90, 90)
	s.EditBack = RGB(20, 20, 20)
	s.EditText = ColorWhite
	s.TooltipBack = RGB(50, 50, 55)
	s.TooltipText = ColorWhite
	s.TooltipFrame = RGB(100, 100, 100)
	return s
}

// TerminalStyle is DarkStyle with metrics for a character grid: no cell
// padding, one-cell scrollbars and checkboxes.
func TerminalStyle() Style {
	s := DarkStyle()
	s.CellPadding = 0
	s.ScrollbarSize = 1
	s.CheckSize = 1
	s.ResizeGrip = 1
	return s
}
