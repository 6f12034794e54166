package datalist

import (
	"strings"

	"github.com/atotto/clipboard"
)

// ClipboardProvider abstracts system clipboard access.
//
// For GLFW:
//
//	type GLFWClipboard struct {
//	    window *glfw.Window
//	}
//
//	func (c *GLFWClipboard) GetText() string {
//	    return c.window.GetClipboardString()
//	}
//
//	func (c *GLFWClipboard) SetText(text string) {
//	    c.window.SetClipboardString(text)
//	}
type ClipboardProvider interface {
	// GetText returns the clipboard text, or "" when it holds none.
	GetText() string
	// SetText replaces the clipboard contents.
	SetText(text string)
}

// SystemClipboard uses the operating system clipboard through xclip,
// xsel, pbcopy or the Windows API. A failed read yields empty text and a
// failed write is logged at debug level.
type SystemClipboard struct{}

func (SystemClipboard) GetText() string {
	s, err := clipboard.ReadAll()
	if err != nil {
		return ""
	}
	return s
}

func (SystemClipboard) SetText(text string) {
	if err := clipboard.WriteAll(text); err != nil {
		defaultLogger.Debug("clipboard write failed", "err", err)
	}
}

// ClipboardAvailable reports whether the system clipboard can be used.
func ClipboardAvailable() bool { return !clipboard.Unsupported }

// MemoryClipboard keeps text in process. Tests and headless hosts use it.
type MemoryClipboard struct{ text string }

func (c *MemoryClipboard) GetText() string     { return c.text }
func (c *MemoryClipboard) SetText(text string) { c.text = text }

// RowTSV renders the visible cells of r as tab-separated text. Tabs and
// newlines inside cells become spaces.
func (l *DataList) RowTSV(r *Row) string {
	clean := strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ")
	var b strings.Builder
	first := true
	for i, c := range l.cols.All() {
		if !c.visible {
			continue
		}
		if _, proxy := c.render.ProxySlot(); proxy {
			continue
		}
		if !first {
			b.WriteByte('\t')
		}
		first = false
		b.WriteString(clean.Replace(l.Text(r, i)))
	}
	return b.String()
}

// CopySelection copies the selected row as TSV. Returns false when there
// is no selection or no clipboard.
func (l *DataList) CopySelection() bool {
	if l.sel == nil || l.clipboard == nil {
		return false
	}
	l.clipboard.SetText(l.RowTSV(l.sel))
	return true
}
