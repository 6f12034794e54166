package datalist

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/atotto/clipboard"
)

func TestSystemClipboardLogsWriteFailure(t *testing.T) {
	if !clipboard.Unsupported {
		t.Skip("a clipboard tool is installed; writes may succeed")
	}
	var buf bytes.Buffer
	saved := defaultLogger
	defaultLogger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	defer func() { defaultLogger = saved }()

	SystemClipboard{}.SetText("x")
	if !strings.Contains(buf.String(), "clipboard write failed") {
		t.Errorf("expected the write error logged, got %q", buf.String())
	}
}
