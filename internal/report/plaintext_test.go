package report

import (
	"fmt"
	"strings"
	"testing"

	"github.com/strawgate/runreport/internal/transcript"
)

func TestRenderPlainText(t *testing.T) {
	entries := transcript.ParseLogEntries(sampleLog)

	text := RenderPlainText(entries)
	for _, want := range []string{
		"model: model-x",
		"mcp github: ok",
		"agent: Looking at the issue.",
		"[ok] Bash(command: ls)",
		"Statistics:",
		"Turns:    3",
		"Cost:     $0.0500",
		"140 total",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("plain text missing %q\n%s", want, text)
		}
	}
	// Bookkeeping tools stay out of the body.
	if strings.Contains(text, "Read") {
		t.Error("plain text should exclude bookkeeping tools")
	}
}

func TestRenderPlainText_LineCap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < maxPlainTextLines+100; i++ {
		fmt.Fprintf(&b, `{"kind":"assistant","content":[{"type":"tool_use","id":"t%d","name":"Bash","input":{}}]}`+"\n", i)
	}
	entries := transcript.ParseLogEntries(b.String())

	text := RenderPlainText(entries)
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != maxPlainTextLines+1 {
		t.Fatalf("expected %d lines, got %d", maxPlainTextLines+1, len(lines))
	}
	if lines[maxPlainTextLines] != conversationTruncatedLine {
		t.Errorf("last line should be the truncation line, got %q", lines[maxPlainTextLines])
	}
}

func TestRenderPlainText_ErrorBullets(t *testing.T) {
	entries := transcript.ParseLogEntries(`{"kind":"result","turns":1,"errors":["boom"]}`)

	text := RenderPlainText(entries)
	if !strings.Contains(text, "* boom") {
		t.Errorf("expected error bullet, got %q", text)
	}
}

func TestRenderTerminal(t *testing.T) {
	entries := transcript.ParseLogEntries(sampleLog)

	text := RenderTerminal(entries)
	if !strings.HasPrefix(text, "```console\n") {
		t.Error("terminal output should open a console fence")
	}
	if !strings.HasSuffix(text, "```\n") {
		t.Error("terminal output should close its fence")
	}
	if !strings.Contains(text, "[ok] Bash(command: ls)") {
		t.Error("terminal output missing tool line")
	}
}

func TestRenderTerminal_WrapsLongLines(t *testing.T) {
	long := strings.Repeat("word ", 60)
	raw := fmt.Sprintf(`{"kind":"assistant","content":[{"type":"text","text":%q}]}`, long)
	entries := transcript.ParseLogEntries(raw)

	text := RenderTerminal(entries)
	for _, line := range strings.Split(text, "\n") {
		if len(line) > terminalWidth {
			t.Errorf("line exceeds %d columns: %q", terminalWidth, line)
		}
	}
}
