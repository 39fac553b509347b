package report

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/strawgate/runreport/internal/transcript"
)

const (
	// terminalWidth is the fixed column width of the simulated console.
	terminalWidth = 80

	// maxTerminalLines caps the terminal-style body, counted before
	// wrapping.
	maxTerminalLines = 3000
)

// RenderTerminal renders the transcript as a fixed-width fenced block
// that mimics a live console session. It shares the traversal,
// correlation, name normalization and bookkeeping exclusion rules with
// the plain-text renderer and applies its own line ceiling.
func RenderTerminal(entries []transcript.LogEntry) string {
	body := conversationLines(entries)
	if len(body) > maxTerminalLines {
		body = append(body[:maxTerminalLines], conversationTruncatedLine)
	}

	var b strings.Builder
	b.WriteString("```console\n")
	for _, line := range body {
		b.WriteString(wordwrap.String(line, terminalWidth))
		b.WriteString("\n")
	}
	if footer := statsFooter(entries); footer != "" {
		b.WriteString("\n")
		b.WriteString(footer)
	}
	b.WriteString("```\n")
	return b.String()
}
