package report

import (
	"fmt"
	"strings"

	"github.com/strawgate/runreport/internal/transcript"
)

// maxPlainTextLines caps the conversation body of the plain-text
// renderer. Excess is replaced by a single truncation line, never a
// partial mid-line cut.
const maxPlainTextLines = 5000

const conversationTruncatedLine = "... (conversation truncated)"

// RenderPlainText renders the transcript as unstyled text for console
// or log capture: a line-capped conversation body followed by a labeled
// statistics footer.
func RenderPlainText(entries []transcript.LogEntry) string {
	body := conversationLines(entries)
	if len(body) > maxPlainTextLines {
		body = append(body[:maxPlainTextLines], conversationTruncatedLine)
	}

	var b strings.Builder
	for _, line := range body {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if footer := statsFooter(entries); footer != "" {
		b.WriteString("\n")
		b.WriteString(footer)
	}
	return b.String()
}

// conversationLines walks the entries once and emits one or more text
// lines per rendered element, applying the shared name normalization and
// bookkeeping-tool exclusion rules.
func conversationLines(entries []transcript.LogEntry) []string {
	correlation := transcript.CorrelateTools(entries)

	var lines []string
	for _, entry := range entries {
		switch entry.Kind {
		case transcript.KindInit:
			lines = append(lines, initLines(entry.Init)...)

		case transcript.KindAssistant:
			for _, block := range entry.Content {
				switch block.Type {
				case transcript.BlockText:
					text := strings.TrimSpace(block.Text)
					if text == "" {
						continue
					}
					for _, line := range strings.Split(text, "\n") {
						lines = append(lines, "agent: "+line)
					}
				case transcript.BlockToolUse:
					use := *block.ToolUse
					if transcript.IsBookkeepingTool(use.Name) {
						continue
					}
					lines = append(lines, toolLine(use, correlation.ResultFor(use.ID)))
				}
			}

		case transcript.KindResult:
			for _, msg := range entry.Result.Errors {
				lines = append(lines, "* "+msg)
			}
		}
	}
	return lines
}

func initLines(init *transcript.InitInfo) []string {
	var lines []string
	if init.Model != "" {
		lines = append(lines, "model: "+init.Model)
	}
	if init.WorkingDir != "" {
		lines = append(lines, "cwd: "+init.WorkingDir)
	}
	for _, server := range init.MCPServers {
		marker := "ok"
		if server.Failed() {
			marker = "FAILED"
		}
		lines = append(lines, fmt.Sprintf("mcp %s: %s", server.Name, marker))
	}
	return lines
}

func toolLine(use transcript.ToolUse, result *transcript.ToolResult) string {
	marker := "[ok]"
	switch {
	case result == nil:
		marker = "[??]"
	case result.IsError:
		marker = "[FAIL]"
	}

	name := FormatToolName(use.Name)
	params := FormatParameters(use.Input, DefaultMaxParameterFields)
	if params == "" {
		return fmt.Sprintf("%s %s", marker, name)
	}
	return fmt.Sprintf("%s %s(%s)", marker, name, params)
}

// statsFooter renders the labeled statistics block from the result
// entry, or an empty string when the transcript has none.
func statsFooter(entries []transcript.LogEntry) string {
	var result *transcript.ResultInfo
	for _, entry := range entries {
		if entry.Kind == transcript.KindResult {
			result = entry.Result
		}
	}
	if result == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("Statistics:\n")
	fmt.Fprintf(&b, "  Turns:    %d\n", result.Turns)
	fmt.Fprintf(&b, "  Duration: %s\n", formatDuration(result.DurationMS))
	if result.CostUSD > 0 {
		fmt.Fprintf(&b, "  Cost:     $%.4f\n", result.CostUSD)
	}
	if result.Usage.Total() > 0 {
		fmt.Fprintf(&b, "  Tokens:   %d total (%d in, %d out, %d cache read, %d cache created)\n",
			result.Usage.Total(),
			result.Usage.InputTokens,
			result.Usage.OutputTokens,
			result.Usage.CacheReadTokens,
			result.Usage.CacheCreationTokens)
	}
	if result.PermissionDenials > 0 {
		fmt.Fprintf(&b, "  Permission denials: %d\n", result.PermissionDenials)
	}
	return b.String()
}
