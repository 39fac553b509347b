package report

import (
	"fmt"
	"strings"

	"github.com/strawgate/runreport/internal/transcript"
)

// sizeLimitMarker closes a report whose budget tripped mid-pass.
const sizeLimitMarker = "\n*Report truncated: size limit reached.*\n"

// ToolFormatter renders one tool invocation for a specific engine. The
// result is nil when the invocation was never resolved.
type ToolFormatter func(use transcript.ToolUse, result *transcript.ToolResult) string

// InitFormatter renders the session initialization entry for a specific
// engine.
type InitFormatter func(init *transcript.InitInfo) string

// Options configures a conversation render pass. The two formatters
// inject engine-specific markup; the traversal, correlation and
// truncation logic stays shared.
type Options struct {
	ToolFormatter ToolFormatter
	InitFormatter InitFormatter
	Budget        *Budget
}

// Rendered is the product of one conversation render pass.
type Rendered struct {
	Markdown         string
	CommandSummary   string
	SizeLimitReached bool
}

// RenderConversation walks the entries once in order, delegating init
// and tool_use blocks to the caller's formatters and collecting a
// condensed command summary along the way. When a budget is supplied and
// trips, rendering stops between whole segments, a truncation marker is
// appended and SizeLimitReached is set; everything emitted up to that
// point remains valid markdown.
func RenderConversation(entries []transcript.LogEntry, opts Options) Rendered {
	correlation := transcript.CorrelateTools(entries)

	var out Rendered
	var md strings.Builder
	var summary strings.Builder

	appendSegment := func(segment string) bool {
		if segment == "" {
			return true
		}
		if opts.Budget != nil && !opts.Budget.TryAppend(len(segment)) {
			md.WriteString(sizeLimitMarker)
			out.SizeLimitReached = true
			return false
		}
		md.WriteString(segment)
		return true
	}

walk:
	for _, entry := range entries {
		switch entry.Kind {
		case transcript.KindInit:
			if opts.InitFormatter == nil {
				continue
			}
			if !appendSegment(opts.InitFormatter(entry.Init)) {
				break walk
			}

		case transcript.KindAssistant:
			for _, block := range entry.Content {
				switch block.Type {
				case transcript.BlockText:
					text := strings.TrimSpace(block.Text)
					if text == "" {
						continue
					}
					if !appendSegment(text + "\n\n") {
						break walk
					}
				case transcript.BlockToolUse:
					use := *block.ToolUse
					result := correlation.ResultFor(use.ID)
					if !transcript.IsBookkeepingTool(use.Name) {
						summary.WriteString(summaryLine(use, result))
					}
					if opts.ToolFormatter == nil {
						continue
					}
					if !appendSegment(opts.ToolFormatter(use, result)) {
						break walk
					}
				}
			}

		case transcript.KindResult:
			if !appendSegment(resultMarkdown(entry.Result)) {
				break walk
			}
		}
	}

	out.Markdown = md.String()
	out.CommandSummary = summary.String()
	return out
}

// summaryLine emits one condensed command-summary bullet: status icon,
// display name and a one-line argument gist.
func summaryLine(use transcript.ToolUse, result *transcript.ToolResult) string {
	icon := "✅"
	if result != nil && result.IsError {
		icon = "❌"
	}
	name := FormatToolName(use.Name)
	params := FormatParameters(use.Input, DefaultMaxParameterFields)
	if params == "" {
		return fmt.Sprintf("* %s `%s`\n", icon, name)
	}
	return fmt.Sprintf("* %s `%s(%s)`\n", icon, name, params)
}

// resultMarkdown renders the final statistics entry, with any execution
// errors listed verbatim as bullets.
func resultMarkdown(result *transcript.ResultInfo) string {
	var b strings.Builder
	b.WriteString("\n## Run Summary\n\n")
	fmt.Fprintf(&b, "* Turns: %d\n", result.Turns)
	fmt.Fprintf(&b, "* Duration: %s\n", formatDuration(result.DurationMS))
	if result.CostUSD > 0 {
		fmt.Fprintf(&b, "* Cost: $%.4f\n", result.CostUSD)
	}
	if result.Usage.Total() > 0 {
		fmt.Fprintf(&b, "* Tokens: %d in / %d out", result.Usage.InputTokens, result.Usage.OutputTokens)
		if result.Usage.CacheReadTokens > 0 || result.Usage.CacheCreationTokens > 0 {
			fmt.Fprintf(&b, " (cache: %d read, %d created)",
				result.Usage.CacheReadTokens, result.Usage.CacheCreationTokens)
		}
		b.WriteString("\n")
	}
	if result.PermissionDenials > 0 {
		fmt.Fprintf(&b, "* Permission denials: %d\n", result.PermissionDenials)
	}
	if len(result.Errors) > 0 {
		b.WriteString("\n**Errors:**\n\n")
		for _, msg := range result.Errors {
			fmt.Fprintf(&b, "* %s\n", msg)
		}
	}
	return b.String()
}

// formatDuration formats milliseconds as a human-readable duration.
func formatDuration(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	if ms < 60000 {
		return fmt.Sprintf("%.2fs", float64(ms)/1000)
	}
	mins := ms / 60000
	secs := (ms % 60000) / 1000
	return fmt.Sprintf("%dm%ds", mins, secs)
}
