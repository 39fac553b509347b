package report

import (
	"fmt"
	"strings"

	"github.com/strawgate/runreport/internal/transcript"
)

// unrecognizedFormatBlock is rendered when no parse strategy recognized
// the input. This is a placeholder, not an error.
const unrecognizedFormatBlock = "*Log format not recognized.*\n"

// ClaudeOptions tunes the Claude engine parse.
type ClaudeOptions struct {
	TurnBudget int // 0 means no turn budget configured
	SizeLimit  int // 0 selects DefaultBudgetLimit
}

// ClaudeParseFunc returns the raw-parse function for Claude verbose
// stream logs, suitable for Wrap.
func ClaudeParseFunc(opts ClaudeOptions) ParseFunc {
	return func(raw string) (*EngineResult, error) {
		entries := transcript.ParseLogEntries(raw)
		if entries == nil {
			return &EngineResult{
				Markdown:    unrecognizedFormatBlock,
				MCPFailures: []string{},
				LogEntries:  []transcript.LogEntry{},
			}, nil
		}

		rendered := RenderConversation(entries, Options{
			ToolFormatter: ClaudeToolMarkdown,
			InitFormatter: ClaudeInitMarkdown,
			Budget:        NewBudget(opts.SizeLimit),
		})
		outcome := transcript.DetectFailures(entries, opts.TurnBudget)

		mcpFailures := outcome.MCPFailures
		if mcpFailures == nil {
			mcpFailures = []string{}
		}
		return &EngineResult{
			Markdown:         rendered.Markdown,
			CommandSummary:   rendered.CommandSummary,
			SizeLimitReached: rendered.SizeLimitReached,
			MCPFailures:      mcpFailures,
			MaxTurnsHit:      outcome.MaxTurnsHit,
			LogEntries:       entries,
		}, nil
	}
}

// ClaudeInitMarkdown renders the initialization entry as a collapsible
// section listing session metadata, declared tools and MCP server
// statuses.
func ClaudeInitMarkdown(init *transcript.InitInfo) string {
	var b strings.Builder
	b.WriteString("<details>\n<summary>🚀 Initialization</summary>\n\n")

	if init.Model != "" {
		fmt.Fprintf(&b, "* Model: `%s`\n", init.Model)
	}
	if init.SessionID != "" {
		fmt.Fprintf(&b, "* Session: `%s`\n", init.SessionID)
	}
	if init.WorkingDir != "" {
		fmt.Fprintf(&b, "* Working directory: `%s`\n", init.WorkingDir)
	}

	if len(init.Tools) > 0 {
		fmt.Fprintf(&b, "* Tools: %d declared\n", len(init.Tools))
		groups := groupByCategory(init.Tools)
		for _, category := range categoryOrder {
			if names := groups[category]; len(names) > 0 {
				fmt.Fprintf(&b, "  * %s: %s\n", category, strings.Join(names, ", "))
			}
		}
	}

	if len(init.MCPServers) > 0 {
		b.WriteString("* MCP servers:\n")
		for _, server := range init.MCPServers {
			icon := "✅"
			if server.Failed() {
				icon = "❌"
			}
			fmt.Fprintf(&b, "  * %s %s (%s)", icon, server.Name, server.Status)
			if server.Error != "" {
				fmt.Fprintf(&b, ": %s", FormatOutput(server.Error, 128))
			}
			b.WriteString("\n")
		}
	}

	if len(init.SlashCommands) > 0 {
		fmt.Fprintf(&b, "* Slash commands: %s\n", strings.Join(init.SlashCommands, ", "))
	}

	b.WriteString("\n</details>\n\n")
	return b.String()
}

// ClaudeToolMarkdown renders one tool invocation as a collapsible
// section with its parameters in the summary line and truncated output
// in the body.
func ClaudeToolMarkdown(use transcript.ToolUse, result *transcript.ToolResult) string {
	icon := "✅"
	switch {
	case result == nil:
		icon = "❔"
	case result.IsError:
		icon = "❌"
	}

	name := FormatToolName(use.Name)
	params := FormatParameters(use.Input, DefaultMaxParameterFields)
	title := name
	if params != "" {
		title = fmt.Sprintf("%s(%s)", name, params)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<details>\n<summary>%s %s</summary>\n\n", icon, title)

	if result != nil {
		output := FormatOutput(ContentText(result.Content), DefaultMaxOutputLength)
		if output != "" {
			b.WriteString("```\n")
			b.WriteString(output)
			b.WriteString("\n```\n")
		}
		if result.DurationMS > 0 {
			fmt.Fprintf(&b, "\n*%s*\n", formatDuration(result.DurationMS))
		}
	} else {
		b.WriteString("*No result recorded.*\n")
	}

	b.WriteString("\n</details>\n\n")
	return b.String()
}

// groupByCategory buckets declared tool names, listing each category's
// tools in declaration order.
func groupByCategory(tools []string) map[ToolCategory][]string {
	groups := make(map[ToolCategory][]string)
	for _, tool := range tools {
		category := Categorize(tool)
		groups[category] = append(groups[category], FormatToolName(tool))
	}
	return groups
}
