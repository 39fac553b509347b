package report

import (
	"strings"
	"testing"

	"github.com/strawgate/runreport/internal/transcript"
)

const sampleLog = `{"kind":"init","model":"model-x","session_id":"s1","tools":["Bash","Read"],"mcp_servers":[{"name":"github","status":"connected"}]}
{"kind":"assistant","content":[{"type":"text","text":"Looking at the issue."},{"type":"tool_use","id":"t1","name":"Bash","input":{"command":"ls"}}]}
{"kind":"user","content":[{"type":"tool_result","tool_use_id":"t1","content":"main.go"}]}
{"kind":"assistant","content":[{"type":"tool_use","id":"t2","name":"Read","input":{"file_path":"/tmp/x"}}]}
{"kind":"result","num_turns":3,"duration_ms":4200,"total_cost_usd":0.05,"usage":{"input_tokens":100,"output_tokens":40}}
`

func claudeOptions(budget *Budget) Options {
	return Options{
		ToolFormatter: ClaudeToolMarkdown,
		InitFormatter: ClaudeInitMarkdown,
		Budget:        budget,
	}
}

func TestRenderConversation(t *testing.T) {
	entries := transcript.ParseLogEntries(sampleLog)
	if entries == nil {
		t.Fatal("parse failed")
	}

	rendered := RenderConversation(entries, claudeOptions(nil))
	if rendered.SizeLimitReached {
		t.Error("unbounded render should not hit a size limit")
	}
	for _, want := range []string{
		"Initialization",
		"Looking at the issue.",
		"Bash(command: ls)",
		"main.go",
		"Run Summary",
		"Turns: 3",
	} {
		if !strings.Contains(rendered.Markdown, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestRenderConversation_CommandSummaryExcludesBookkeeping(t *testing.T) {
	entries := transcript.ParseLogEntries(sampleLog)

	rendered := RenderConversation(entries, claudeOptions(nil))
	if !strings.Contains(rendered.CommandSummary, "Bash") {
		t.Error("summary should list Bash")
	}
	if strings.Contains(rendered.CommandSummary, "Read") {
		t.Error("summary should exclude the bookkeeping Read call")
	}
	// The full transcript still renders bookkeeping tools.
	if !strings.Contains(rendered.Markdown, "Read(file_path") {
		t.Error("transcript should still include the Read call")
	}
}

func TestRenderConversation_BudgetTrip(t *testing.T) {
	entries := transcript.ParseLogEntries(sampleLog)

	rendered := RenderConversation(entries, claudeOptions(NewBudget(200)))
	if !rendered.SizeLimitReached {
		t.Fatal("tiny budget should trip")
	}
	if !strings.Contains(rendered.Markdown, "size limit reached") {
		t.Error("expected truncation marker")
	}
	// No unterminated collapsible sections in the partial output.
	opens := strings.Count(rendered.Markdown, "<details>")
	closes := strings.Count(rendered.Markdown, "</details>")
	if opens != closes {
		t.Errorf("unbalanced details sections: %d open, %d close", opens, closes)
	}
}

// Re-rendering with a fresh budget of the same ceiling is byte-identical.
func TestRenderConversation_Idempotent(t *testing.T) {
	entries := transcript.ParseLogEntries(sampleLog)

	first := RenderConversation(entries, claudeOptions(NewBudget(0)))
	second := RenderConversation(entries, claudeOptions(NewBudget(0)))
	if first.Markdown != second.Markdown {
		t.Error("markdown differs between identical renders")
	}
	if first.CommandSummary != second.CommandSummary {
		t.Error("command summary differs between identical renders")
	}
}

func TestRenderConversation_ErrorBullets(t *testing.T) {
	entries := transcript.ParseLogEntries(`{"kind":"result","turns":1,"errors":["tool crashed","limit hit"]}`)

	rendered := RenderConversation(entries, claudeOptions(nil))
	if !strings.Contains(rendered.Markdown, "* tool crashed") {
		t.Error("missing first error bullet")
	}
	if !strings.Contains(rendered.Markdown, "* limit hit") {
		t.Error("missing second error bullet")
	}
}

func TestClaudeToolMarkdown_Unresolved(t *testing.T) {
	md := ClaudeToolMarkdown(transcript.ToolUse{ID: "t1", Name: "Bash"}, nil)
	if !strings.Contains(md, "No result recorded") {
		t.Errorf("unresolved call should say so: %q", md)
	}
	if !strings.Contains(md, "❔") {
		t.Errorf("unresolved call should use the unknown icon: %q", md)
	}
}
