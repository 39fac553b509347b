package report

import "testing"

func TestFormatToolName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"mcp__github__search_issues", "github::search_issues"},
		{"mcp__playwright__navigate", "playwright::navigate"},
		{"mcp__serena__find_symbol", "serena::find_symbol"},
		{"Bash", "Bash"},
		{"dependabot-style-name", "dependabot-style-name"},
		{"mcp__", "mcp__"},
		{"mcp__solo", "mcp__solo"},
		{"mcp__server__op__extra", "server::op__extra"},
	}
	for _, tt := range tests {
		if got := FormatToolName(tt.in); got != tt.want {
			t.Errorf("FormatToolName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		in   string
		want ToolCategory
	}{
		{"Bash", CategoryCore},
		{"WebFetch", CategoryCore},
		{"Read", CategoryFileOps},
		{"MultiEdit", CategoryFileOps},
		{"TodoWrite", CategoryBuiltin},
		{"mcp__safe_outputs__create_issue", CategorySafeOutputs},
		{"mcp__safeoutputs__add_comment", CategorySafeOutputs},
		{"mcp__safe_inputs__fetch", CategorySafeInputs},
		{"mcp__github__search_issues", CategoryGitGitHub},
		{"mcp__git__diff", CategoryGitGitHub},
		// Named servers win over the generic MCP bucket.
		{"mcp__playwright__navigate", CategoryPlaywright},
		{"mcp__serena__find_symbol", CategorySerena},
		{"mcp__weather__forecast", CategoryMCP},
		{"dependabot-style-name", CategoryCustomAgent},
		{"code-review-helper", CategoryCustomAgent},
		// Single words never look like agents.
		{"deploy", CategoryOther},
		// Uppercase disqualifies the agent heuristic.
		{"My-Agent", CategoryOther},
		{"safe-outputs", CategoryOther},
		{"-leading", CategoryOther},
		{"", CategoryOther},
	}
	for _, tt := range tests {
		if got := Categorize(tt.in); got != tt.want {
			t.Errorf("Categorize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
