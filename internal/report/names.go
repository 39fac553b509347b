package report

import "strings"

// ToolCategory buckets tool names for listing and filtering. Categories
// are derived from the name on every render, never stored.
type ToolCategory string

const (
	CategoryCore        ToolCategory = "Core"
	CategoryFileOps     ToolCategory = "File Operations"
	CategoryBuiltin     ToolCategory = "Builtin"
	CategorySafeOutputs ToolCategory = "Safe Outputs"
	CategorySafeInputs  ToolCategory = "Safe Inputs"
	CategoryGitGitHub   ToolCategory = "Git/GitHub"
	CategoryPlaywright  ToolCategory = "Playwright"
	CategorySerena      ToolCategory = "Serena"
	CategoryMCP         ToolCategory = "MCP (other)"
	CategoryCustomAgent ToolCategory = "Custom Agents"
	CategoryOther       ToolCategory = "Other"
)

// categoryOrder fixes the listing order of categories in rendered
// reports.
var categoryOrder = []ToolCategory{
	CategoryCore,
	CategoryFileOps,
	CategoryBuiltin,
	CategorySafeOutputs,
	CategorySafeInputs,
	CategoryGitGitHub,
	CategoryPlaywright,
	CategorySerena,
	CategoryMCP,
	CategoryCustomAgent,
	CategoryOther,
}

const mcpPrefix = "mcp__"

var coreTools = map[string]bool{
	"Bash":       true,
	"BashOutput": true,
	"KillShell":  true,
	"Task":       true,
	"Grep":       true,
	"Glob":       true,
	"WebFetch":   true,
	"WebSearch":  true,
}

var fileOpTools = map[string]bool{
	"Read":         true,
	"Write":        true,
	"Edit":         true,
	"MultiEdit":    true,
	"NotebookEdit": true,
	"LS":           true,
}

var builtinTools = map[string]bool{
	"TodoWrite":    true,
	"ExitPlanMode": true,
	"Skill":        true,
	"SlashCommand": true,
}

// FormatToolName rewrites synthetic MCP identifiers of the shape
// mcp__server__operation to server::operation for display. Names with a
// different shape pass through unchanged.
func FormatToolName(name string) string {
	rest, ok := strings.CutPrefix(name, mcpPrefix)
	if !ok {
		return name
	}
	server, op, ok := strings.Cut(rest, "__")
	if !ok || server == "" || op == "" {
		return name
	}
	return server + "::" + op
}

// Categorize assigns a tool name to its category. Rules are checked in a
// fixed order and the first match wins; reordering changes which bucket
// ambiguous names land in, so the order is load-bearing.
func Categorize(name string) ToolCategory {
	switch {
	case strings.HasPrefix(name, mcpPrefix+"safe_outputs") || strings.HasPrefix(name, mcpPrefix+"safeoutputs"):
		return CategorySafeOutputs
	case strings.HasPrefix(name, mcpPrefix+"safe_inputs") || strings.HasPrefix(name, mcpPrefix+"safeinputs"):
		return CategorySafeInputs
	case strings.HasPrefix(name, mcpPrefix+"github__") || strings.HasPrefix(name, mcpPrefix+"git__"):
		return CategoryGitGitHub
	case strings.HasPrefix(name, mcpPrefix+"playwright__"):
		return CategoryPlaywright
	case strings.HasPrefix(name, mcpPrefix+"serena__"):
		return CategorySerena
	case coreTools[name]:
		return CategoryCore
	case fileOpTools[name]:
		return CategoryFileOps
	case builtinTools[name]:
		return CategoryBuiltin
	case strings.HasPrefix(name, mcpPrefix):
		return CategoryMCP
	case looksLikeCustomAgent(name):
		return CategoryCustomAgent
	}
	return CategoryOther
}

// looksLikeCustomAgent matches multi-segment lower-kebab-case names that
// carry no reserved prefix. Single words never qualify.
func looksLikeCustomAgent(name string) bool {
	if !strings.Contains(name, "-") {
		return false
	}
	if strings.HasPrefix(name, mcpPrefix) || strings.HasPrefix(name, "safe-") {
		return false
	}
	for _, r := range name {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return false
		}
	}
	// Reject degenerate shapes like "-x" or "x-".
	for _, segment := range strings.Split(name, "-") {
		if segment == "" {
			return false
		}
	}
	return true
}
