// Package transcript parses raw agent execution logs into typed entries
// and extracts tool correlations and failure signals from them.
package transcript

// EntryKind discriminates the top-level entry variants.
type EntryKind string

const (
	KindInit      EntryKind = "init"
	KindAssistant EntryKind = "assistant"
	KindUser      EntryKind = "user"
	KindResult    EntryKind = "result"
)

// LogEntry is one event in an agent run transcript. Exactly one of the
// payload fields is set, selected by Kind.
type LogEntry struct {
	Kind    EntryKind
	Init    *InitInfo      // Kind == KindInit
	Content []ContentBlock // Kind == KindAssistant or KindUser
	Result  *ResultInfo    // Kind == KindResult
}

// InitInfo describes the session initialization entry.
type InitInfo struct {
	Model         string
	SessionID     string
	WorkingDir    string
	Tools         []string
	MCPServers    []MCPServerStatus
	SlashCommands []string
}

// MCPServerStatus reports the connection status of one MCP server at
// session start.
type MCPServerStatus struct {
	Name     string
	Status   string // "connected" or "failed"
	Error    string
	Stderr   string
	Message  string
	Reason   string
	ExitCode *int
}

// Failed reports whether the server could not be reached or initialized.
func (s MCPServerStatus) Failed() bool {
	return s.Status == "failed"
}

// ResultInfo holds the final statistics entry of a run.
type ResultInfo struct {
	Turns             int
	DurationMS        int64
	Usage             TokenUsage
	CostUSD           float64
	Errors            []string
	PermissionDenials int
}

// TokenUsage holds token counters from the result entry.
type TokenUsage struct {
	InputTokens         int
	OutputTokens        int
	CacheReadTokens     int
	CacheCreationTokens int
}

// Total returns the sum of all token counters.
func (u TokenUsage) Total() int {
	return u.InputTokens + u.OutputTokens + u.CacheReadTokens + u.CacheCreationTokens
}

// BlockType discriminates content block variants.
type BlockType string

const (
	BlockText       BlockType = "text"
	BlockToolUse    BlockType = "tool_use"
	BlockToolResult BlockType = "tool_result"
)

// ContentBlock is one block inside an assistant or user entry. Exactly one
// of the payload fields is set, selected by Type.
type ContentBlock struct {
	Type       BlockType
	Text       string
	ToolUse    *ToolUse
	ToolResult *ToolResult
}

// ToolUse is an agent-initiated tool invocation.
type ToolUse struct {
	ID    string
	Name  string
	Input map[string]any
}

// ToolResult is the outcome of a prior tool invocation, referenced by
// ToolUseID. The referenced invocation may never appear; orphan results
// are tolerated.
type ToolResult struct {
	ToolUseID  string
	IsError    bool
	Content    any
	DurationMS int64
}
