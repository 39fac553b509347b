package transcript

// bookkeepingTools are internal file-manipulation tools excluded from
// condensed command summaries. They still appear in full transcript
// renderings when a formatter chooses to emit them.
var bookkeepingTools = map[string]bool{
	"Read":         true,
	"Write":        true,
	"Edit":         true,
	"MultiEdit":    true,
	"NotebookEdit": true,
	"TodoWrite":    true,
}

// IsBookkeepingTool reports whether a tool is excluded from command
// summaries.
func IsBookkeepingTool(name string) bool {
	return bookkeepingTools[name]
}

// CorrelatedCall pairs a tool invocation with its eventual result, if one
// appeared later in the transcript.
type CorrelatedCall struct {
	Use    ToolUse
	Result *ToolResult
}

// Succeeded reports whether the call completed without an explicit error
// indicator. A call with no result is treated as successful; result
// content is never consulted to reclassify an explicit flag.
func (c CorrelatedCall) Succeeded() bool {
	return c.Result == nil || !c.Result.IsError
}

// ToolCorrelation maps tool-use identifiers to their results across a
// whole transcript, preserving first-seen invocation order.
type ToolCorrelation struct {
	Calls   []CorrelatedCall
	results map[string]*ToolResult
}

// CorrelateTools walks all assistant and user content blocks in entry
// order and pairs each tool_use with its tool_result by identifier.
// Orphan results and unresolved uses are both tolerated.
func CorrelateTools(entries []LogEntry) *ToolCorrelation {
	c := &ToolCorrelation{results: make(map[string]*ToolResult)}

	var uses []ToolUse
	for _, entry := range entries {
		if entry.Kind != KindAssistant && entry.Kind != KindUser {
			continue
		}
		for _, block := range entry.Content {
			switch block.Type {
			case BlockToolUse:
				uses = append(uses, *block.ToolUse)
			case BlockToolResult:
				if id := block.ToolResult.ToolUseID; id != "" {
					c.results[id] = block.ToolResult
				}
			}
		}
	}

	c.Calls = make([]CorrelatedCall, 0, len(uses))
	for _, use := range uses {
		c.Calls = append(c.Calls, CorrelatedCall{Use: use, Result: c.results[use.ID]})
	}
	return c
}

// ResultFor returns the result matching a tool-use identifier, or nil if
// none was seen.
func (c *ToolCorrelation) ResultFor(id string) *ToolResult {
	return c.results[id]
}

// SummaryCalls returns the correlated calls with bookkeeping tools
// filtered out, in first-seen order.
func (c *ToolCorrelation) SummaryCalls() []CorrelatedCall {
	var out []CorrelatedCall
	for _, call := range c.Calls {
		if IsBookkeepingTool(call.Use.Name) {
			continue
		}
		out = append(out, call)
	}
	return out
}
