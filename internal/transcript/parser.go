package transcript

import (
	"encoding/json"
	"strings"
)

// ParseLogEntries parses a raw agent log into an ordered entry sequence.
// Three formats are attempted in order:
//
//  1. the whole text is a single JSON array of entries,
//  2. newline-delimited JSON objects, one entry per line,
//  3. a line that itself starts with an array marker is decoded as a
//     batch of entries and spliced in sequence.
//
// Free-text diagnostic lines interleaved with structured lines are
// expected and skipped silently. Returns nil when no strategy recognizes
// the input at all; a recognized but entry-free input yields an empty,
// non-nil slice. Entry order always matches input order.
func ParseLogEntries(raw string) []LogEntry {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var values []map[string]any
		if err := json.Unmarshal([]byte(trimmed), &values); err == nil {
			entries := make([]LogEntry, 0, len(values))
			for _, v := range values {
				if entry, ok := decodeEntry(v); ok {
					entries = append(entries, entry)
				}
			}
			return entries
		}
	}

	var entries []LogEntry
	recognized := false
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") {
			var values []map[string]any
			if err := json.Unmarshal([]byte(line), &values); err != nil {
				continue
			}
			recognized = true
			for _, v := range values {
				if entry, ok := decodeEntry(v); ok {
					entries = append(entries, entry)
				}
			}
			continue
		}

		if !strings.HasPrefix(line, "{") {
			continue
		}
		var value map[string]any
		if err := json.Unmarshal([]byte(line), &value); err != nil {
			continue
		}
		recognized = true
		if entry, ok := decodeEntry(value); ok {
			entries = append(entries, entry)
		}
	}

	if !recognized {
		return nil
	}
	if entries == nil {
		entries = []LogEntry{}
	}
	return entries
}

// decodeEntry normalizes one decoded JSON value into a LogEntry. Values
// without a recognizable discriminator are dropped as diagnostic noise.
func decodeEntry(v map[string]any) (LogEntry, bool) {
	kind := stringField(v, "kind")
	if kind == "" {
		kind = stringField(v, "type")
	}

	// Claude's verbose stream encodes initialization as a system entry
	// with subtype "init".
	if kind == "system" {
		if stringField(v, "subtype") != "init" {
			return LogEntry{}, false
		}
		kind = "init"
	}

	switch EntryKind(kind) {
	case KindInit:
		return LogEntry{Kind: KindInit, Init: decodeInit(v)}, true
	case KindAssistant:
		return LogEntry{Kind: KindAssistant, Content: decodeContent(v)}, true
	case KindUser:
		return LogEntry{Kind: KindUser, Content: decodeContent(v)}, true
	case KindResult:
		return LogEntry{Kind: KindResult, Result: decodeResult(v)}, true
	}
	return LogEntry{}, false
}

func decodeInit(v map[string]any) *InitInfo {
	info := &InitInfo{
		Model:         stringField(v, "model"),
		SessionID:     stringField(v, "session_id"),
		WorkingDir:    stringField(v, "cwd"),
		Tools:         stringSlice(v["tools"]),
		SlashCommands: stringSlice(v["slash_commands"]),
	}
	if info.WorkingDir == "" {
		info.WorkingDir = stringField(v, "working_dir")
	}

	servers, _ := v["mcp_servers"].([]any)
	for _, raw := range servers {
		sv, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		status := MCPServerStatus{
			Name:    stringField(sv, "name"),
			Status:  stringField(sv, "status"),
			Error:   stringField(sv, "error"),
			Stderr:  stringField(sv, "stderr"),
			Message: stringField(sv, "message"),
			Reason:  stringField(sv, "reason"),
		}
		if code, ok := numberField(sv, "exitCode"); ok {
			exit := int(code)
			status.ExitCode = &exit
		}
		info.MCPServers = append(info.MCPServers, status)
	}
	return info
}

// decodeContent extracts content blocks, reading either a top-level
// "content" field or one nested under "message".
func decodeContent(v map[string]any) []ContentBlock {
	content := v["content"]
	if content == nil {
		if msg, ok := v["message"].(map[string]any); ok {
			content = msg["content"]
		}
	}

	// A bare string is a single text block.
	if text, ok := content.(string); ok {
		return []ContentBlock{{Type: BlockText, Text: text}}
	}

	items, ok := content.([]any)
	if !ok {
		return nil
	}

	var blocks []ContentBlock
	for _, raw := range items {
		bv, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		switch stringField(bv, "type") {
		case "text":
			blocks = append(blocks, ContentBlock{Type: BlockText, Text: stringField(bv, "text")})
		case "tool_use":
			input, _ := bv["input"].(map[string]any)
			blocks = append(blocks, ContentBlock{Type: BlockToolUse, ToolUse: &ToolUse{
				ID:    stringField(bv, "id"),
				Name:  stringField(bv, "name"),
				Input: input,
			}})
		case "tool_result":
			result := &ToolResult{
				ToolUseID: stringField(bv, "tool_use_id"),
				Content:   bv["content"],
			}
			if isErr, ok := bv["is_error"].(bool); ok {
				result.IsError = isErr
			}
			if ms, ok := numberField(bv, "duration_ms"); ok {
				result.DurationMS = int64(ms)
			}
			blocks = append(blocks, ContentBlock{Type: BlockToolResult, ToolResult: result})
		}
	}
	return blocks
}

func decodeResult(v map[string]any) *ResultInfo {
	info := &ResultInfo{}

	if turns, ok := numberField(v, "num_turns"); ok {
		info.Turns = int(turns)
	} else if turns, ok := numberField(v, "turns"); ok {
		info.Turns = int(turns)
	}
	if ms, ok := numberField(v, "duration_ms"); ok {
		info.DurationMS = int64(ms)
	}
	if cost, ok := numberField(v, "total_cost_usd"); ok {
		info.CostUSD = cost
	} else if cost, ok := numberField(v, "cost_usd"); ok {
		info.CostUSD = cost
	}

	if usage, ok := v["usage"].(map[string]any); ok {
		if n, ok := numberField(usage, "input_tokens"); ok {
			info.Usage.InputTokens = int(n)
		}
		if n, ok := numberField(usage, "output_tokens"); ok {
			info.Usage.OutputTokens = int(n)
		}
		if n, ok := numberField(usage, "cache_read_input_tokens"); ok {
			info.Usage.CacheReadTokens = int(n)
		}
		if n, ok := numberField(usage, "cache_creation_input_tokens"); ok {
			info.Usage.CacheCreationTokens = int(n)
		}
	}

	info.Errors = stringSlice(v["errors"])
	if info.Errors == nil {
		if msg := stringField(v, "error"); msg != "" {
			info.Errors = []string{msg}
		}
	}

	// Permission denials arrive either as a count or as a list.
	if n, ok := numberField(v, "permission_denials"); ok {
		info.PermissionDenials = int(n)
	} else if denials, ok := v["permission_denials"].([]any); ok {
		info.PermissionDenials = len(denials)
	}

	return info
}

func stringField(v map[string]any, key string) string {
	s, _ := v[key].(string)
	return s
}

func numberField(v map[string]any, key string) (float64, bool) {
	n, ok := v[key].(float64)
	return n, ok
}

func stringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
