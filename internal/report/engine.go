package report

import (
	"fmt"

	"github.com/strawgate/runreport/internal/transcript"
)

// EngineResult is the uniform product of any engine's log parse.
type EngineResult struct {
	Markdown         string
	CommandSummary   string
	SizeLimitReached bool
	MCPFailures      []string
	MaxTurnsHit      bool
	LogEntries       []transcript.LogEntry

	// Extras carries engine-specific fields passed through unchanged.
	// Failed parses record the failure message under "parse_error".
	Extras map[string]any
}

// ParseFunc is an engine-specific raw-parse function.
type ParseFunc func(raw string) (*EngineResult, error)

// Wrap invokes an engine's parse function under a uniform contract: a
// successful result passes through unchanged, while any returned error
// or recovered panic becomes a fixed-shape result whose markdown carries
// a labeled error block. One engine's parsing bug therefore never aborts
// the whole reporting step.
func Wrap(parse ParseFunc, engineLabel, raw string) (result *EngineResult) {
	defer func() {
		if r := recover(); r != nil {
			result = errorResult(engineLabel, fmt.Sprintf("%v", r))
		}
	}()

	result, err := parse(raw)
	if err != nil {
		return errorResult(engineLabel, err.Error())
	}
	if result == nil {
		return errorResult(engineLabel, "engine returned no result")
	}
	return result
}

func errorResult(engineLabel, message string) *EngineResult {
	return &EngineResult{
		Markdown:    fmt.Sprintf("```\nError parsing %s log: %s\n```\n", engineLabel, message),
		MCPFailures: []string{},
		LogEntries:  []transcript.LogEntry{},
		Extras:      map[string]any{"parse_error": message},
	}
}
