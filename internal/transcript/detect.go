package transcript

// RunOutcome carries the failure and limit signals extracted from a
// parsed transcript. These are data for the caller to act on, never
// control-flow errors.
type RunOutcome struct {
	MCPFailures []string
	MaxTurnsHit bool
	Errors      []string
}

// DetectFailures inspects the init and result entries for MCP server
// failures, execution errors and turn-limit exhaustion. turnBudget <= 0
// means no budget was configured, so MaxTurnsHit is always false;
// otherwise the limit counts as hit when turns reach the budget, not
// only when they exceed it.
func DetectFailures(entries []LogEntry, turnBudget int) RunOutcome {
	var outcome RunOutcome

	for _, entry := range entries {
		switch entry.Kind {
		case KindInit:
			for _, server := range entry.Init.MCPServers {
				if server.Failed() {
					outcome.MCPFailures = append(outcome.MCPFailures, server.Name)
				}
			}
		case KindResult:
			outcome.Errors = append(outcome.Errors, entry.Result.Errors...)
			if turnBudget > 0 && entry.Result.Turns >= turnBudget {
				outcome.MaxTurnsHit = true
			}
		}
	}
	return outcome
}
