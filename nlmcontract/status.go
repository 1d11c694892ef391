package nlmcontract

// Research task statuses reported by research_status.
const (
	StatusPending    = "pending"
	StatusRunning    = "running"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
	StatusNoResearch = "no_research"
	StatusSuccess    = "success"
)

// Studio artifact statuses reported by studio_status.
const (
	ArtifactStatusPending    = "pending"
	ArtifactStatusGenerating = "generating"
	ArtifactStatusCompleted  = "completed"
	ArtifactStatusFailed     = "failed"
)

// terminalResearchStatuses are statuses after which no further state
// change is expected.
var terminalResearchStatuses = map[string]bool{
	StatusCompleted:  true,
	StatusSuccess:    true,
	StatusFailed:     true,
	StatusNoResearch: true,
}

// IsTerminalResearchStatus reports whether a research task status is
// terminal. Unknown statuses are non-terminal.
func IsTerminalResearchStatus(status string) bool {
	return terminalResearchStatuses[status]
}
