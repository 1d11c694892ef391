package nlmkit

import (
	"encoding/json"
	"strings"
)

// Typed records decoded from tool results. Missing and extra fields
// are tolerated; type mismatches fail with a validation error at the
// decode boundary rather than propagating untyped data. Timestamps are
// kept as strings because the server's format is not part of the
// contract.

// Notebook is a NotebookLM notebook.
type Notebook struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	SourceCount int    `json:"source_count"`
	URL         string `json:"url,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
	Ownership   string `json:"ownership,omitempty"`
	IsShared    bool   `json:"is_shared,omitempty"`
}

// SourceInfo is minimal source info attached to notebook details.
type SourceInfo struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Type       string `json:"type,omitempty"`
	Stale      bool   `json:"stale,omitempty"`
	DriveDocID string `json:"drive_doc_id,omitempty"`
}

// NotebookDetails is a notebook with its source list.
type NotebookDetails struct {
	Notebook
	Sources []SourceInfo `json:"sources,omitempty"`
}

// NotebookSummary is an AI-generated notebook summary.
type NotebookSummary struct {
	Summary         string   `json:"summary"`
	SuggestedTopics []string `json:"suggested_topics,omitempty"`
}

// SourceContent is the raw text content of a source.
type SourceContent struct {
	Content    string `json:"content"`
	Title      string `json:"title,omitempty"`
	SourceType string `json:"source_type,omitempty"`
	CharCount  int    `json:"char_count,omitempty"`
}

// SourceSummary is an AI-generated source summary with keywords.
type SourceSummary struct {
	Summary  string   `json:"summary"`
	Keywords []string `json:"keywords,omitempty"`
}

// AddSourceResult is the result of adding a source.
type AddSourceResult struct {
	SourceType string `json:"source_type"`
	SourceID   string `json:"source_id"`
	Title      string `json:"title"`
	Ready      bool   `json:"ready,omitempty"`
}

// SyncResult is the per-source result of a Drive sync.
type SyncResult struct {
	SourceID string `json:"source_id"`
	Synced   bool   `json:"synced"`
	Error    string `json:"error,omitempty"`
}

// Citation is a citation from a source in a chat answer.
type Citation struct {
	SourceID    string `json:"source_id,omitempty"`
	SourceTitle string `json:"source_title,omitempty"`
	Excerpt     string `json:"excerpt,omitempty"`
	URL         string `json:"url,omitempty"`
}

// ChatResponse is the response to a notebook query.
type ChatResponse struct {
	Answer         string           `json:"answer"`
	ConversationID string           `json:"conversation_id,omitempty"`
	Citations      []Citation       `json:"citations,omitempty"`
	SourcesUsed    []map[string]any `json:"sources_used,omitempty"`
}

// ResearchTask is a research task's status snapshot. A new value
// replaces it on each poll.
type ResearchTask struct {
	TaskID       string           `json:"task_id,omitempty"`
	NotebookID   string           `json:"notebook_id,omitempty"`
	Query        string           `json:"query,omitempty"`
	Source       string           `json:"source,omitempty"`
	Mode         string           `json:"mode,omitempty"`
	Status       string           `json:"status"`
	SourcesFound int              `json:"sources_found,omitempty"`
	Report       string           `json:"report,omitempty"`
	Sources      []map[string]any `json:"sources,omitempty"`
	Message      string           `json:"message,omitempty"`
}

// ResearchImportResult is the result of importing discovered sources.
type ResearchImportResult struct {
	NotebookID      string `json:"notebook_id"`
	ImportedCount   int    `json:"imported_count"`
	ImportedSources []any  `json:"imported_sources,omitempty"`
	Message         string `json:"message,omitempty"`
}

// ArtifactInfo is a Studio artifact.
type ArtifactInfo struct {
	ArtifactID string `json:"artifact_id"`
	Type       string `json:"type"`
	Title      string `json:"title,omitempty"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at,omitempty"`
	URL        string `json:"url,omitempty"`
}

// StudioStatus is the Studio artifact listing with counts.
type StudioStatus struct {
	Artifacts   []ArtifactInfo `json:"artifacts,omitempty"`
	Total       int            `json:"total"`
	Completed   int            `json:"completed"`
	InProgress  int            `json:"in_progress"`
	NotebookURL string         `json:"notebook_url,omitempty"`
}

// CollaboratorInfo is a notebook collaborator.
type CollaboratorInfo struct {
	Email       string `json:"email"`
	Role        string `json:"role"`
	IsPending   bool   `json:"is_pending,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}

// ShareStatus is a notebook's sharing settings.
type ShareStatus struct {
	NotebookID        string             `json:"notebook_id,omitempty"`
	IsPublic          bool               `json:"is_public"`
	AccessLevel       string             `json:"access_level,omitempty"`
	PublicLink        string             `json:"public_link,omitempty"`
	Collaborators     []CollaboratorInfo `json:"collaborators,omitempty"`
	CollaboratorCount int                `json:"collaborator_count,omitempty"`
}

// Note is a note in a notebook.
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title,omitempty"`
	Content   string `json:"content,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// decodeInto decodes a tool result map into a typed record via a JSON
// round-trip. A type mismatch is a validation error carrying the tool
// name.
func decodeInto(tool string, data map[string]any, v any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return &Error{Kind: KindValidation, Tool: tool, Message: "encode result: " + err.Error()}
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return &Error{Kind: KindValidation, Tool: tool, Message: "decode result: " + err.Error()}
	}
	return nil
}

// aliasKeys copies alternate server key spellings onto their
// canonical names when the canonical key is absent. The input map is
// not modified.
func aliasKeys(data map[string]any, aliases map[string]string) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}
	for alt, canonical := range aliases {
		if _, ok := out[canonical]; ok {
			continue
		}
		if v, ok := out[alt]; ok {
			out[canonical] = v
			delete(out, alt)
		}
	}
	return out
}

// nilIfEmpty maps "" to nil so that optional string arguments are
// stripped before transmission instead of being sent as empty strings.
func nilIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// nilIfEmptySlice maps an empty slice to nil for the same reason.
func nilIfEmptySlice[T any](s []T) any {
	if len(s) == 0 {
		return nil
	}
	return s
}

// isBlank reports whether s is empty or whitespace-only.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
