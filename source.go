package nlmkit

import (
	"context"
	"time"

	"github.com/randalmurphal/nlmkit/nlmcontract"
)

// SourceService manages sources in notebooks.
type SourceService struct {
	caller ToolCaller
}

// AddSourceParams are the optional arguments for Add. Zero values are
// omitted from the call; DocType and WaitTimeout fall back to the
// server defaults "doc" and 120s.
type AddSourceParams struct {
	// URL for the url and youtube source types.
	URL string

	// Text is the raw text for the text source type.
	Text string

	// Title is an optional display title.
	Title string

	// FilePath is the local path for the file source type.
	FilePath string

	// DocumentID is the Drive document ID for the drive source type.
	DocumentID string

	// DocType is the Drive document type (doc, sheet, ...).
	DocType string

	// Wait blocks the server call until the source is processed.
	Wait bool

	// WaitTimeout bounds the server-side wait when Wait is set.
	WaitTimeout time.Duration
}

// Add adds a source to a notebook. sourceType is one of the
// nlmcontract.SourceType constants.
func (s *SourceService) Add(ctx context.Context, notebookID, sourceType string, params AddSourceParams) (*AddSourceResult, error) {
	docType := params.DocType
	if docType == "" {
		docType = "doc"
	}
	waitTimeout := params.WaitTimeout
	if waitTimeout <= 0 {
		waitTimeout = 120 * time.Second
	}

	data, err := s.caller.CallTool(ctx, nlmcontract.ToolSourceAdd, map[string]any{
		"notebook_id":  notebookID,
		"source_type":  sourceType,
		"url":          nilIfEmpty(params.URL),
		"text":         nilIfEmpty(params.Text),
		"title":        nilIfEmpty(params.Title),
		"file_path":    nilIfEmpty(params.FilePath),
		"document_id":  nilIfEmpty(params.DocumentID),
		"doc_type":     docType,
		"wait":         params.Wait,
		"wait_timeout": waitTimeout.Seconds(),
	})
	if err != nil {
		return nil, err
	}
	var result AddSourceResult
	if err := decodeInto(nlmcontract.ToolSourceAdd, data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListDrive lists sources with their Drive freshness status. The
// payload shape is server-defined, so the raw mapping is returned.
func (s *SourceService) ListDrive(ctx context.Context, notebookID string) (map[string]any, error) {
	return s.caller.CallTool(ctx, nlmcontract.ToolSourceListDrive, map[string]any{
		"notebook_id": notebookID,
	})
}

// SyncDrive re-syncs Drive sources with their latest content. confirm
// must be true and sourceIDs non-empty.
func (s *SourceService) SyncDrive(ctx context.Context, sourceIDs []string, confirm bool) ([]SyncResult, error) {
	if !confirm {
		return nil, newValidationError("must set confirm to sync Drive sources")
	}
	if len(sourceIDs) == 0 {
		return nil, newValidationError("source IDs cannot be empty")
	}
	data, err := s.caller.CallTool(ctx, nlmcontract.ToolSourceSyncDrive, map[string]any{
		"source_ids": sourceIDs,
		"confirm":    true,
	})
	if err != nil {
		return nil, err
	}
	var result struct {
		Results []SyncResult `json:"results"`
	}
	if err := decodeInto(nlmcontract.ToolSourceSyncDrive, data, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

// Delete deletes a source permanently. confirm must be true; the
// operation is irreversible.
func (s *SourceService) Delete(ctx context.Context, sourceID string, confirm bool) error {
	if !confirm {
		return newValidationError("must set confirm to delete source; this is irreversible")
	}
	_, err := s.caller.CallTool(ctx, nlmcontract.ToolSourceDelete, map[string]any{
		"source_id": sourceID,
		"confirm":   true,
	})
	return err
}

// Describe returns an AI-generated source summary with keywords.
func (s *SourceService) Describe(ctx context.Context, sourceID string) (*SourceSummary, error) {
	data, err := s.caller.CallTool(ctx, nlmcontract.ToolSourceDescribe, map[string]any{
		"source_id": sourceID,
	})
	if err != nil {
		return nil, err
	}
	var summary SourceSummary
	if err := decodeInto(nlmcontract.ToolSourceDescribe, data, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetContent returns the raw text content of a source.
func (s *SourceService) GetContent(ctx context.Context, sourceID string) (*SourceContent, error) {
	data, err := s.caller.CallTool(ctx, nlmcontract.ToolSourceGetContent, map[string]any{
		"source_id": sourceID,
	})
	if err != nil {
		return nil, err
	}
	var content SourceContent
	if err := decodeInto(nlmcontract.ToolSourceGetContent, data, &content); err != nil {
		return nil, err
	}
	return &content, nil
}
