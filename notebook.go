package nlmkit

import (
	"context"

	"github.com/randalmurphal/nlmkit/nlmcontract"
)

// notebookAliases maps alternate server key spellings.
var notebookAliases = map[string]string{
	"sources_count": "source_count",
	"modified_at":   "updated_at",
}

// NotebookService manages notebooks.
type NotebookService struct {
	caller ToolCaller
}

// List lists all notebooks, up to maxResults. A non-positive
// maxResults uses the server default of 100.
func (n *NotebookService) List(ctx context.Context, maxResults int) ([]Notebook, error) {
	if maxResults <= 0 {
		maxResults = 100
	}
	data, err := n.caller.CallTool(ctx, nlmcontract.ToolNotebookList, map[string]any{
		"max_results": maxResults,
	})
	if err != nil {
		return nil, err
	}

	var result struct {
		Notebooks []map[string]any `json:"notebooks"`
	}
	if err := decodeInto(nlmcontract.ToolNotebookList, data, &result); err != nil {
		return nil, err
	}
	notebooks := make([]Notebook, 0, len(result.Notebooks))
	for _, raw := range result.Notebooks {
		var nb Notebook
		if err := decodeInto(nlmcontract.ToolNotebookList, aliasKeys(raw, notebookAliases), &nb); err != nil {
			return nil, err
		}
		notebooks = append(notebooks, nb)
	}
	return notebooks, nil
}

// Get returns notebook details including its source list.
func (n *NotebookService) Get(ctx context.Context, notebookID string) (*NotebookDetails, error) {
	data, err := n.caller.CallTool(ctx, nlmcontract.ToolNotebookGet, map[string]any{
		"notebook_id": notebookID,
	})
	if err != nil {
		return nil, err
	}

	// The notebook may be nested under "notebook" with sources
	// alongside, or flat.
	raw := data
	if nested, ok := data["notebook"].(map[string]any); ok {
		raw = nested
	}
	var details NotebookDetails
	if err := decodeInto(nlmcontract.ToolNotebookGet, aliasKeys(raw, notebookAliases), &details); err != nil {
		return nil, err
	}
	if sources, ok := data["sources"]; ok {
		var wrapper struct {
			Sources []SourceInfo `json:"sources"`
		}
		if err := decodeInto(nlmcontract.ToolNotebookGet, map[string]any{"sources": sources}, &wrapper); err != nil {
			return nil, err
		}
		details.Sources = wrapper.Sources
	}
	return &details, nil
}

// Describe returns an AI-generated notebook summary with suggested
// topics.
func (n *NotebookService) Describe(ctx context.Context, notebookID string) (*NotebookSummary, error) {
	data, err := n.caller.CallTool(ctx, nlmcontract.ToolNotebookDescribe, map[string]any{
		"notebook_id": notebookID,
	})
	if err != nil {
		return nil, err
	}
	var summary NotebookSummary
	if err := decodeInto(nlmcontract.ToolNotebookDescribe, data, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// Create creates a new notebook. The title may be empty.
func (n *NotebookService) Create(ctx context.Context, title string) (*Notebook, error) {
	data, err := n.caller.CallTool(ctx, nlmcontract.ToolNotebookCreate, map[string]any{
		"title": title,
	})
	if err != nil {
		return nil, err
	}

	raw, ok := data["notebook"].(map[string]any)
	if !ok || len(raw) == 0 {
		// Older servers return a flat payload with notebook_id.
		raw = aliasKeys(data, map[string]string{"notebook_id": "id"})
		if _, ok := raw["title"]; !ok {
			raw["title"] = title
		}
	}
	var nb Notebook
	if err := decodeInto(nlmcontract.ToolNotebookCreate, aliasKeys(raw, notebookAliases), &nb); err != nil {
		return nil, err
	}
	return &nb, nil
}

// Rename renames a notebook. The new title must be non-empty.
func (n *NotebookService) Rename(ctx context.Context, notebookID, newTitle string) (*Notebook, error) {
	if isBlank(newTitle) {
		return nil, newValidationError("new title cannot be empty")
	}
	data, err := n.caller.CallTool(ctx, nlmcontract.ToolNotebookRename, map[string]any{
		"notebook_id": notebookID,
		"new_title":   newTitle,
	})
	if err != nil {
		return nil, err
	}

	raw := data
	if nested, ok := data["notebook"].(map[string]any); ok {
		raw = nested
	}
	merged := map[string]any{"id": notebookID, "title": newTitle}
	for k, v := range aliasKeys(raw, notebookAliases) {
		merged[k] = v
	}
	var nb Notebook
	if err := decodeInto(nlmcontract.ToolNotebookRename, merged, &nb); err != nil {
		return nil, err
	}
	return &nb, nil
}

// Delete deletes a notebook permanently. confirm must be true; the
// operation is irreversible.
func (n *NotebookService) Delete(ctx context.Context, notebookID string, confirm bool) error {
	if !confirm {
		return newValidationError("must set confirm to delete notebook; this is irreversible")
	}
	_, err := n.caller.CallTool(ctx, nlmcontract.ToolNotebookDelete, map[string]any{
		"notebook_id": notebookID,
		"confirm":     true,
	})
	return err
}
