package nlmkit

import (
	"context"

	"github.com/randalmurphal/nlmkit/nlmcontract"
)

// NoteService manages notes. The server multiplexes all note
// operations over a single action-dispatched tool.
type NoteService struct {
	caller ToolCaller
}

// Create creates a note. title may be empty.
func (n *NoteService) Create(ctx context.Context, notebookID, content, title string) (map[string]any, error) {
	return n.caller.CallTool(ctx, nlmcontract.ToolNote, map[string]any{
		"notebook_id": notebookID,
		"action":      nlmcontract.NoteActionCreate,
		"content":     content,
		"title":       nilIfEmpty(title),
	})
}

// List lists the notes in a notebook.
func (n *NoteService) List(ctx context.Context, notebookID string) ([]Note, error) {
	data, err := n.caller.CallTool(ctx, nlmcontract.ToolNote, map[string]any{
		"notebook_id": notebookID,
		"action":      nlmcontract.NoteActionList,
	})
	if err != nil {
		return nil, err
	}
	var result struct {
		Notes []Note `json:"notes"`
	}
	if err := decodeInto(nlmcontract.ToolNote, data, &result); err != nil {
		return nil, err
	}
	return result.Notes, nil
}

// Update updates a note's content and/or title. Empty fields are left
// unchanged.
func (n *NoteService) Update(ctx context.Context, notebookID, noteID, content, title string) (map[string]any, error) {
	return n.caller.CallTool(ctx, nlmcontract.ToolNote, map[string]any{
		"notebook_id": notebookID,
		"action":      nlmcontract.NoteActionUpdate,
		"note_id":     noteID,
		"content":     nilIfEmpty(content),
		"title":       nilIfEmpty(title),
	})
}

// Delete deletes a note. confirm must be true.
func (n *NoteService) Delete(ctx context.Context, notebookID, noteID string, confirm bool) error {
	if !confirm {
		return newValidationError("must set confirm to delete note")
	}
	_, err := n.caller.CallTool(ctx, nlmcontract.ToolNote, map[string]any{
		"notebook_id": notebookID,
		"action":      nlmcontract.NoteActionDelete,
		"note_id":     noteID,
		"confirm":     true,
	})
	return err
}
