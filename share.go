package nlmkit

import (
	"context"

	"github.com/randalmurphal/nlmkit/nlmcontract"
)

// ShareService controls notebook sharing and collaboration.
type ShareService struct {
	caller ToolCaller
}

// Status returns the notebook's sharing settings and collaborators.
func (s *ShareService) Status(ctx context.Context, notebookID string) (*ShareStatus, error) {
	data, err := s.caller.CallTool(ctx, nlmcontract.ToolShareStatus, map[string]any{
		"notebook_id": notebookID,
	})
	if err != nil {
		return nil, err
	}
	var status ShareStatus
	if err := decodeInto(nlmcontract.ToolShareStatus, data, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// SetPublic enables or disables public link access.
func (s *ShareService) SetPublic(ctx context.Context, notebookID string, isPublic bool) (map[string]any, error) {
	return s.caller.CallTool(ctx, nlmcontract.ToolSharePublic, map[string]any{
		"notebook_id": notebookID,
		"is_public":   isPublic,
	})
}

// Invite invites a collaborator by email. role is one of the
// nlmcontract.Role constants; empty means viewer.
func (s *ShareService) Invite(ctx context.Context, notebookID, email, role string) (map[string]any, error) {
	if role == "" {
		role = nlmcontract.RoleViewer
	}
	return s.caller.CallTool(ctx, nlmcontract.ToolShareInvite, map[string]any{
		"notebook_id": notebookID,
		"email":       email,
		"role":        role,
	})
}
