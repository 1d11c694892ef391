package nlmkit

import (
	"context"

	"github.com/randalmurphal/nlmkit/nlmcontract"
)

// StudioService creates and manages Studio artifacts (audio and video
// overviews, infographics, slide decks, reports, flashcards, quizzes,
// data tables, mind maps).
type StudioService struct {
	caller ToolCaller
}

// StudioCreateParams configure artifact generation. Zero-valued fields
// fall back to the server defaults; only the fields relevant to the
// artifact type are honored by the server.
type StudioCreateParams struct {
	// Confirm must be true: creation triggers content generation.
	Confirm bool

	// SourceIDs optionally restricts generation to specific sources.
	SourceIDs []string

	AudioFormat string // deep_dive, brief, critique, debate
	AudioLength string // short, default, long

	VideoFormat string // explainer, brief
	VisualStyle string // auto_select, classic, whiteboard, ...

	Orientation string // infographic: landscape, portrait, square
	DetailLevel string // infographic: concise, standard, detailed

	SlideFormat string // detailed_deck, presenter_slides
	SlideLength string // short, default

	ReportFormat string // "Briefing Doc", "Study Guide", ...
	CustomPrompt string

	QuestionCount int    // flashcards/quiz
	Difficulty    string // easy, medium, hard

	Language    string
	FocusPrompt string // mind map focus
	Title       string
	Description string
}

// studio_create sends every knob on each call; the server picks out
// the ones relevant to the artifact type.
func (p StudioCreateParams) args(notebookID, artifactType string) map[string]any {
	questionCount := p.QuestionCount
	if questionCount <= 0 {
		questionCount = 2
	}
	title := p.Title
	if title == "" {
		title = "Mind Map"
	}
	return map[string]any{
		"notebook_id":    notebookID,
		"artifact_type":  artifactType,
		"source_ids":     nilIfEmptySlice(p.SourceIDs),
		"confirm":        true,
		"audio_format":   defaultString(p.AudioFormat, "deep_dive"),
		"audio_length":   defaultString(p.AudioLength, "default"),
		"video_format":   defaultString(p.VideoFormat, "explainer"),
		"visual_style":   defaultString(p.VisualStyle, "auto_select"),
		"orientation":    defaultString(p.Orientation, "landscape"),
		"detail_level":   defaultString(p.DetailLevel, "standard"),
		"slide_format":   defaultString(p.SlideFormat, "detailed_deck"),
		"slide_length":   defaultString(p.SlideLength, "default"),
		"report_format":  defaultString(p.ReportFormat, "Briefing Doc"),
		"custom_prompt":  p.CustomPrompt,
		"question_count": questionCount,
		"difficulty":     defaultString(p.Difficulty, "medium"),
		"language":       defaultString(p.Language, "en"),
		"focus_prompt":   p.FocusPrompt,
		"title":          title,
		"description":    p.Description,
	}
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// Create generates a Studio artifact. artifactType is one of the
// nlmcontract.Artifact constants. params.Confirm must be true since
// creation triggers content generation.
func (s *StudioService) Create(ctx context.Context, notebookID, artifactType string, params StudioCreateParams) (map[string]any, error) {
	if !params.Confirm {
		return nil, newValidationError("must set confirm to create studio artifact; this triggers content generation")
	}
	return s.caller.CallTool(ctx, nlmcontract.ToolStudioCreate, params.args(notebookID, artifactType))
}

// StudioStatusOption configures Status.
type StudioStatusOption func(*studioStatusOptions)

type studioStatusOptions struct {
	action     string
	artifactID string
	newTitle   string
}

// WithArtifact scopes the status call to one artifact.
func WithArtifact(artifactID string) StudioStatusOption {
	return func(o *studioStatusOptions) { o.artifactID = artifactID }
}

// WithRename renames the artifact instead of reporting status.
// Requires WithArtifact.
func WithRename(newTitle string) StudioStatusOption {
	return func(o *studioStatusOptions) {
		o.action = "rename"
		o.newTitle = newTitle
	}
}

// Status checks Studio artifact status, or renames an artifact when
// WithRename is given.
func (s *StudioService) Status(ctx context.Context, notebookID string, opts ...StudioStatusOption) (*StudioStatus, error) {
	o := studioStatusOptions{action: "status"}
	for _, opt := range opts {
		opt(&o)
	}
	data, err := s.caller.CallTool(ctx, nlmcontract.ToolStudioStatus, map[string]any{
		"notebook_id": notebookID,
		"action":      o.action,
		"artifact_id": nilIfEmpty(o.artifactID),
		"new_title":   nilIfEmpty(o.newTitle),
	})
	if err != nil {
		return nil, err
	}
	return decodeStudioStatus(data)
}

// decodeStudioStatus unwraps the optional {"summary": {...},
// "artifacts": [...]} envelope some server versions return.
func decodeStudioStatus(data map[string]any) (*StudioStatus, error) {
	if summary, ok := data["summary"].(map[string]any); ok {
		merged := map[string]any{
			"artifacts":    data["artifacts"],
			"notebook_url": data["notebook_url"],
			"total":        summary["total"],
			"completed":    summary["completed"],
			"in_progress":  summary["in_progress"],
		}
		data = merged
	}
	var status StudioStatus
	if err := decodeInto(nlmcontract.ToolStudioStatus, data, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Delete deletes a Studio artifact. confirm must be true; the
// operation is irreversible.
func (s *StudioService) Delete(ctx context.Context, notebookID, artifactID string, confirm bool) error {
	if !confirm {
		return newValidationError("must set confirm to delete artifact; this is irreversible")
	}
	_, err := s.caller.CallTool(ctx, nlmcontract.ToolStudioDelete, map[string]any{
		"notebook_id": notebookID,
		"artifact_id": artifactID,
		"confirm":     true,
	})
	return err
}
