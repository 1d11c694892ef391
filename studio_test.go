package nlmkit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/nlmkit/nlmcontract"
)

func TestStudioCreateRequiresConfirm(t *testing.T) {
	mock := NewMockCaller()
	client := NewWithCaller(mock)

	_, err := client.Studio.Create(context.Background(), "nb1", nlmcontract.ArtifactAudio, StudioCreateParams{})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Equal(t, 0, mock.CallCount())
}

func TestStudioCreateDefaults(t *testing.T) {
	mock := NewMockCaller(map[string]any{"artifact_id": "art1"})
	client := NewWithCaller(mock)

	_, err := client.Studio.Create(context.Background(), "nb1", nlmcontract.ArtifactAudio, StudioCreateParams{
		Confirm: true,
	})
	require.NoError(t, err)

	args := mock.LastCall().Args
	assert.Equal(t, "audio", args["artifact_type"])
	assert.Equal(t, true, args["confirm"])
	assert.Equal(t, "deep_dive", args["audio_format"])
	assert.Equal(t, "explainer", args["video_format"])
	assert.Equal(t, "landscape", args["orientation"])
	assert.Equal(t, "detailed_deck", args["slide_format"])
	assert.Equal(t, "Briefing Doc", args["report_format"])
	assert.Equal(t, 2, args["question_count"])
	assert.Equal(t, "medium", args["difficulty"])
	assert.Equal(t, "en", args["language"])
	assert.NotContains(t, args, "source_ids")
}

func TestStudioCreateOverrides(t *testing.T) {
	mock := NewMockCaller(map[string]any{})
	client := NewWithCaller(mock)

	_, err := client.Studio.Create(context.Background(), "nb1", nlmcontract.ArtifactQuiz, StudioCreateParams{
		Confirm:       true,
		SourceIDs:     []string{"src1"},
		QuestionCount: 10,
		Difficulty:    "hard",
		Language:      "de",
	})
	require.NoError(t, err)

	args := mock.LastCall().Args
	assert.Equal(t, "quiz", args["artifact_type"])
	assert.Equal(t, []string{"src1"}, args["source_ids"])
	assert.Equal(t, 10, args["question_count"])
	assert.Equal(t, "hard", args["difficulty"])
	assert.Equal(t, "de", args["language"])
}

func TestStudioStatus(t *testing.T) {
	mock := NewMockCaller(map[string]any{
		"artifacts": []any{
			map[string]any{"artifact_id": "art1", "type": "audio", "status": "completed"},
		},
		"total":       float64(1),
		"completed":   float64(1),
		"in_progress": float64(0),
	})
	client := NewWithCaller(mock)

	status, err := client.Studio.Status(context.Background(), "nb1")
	require.NoError(t, err)
	require.Len(t, status.Artifacts, 1)
	assert.Equal(t, "art1", status.Artifacts[0].ArtifactID)
	assert.Equal(t, 1, status.Total)
	assert.Equal(t, "status", mock.LastCall().Args["action"])
}

func TestStudioStatusSummaryEnvelope(t *testing.T) {
	mock := NewMockCaller(map[string]any{
		"artifacts": []any{
			map[string]any{"artifact_id": "art1", "type": "video", "status": "generating"},
		},
		"summary": map[string]any{
			"total":       float64(4),
			"completed":   float64(2),
			"in_progress": float64(2),
		},
		"notebook_url": "https://notebooklm.google.com/notebook/nb1",
	})
	client := NewWithCaller(mock)

	status, err := client.Studio.Status(context.Background(), "nb1")
	require.NoError(t, err)
	assert.Equal(t, 4, status.Total)
	assert.Equal(t, 2, status.Completed)
	assert.Equal(t, 2, status.InProgress)
	assert.Len(t, status.Artifacts, 1)
	assert.Equal(t, "https://notebooklm.google.com/notebook/nb1", status.NotebookURL)
}

func TestStudioStatusRename(t *testing.T) {
	mock := NewMockCaller(map[string]any{})
	client := NewWithCaller(mock)

	_, err := client.Studio.Status(context.Background(), "nb1",
		WithArtifact("art1"),
		WithRename("Better Name"),
	)
	require.NoError(t, err)

	args := mock.LastCall().Args
	assert.Equal(t, "rename", args["action"])
	assert.Equal(t, "art1", args["artifact_id"])
	assert.Equal(t, "Better Name", args["new_title"])
}

func TestStudioDeleteRequiresConfirm(t *testing.T) {
	mock := NewMockCaller()
	client := NewWithCaller(mock)

	err := client.Studio.Delete(context.Background(), "nb1", "art1", false)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	require.NoError(t, client.Studio.Delete(context.Background(), "nb1", "art1", true))
	assert.Equal(t, "art1", mock.LastCall().Args["artifact_id"])
}
