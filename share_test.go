package nlmkit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareStatus(t *testing.T) {
	mock := NewMockCaller(map[string]any{
		"is_public":   true,
		"public_link": "https://notebooklm.google.com/notebook/nb1",
		"collaborators": []any{
			map[string]any{"email": "alice@example.com", "role": "editor"},
		},
		"collaborator_count": float64(1),
	})
	client := NewWithCaller(mock)

	status, err := client.Share.Status(context.Background(), "nb1")
	require.NoError(t, err)
	assert.True(t, status.IsPublic)
	require.Len(t, status.Collaborators, 1)
	assert.Equal(t, "alice@example.com", status.Collaborators[0].Email)
	assert.Equal(t, "editor", status.Collaborators[0].Role)
}

func TestShareSetPublic(t *testing.T) {
	mock := NewMockCaller(map[string]any{"is_public": true})
	client := NewWithCaller(mock)

	_, err := client.Share.SetPublic(context.Background(), "nb1", true)
	require.NoError(t, err)
	assert.Equal(t, true, mock.LastCall().Args["is_public"])
}

func TestShareInviteDefaultRole(t *testing.T) {
	mock := NewMockCaller(map[string]any{})
	client := NewWithCaller(mock)

	_, err := client.Share.Invite(context.Background(), "nb1", "bob@example.com", "")
	require.NoError(t, err)

	args := mock.LastCall().Args
	assert.Equal(t, "bob@example.com", args["email"])
	assert.Equal(t, "viewer", args["role"])
}
