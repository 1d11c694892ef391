package nlmkit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatAsk(t *testing.T) {
	mock := NewMockCaller(map[string]any{
		"answer":          "Raft elects a leader per term.",
		"conversation_id": "conv1",
		"citations": []any{
			map[string]any{"source_id": "src1", "excerpt": "leader election"},
		},
	})
	client := NewWithCaller(mock)

	resp, err := client.Chat.Ask(context.Background(), "nb1", "How does Raft elect leaders?")
	require.NoError(t, err)
	assert.Equal(t, "Raft elects a leader per term.", resp.Answer)
	assert.Equal(t, "conv1", resp.ConversationID)
	require.Len(t, resp.Citations, 1)
	assert.Equal(t, "src1", resp.Citations[0].SourceID)

	args := mock.LastCall().Args
	assert.Equal(t, "How does Raft elect leaders?", args["query"])
	assert.NotContains(t, args, "source_ids")
	assert.NotContains(t, args, "conversation_id")
	assert.NotContains(t, args, "timeout")
}

func TestChatAskResponseAlias(t *testing.T) {
	// Some server versions use "response" instead of "answer".
	mock := NewMockCaller(map[string]any{"response": "aliased answer"})
	client := NewWithCaller(mock)

	resp, err := client.Chat.Ask(context.Background(), "nb1", "q")
	require.NoError(t, err)
	assert.Equal(t, "aliased answer", resp.Answer)
}

func TestChatAskOptions(t *testing.T) {
	mock := NewMockCaller(map[string]any{"answer": "scoped"})
	client := NewWithCaller(mock)

	_, err := client.Chat.Ask(context.Background(), "nb1", "q",
		WithAskSources("src1", "src2"),
		WithConversation("conv1"),
		WithAskTimeout(45*time.Second),
	)
	require.NoError(t, err)

	args := mock.LastCall().Args
	assert.Equal(t, []string{"src1", "src2"}, args["source_ids"])
	assert.Equal(t, "conv1", args["conversation_id"])
	assert.Equal(t, float64(45), args["timeout"])
}

func TestChatConfigureDefaults(t *testing.T) {
	mock := NewMockCaller(map[string]any{"status": "ok"})
	client := NewWithCaller(mock)

	_, err := client.Chat.Configure(context.Background(), "nb1", ChatConfig{})
	require.NoError(t, err)

	args := mock.LastCall().Args
	assert.Equal(t, "default", args["goal"])
	assert.Equal(t, "default", args["response_length"])
	assert.NotContains(t, args, "custom_prompt")
}

func TestChatConfigureCustom(t *testing.T) {
	mock := NewMockCaller(map[string]any{"status": "ok"})
	client := NewWithCaller(mock)

	_, err := client.Chat.Configure(context.Background(), "nb1", ChatConfig{
		Goal:           "custom",
		CustomPrompt:   "Answer like a historian.",
		ResponseLength: "longer",
	})
	require.NoError(t, err)

	args := mock.LastCall().Args
	assert.Equal(t, "custom", args["goal"])
	assert.Equal(t, "Answer like a historian.", args["custom_prompt"])
	assert.Equal(t, "longer", args["response_length"])
}
