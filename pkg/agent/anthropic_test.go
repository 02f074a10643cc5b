package agent

import (
	"context"
	"encoding/json"
	"testing"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencane/edged/pkg/policy"
)

type stubMessages struct {
	responses []*sdk.Message
	requests  []sdk.MessageNewParams
}

func (s *stubMessages) New(_ context.Context, body sdk.MessageNewParams, _ ...option.RequestOption) (*sdk.Message, error) {
	s.requests = append(s.requests, body)
	resp := s.responses[0]
	if len(s.responses) > 1 {
		s.responses = s.responses[1:]
	}
	return resp, nil
}

type recordingExecutor struct {
	calls []string
	out   string
	err   error
}

func (r *recordingExecutor) Execute(_ context.Context, name string, _ json.RawMessage) (string, error) {
	r.calls = append(r.calls, name)
	return r.out, r.err
}

func textMessage(text string) *sdk.Message {
	return &sdk.Message{
		Content:    []sdk.ContentBlockUnion{{Type: "text", Text: text}},
		StopReason: sdk.StopReasonEndTurn,
	}
}

func toolUseMessage(id, name, input string) *sdk.Message {
	return &sdk.Message{
		Content: []sdk.ContentBlockUnion{
			{Type: "tool_use", ID: id, Name: name, Input: json.RawMessage(input)},
		},
		StopReason: sdk.StopReasonToolUse,
	}
}

func searchTool() ToolDefinition {
	return ToolDefinition{
		Name:        "mcp_web_search",
		Description: "search the web",
		InputSchema: map[string]any{"type": "object"},
	}
}

func TestRunTurnTextOnly(t *testing.T) {
	stub := &stubMessages{responses: []*sdk.Message{textMessage("前方人行道畅通。")}}
	loop := NewAnthropicLoop(stub, nil, nil, AnthropicConfig{Model: "claude-test"}, nil)

	var streamed string
	result, err := loop.RunTurn(context.Background(), TurnRequest{
		SessionID: "sess-1",
		Channel:   "hardware",
		System:    "you are a wearable assistant",
		Messages:  []Message{{Role: RoleUser, Content: "前面是什么"}},
		OnText:    func(text string) { streamed += text },
	})
	require.NoError(t, err)
	assert.Equal(t, "前方人行道畅通。", result.Text)
	assert.Equal(t, "前方人行道畅通。", streamed)
	assert.False(t, result.UsedTool)
	assert.Equal(t, 1, result.Iterations)

	require.Len(t, stub.requests, 1)
	require.Len(t, stub.requests[0].System, 1)
	assert.Equal(t, "you are a wearable assistant", stub.requests[0].System[0].Text)
}

func TestRunTurnExecutesToolThenAnswers(t *testing.T) {
	stub := &stubMessages{responses: []*sdk.Message{
		toolUseMessage("call-1", "mcp_web_search", `{"query":"weather"}`),
		textMessage("今天多云。"),
	}}
	exec := &recordingExecutor{out: `{"results":["cloudy"]}`}
	loop := NewAnthropicLoop(stub, exec, nil, AnthropicConfig{Model: "claude-test"}, nil)

	result, err := loop.RunTurn(context.Background(), TurnRequest{
		SessionID: "sess-1",
		Channel:   "hardware",
		Messages:  []Message{{Role: RoleUser, Content: "查下天气"}},
		Tools:     []ToolDefinition{searchTool()},
	})
	require.NoError(t, err)
	assert.Equal(t, "今天多云。", result.Text)
	assert.True(t, result.UsedTool)
	assert.Equal(t, 2, result.Iterations)
	assert.Equal(t, []string{"mcp_web_search"}, exec.calls)
	require.Len(t, result.ToolCalls, 1)
	assert.False(t, result.ToolCalls[0].IsError)

	// Second request carries assistant tool_use and user tool_result turns.
	require.Len(t, stub.requests, 2)
	assert.Len(t, stub.requests[1].Messages, 3)
}

func TestRunTurnDeniesToolOutsideAllowedSet(t *testing.T) {
	stub := &stubMessages{responses: []*sdk.Message{
		toolUseMessage("call-1", "exec", `{"command":"rm"}`),
		textMessage("无法执行。"),
	}}
	exec := &recordingExecutor{out: "ok"}
	loop := NewAnthropicLoop(stub, exec, nil, AnthropicConfig{Model: "claude-test"}, nil)

	result, err := loop.RunTurn(context.Background(), TurnRequest{
		SessionID:        "sess-1",
		Channel:          "hardware",
		Messages:         []Message{{Role: RoleUser, Content: "run exec"}},
		Tools:            []ToolDefinition{searchTool(), {Name: "exec", Description: "run a command"}},
		AllowedToolNames: map[string]bool{"mcp_web_search": true},
	})
	require.NoError(t, err)
	assert.Empty(t, exec.calls)
	require.Len(t, result.ToolCalls, 1)
	assert.True(t, result.ToolCalls[0].Denied)
	assert.Equal(t, "tool_not_allowed", result.ToolCalls[0].DenyReason)
	assert.Contains(t, result.ToolCalls[0].Result, "tool_not_allowed")

	// Only the allowed tool was advertised.
	require.Len(t, stub.requests[0].Tools, 1)
}

func TestRunTurnHonorsDomainCallBudget(t *testing.T) {
	stub := &stubMessages{responses: []*sdk.Message{
		{
			Content: []sdk.ContentBlockUnion{
				{Type: "tool_use", ID: "c1", Name: "spawn", Input: json.RawMessage(`{"task":"a"}`)},
				{Type: "tool_use", ID: "c2", Name: "spawn", Input: json.RawMessage(`{"task":"b"}`)},
			},
			StopReason: sdk.StopReasonToolUse,
		},
		textMessage("done"),
	}}
	exec := &recordingExecutor{out: "spawned"}
	domains := policy.NewToolDomainManager()
	domains.RegisterTool("spawn", policy.ToolPolicy{
		AllowedChannels: []string{"cli"},
		MaxCallsPerTurn: 1,
	})
	loop := NewAnthropicLoop(stub, exec, domains, AnthropicConfig{Model: "claude-test"}, nil)

	result, err := loop.RunTurn(context.Background(), TurnRequest{
		SessionID: "sess-1",
		Channel:   "cli",
		Messages:  []Message{{Role: RoleUser, Content: "spawn twice"}},
		Tools:     []ToolDefinition{{Name: "spawn", Description: "spawn a subtask"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"spawn"}, exec.calls)
	require.Len(t, result.ToolCalls, 2)
	assert.False(t, result.ToolCalls[0].Denied)
	assert.True(t, result.ToolCalls[1].Denied)
	assert.Equal(t, "call_limit_exceeded", result.ToolCalls[1].DenyReason)
}

func TestRunTurnSystemContextBlocksTool(t *testing.T) {
	stub := &stubMessages{responses: []*sdk.Message{
		toolUseMessage("c1", "spawn", `{"task":"loop"}`),
		textMessage("done"),
	}}
	exec := &recordingExecutor{out: "spawned"}
	domains := policy.NewToolDomainManager()
	domains.RegisterTool("spawn", policy.ToolPolicy{AllowedChannels: []string{"cli"}})
	loop := NewAnthropicLoop(stub, exec, domains, AnthropicConfig{Model: "claude-test"}, nil)

	result, err := loop.RunTurn(context.Background(), TurnRequest{
		SessionID: "sess-1",
		Channel:   "cli",
		IsSystem:  true,
		Messages:  []Message{{Role: RoleUser, Content: "system update"}},
		Tools:     []ToolDefinition{{Name: "spawn", Description: "spawn a subtask"}},
	})
	require.NoError(t, err)
	assert.Empty(t, exec.calls)
	require.Len(t, result.ToolCalls, 1)
	assert.Equal(t, "system_not_allowed", result.ToolCalls[0].DenyReason)
}

func TestRunTurnRequireToolUseSetsToolChoice(t *testing.T) {
	stub := &stubMessages{responses: []*sdk.Message{
		toolUseMessage("c1", "mcp_web_search", `{"query":"q"}`),
		textMessage("done"),
	}}
	exec := &recordingExecutor{out: "results"}
	loop := NewAnthropicLoop(stub, exec, nil, AnthropicConfig{Model: "claude-test"}, nil)

	result, err := loop.RunTurn(context.Background(), TurnRequest{
		SessionID:      "sess-1",
		Channel:        "hardware",
		Messages:       []Message{{Role: RoleUser, Content: "search"}},
		Tools:          []ToolDefinition{searchTool()},
		RequireToolUse: true,
	})
	require.NoError(t, err)
	assert.True(t, result.UsedTool)
	require.Len(t, stub.requests, 2)
	assert.NotNil(t, stub.requests[0].ToolChoice.OfAny)
	assert.Nil(t, stub.requests[1].ToolChoice.OfAny)
}

func TestRunTurnMaxIterations(t *testing.T) {
	stub := &stubMessages{responses: []*sdk.Message{
		toolUseMessage("c1", "mcp_web_search", `{"query":"q"}`),
	}}
	exec := &recordingExecutor{out: "results"}
	loop := NewAnthropicLoop(stub, exec, nil, AnthropicConfig{Model: "claude-test"}, nil)

	result, err := loop.RunTurn(context.Background(), TurnRequest{
		SessionID:     "sess-1",
		Channel:       "hardware",
		Messages:      []Message{{Role: RoleUser, Content: "loop forever"}},
		Tools:         []ToolDefinition{searchTool()},
		MaxIterations: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Iterations)
	assert.Equal(t, "max_iterations", result.StopReason)
	assert.Len(t, exec.calls, 3)
}
