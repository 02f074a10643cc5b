// Package agent runs LLM turns for voice and vision replies: it carries the
// conversation to the model, executes allowed tool calls, and feeds denied
// calls back to the model as structured errors.
package agent

import (
	"context"
	"encoding/json"
)

// Message is one conversation entry handed to the loop.
type Message struct {
	Role    string // "user" or "assistant"
	Content string
}

// Conversation roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ToolDefinition describes one tool advertised to the model.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema map[string]any
}

// ToolExecutor runs one tool call and returns its textual result.
type ToolExecutor interface {
	Execute(ctx context.Context, name string, input json.RawMessage) (string, error)
}

// ToolCallRecord is the audit record of one tool call within a turn.
type ToolCallRecord struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Input      json.RawMessage `json:"input,omitempty"`
	Result     string          `json:"result,omitempty"`
	IsError    bool            `json:"is_error"`
	Denied     bool            `json:"denied"`
	DenyReason string          `json:"deny_reason,omitempty"`
}

// TurnRequest is one agent turn. AllowedToolNames is the effective tool set
// computed by the caller; a tool call outside it is rejected with a
// structured error the model observes. Nil means every advertised tool is
// allowed.
type TurnRequest struct {
	SessionID        string
	Channel          string
	IsSystem         bool
	System           string
	Messages         []Message
	Tools            []ToolDefinition
	AllowedToolNames map[string]bool
	BlockedToolNames map[string]bool
	RequireToolUse   bool
	MaxIterations    int

	// OnText receives assistant text as it is produced, for TTS streaming.
	OnText func(text string)
}

// TurnResult is the completed turn.
type TurnResult struct {
	Text       string           `json:"text"`
	ToolCalls  []ToolCallRecord `json:"tool_calls,omitempty"`
	UsedTool   bool             `json:"used_tool"`
	StopReason string           `json:"stop_reason"`
	Iterations int              `json:"iterations"`
}

// Loop is the agent contract the orchestrator and task service depend on.
type Loop interface {
	RunTurn(ctx context.Context, req TurnRequest) (TurnResult, error)
}

// toolError is the structured rejection fed back to the model when a tool
// call is outside the effective set or over budget.
type toolError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Reason  string `json:"reason,omitempty"`
	Tool    string `json:"tool"`
}

func encodeToolError(tool, errCode, reason string) string {
	data, _ := json.Marshal(toolError{Error: errCode, Reason: reason, Tool: tool})
	return string(data)
}
