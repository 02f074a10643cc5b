package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/opencane/edged/pkg/policy"
)

// MessagesClient is the subset of the Anthropic SDK used by the loop,
// satisfied by *sdk.MessageService and by test stubs.
type MessagesClient interface {
	New(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
}

// AnthropicConfig tunes the model call.
type AnthropicConfig struct {
	Model         string
	MaxTokens     int
	Temperature   float64
	MaxIterations int
}

func (c AnthropicConfig) withDefaults() AnthropicConfig {
	if c.Model == "" {
		c.Model = "claude-sonnet-4-5"
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = 1024
	}
	if c.MaxIterations <= 0 {
		c.MaxIterations = 8
	}
	return c
}

// AnthropicLoop implements Loop on the Claude Messages API. Tool calls are
// gated twice: against the turn's effective allowed set, and against the
// tool domain manager's channel and per-turn call budgets.
type AnthropicLoop struct {
	msg      MessagesClient
	executor ToolExecutor
	domains  *policy.ToolDomainManager
	cfg      AnthropicConfig
	logger   *slog.Logger
}

// NewAnthropicLoop wires the loop. executor and domains may be nil when the
// caller never advertises tools.
func NewAnthropicLoop(msg MessagesClient, executor ToolExecutor, domains *policy.ToolDomainManager, cfg AnthropicConfig, logger *slog.Logger) *AnthropicLoop {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnthropicLoop{
		msg:      msg,
		executor: executor,
		domains:  domains,
		cfg:      cfg.withDefaults(),
		logger:   logger.With("component", "agent.loop"),
	}
}

// NewAnthropicLoopFromAPIKey builds the loop on a real SDK client.
func NewAnthropicLoopFromAPIKey(apiKey string, executor ToolExecutor, domains *policy.ToolDomainManager, cfg AnthropicConfig, logger *slog.Logger) (*AnthropicLoop, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic api key is required")
	}
	client := sdk.NewClient(option.WithAPIKey(apiKey))
	return NewAnthropicLoop(&client.Messages, executor, domains, cfg, logger), nil
}

// RunTurn implements Loop.
func (l *AnthropicLoop) RunTurn(ctx context.Context, req TurnRequest) (TurnResult, error) {
	if len(req.Messages) == 0 {
		return TurnResult{}, fmt.Errorf("at least one message is required")
	}
	maxIterations := req.MaxIterations
	if maxIterations <= 0 {
		maxIterations = l.cfg.MaxIterations
	}

	effective := l.effectiveTools(req)
	conversation := encodeConversation(req.Messages)

	var result TurnResult
	var text strings.Builder
	callCounts := make(map[string]int)

	for iteration := 0; iteration < maxIterations; iteration++ {
		params := sdk.MessageNewParams{
			Model:     sdk.Model(l.cfg.Model),
			MaxTokens: int64(l.cfg.MaxTokens),
			Messages:  conversation,
		}
		if req.System != "" {
			params.System = []sdk.TextBlockParam{{Text: req.System}}
		}
		if len(effective) > 0 {
			params.Tools = encodeTools(effective)
		}
		if l.cfg.Temperature > 0 {
			params.Temperature = sdk.Float(l.cfg.Temperature)
		}
		if req.RequireToolUse && iteration == 0 && len(effective) > 0 {
			params.ToolChoice = sdk.ToolChoiceUnionParam{OfAny: &sdk.ToolChoiceAnyParam{}}
		}

		msg, err := l.msg.New(ctx, params)
		if err != nil {
			return result, fmt.Errorf("anthropic messages.new: %w", err)
		}
		result.Iterations = iteration + 1
		result.StopReason = string(msg.StopReason)

		var assistantBlocks []sdk.ContentBlockParamUnion
		var toolUses []sdk.ContentBlockUnion
		for _, block := range msg.Content {
			switch block.Type {
			case "text":
				if block.Text == "" {
					continue
				}
				text.WriteString(block.Text)
				if req.OnText != nil {
					req.OnText(block.Text)
				}
				assistantBlocks = append(assistantBlocks, sdk.NewTextBlock(block.Text))
			case "tool_use":
				toolUses = append(toolUses, block)
				assistantBlocks = append(assistantBlocks, sdk.NewToolUseBlock(block.ID, block.Input, block.Name))
			}
		}

		if len(toolUses) == 0 {
			result.Text = text.String()
			return result, nil
		}
		result.UsedTool = true

		conversation = append(conversation, sdk.NewAssistantMessage(assistantBlocks...))
		resultBlocks := make([]sdk.ContentBlockParamUnion, 0, len(toolUses))
		for _, use := range toolUses {
			record := l.executeToolCall(ctx, req, use, effective, callCounts)
			result.ToolCalls = append(result.ToolCalls, record)
			resultBlocks = append(resultBlocks, sdk.NewToolResultBlock(record.ID, record.Result, record.IsError))
		}
		conversation = append(conversation, sdk.NewUserMessage(resultBlocks...))
	}

	result.Text = text.String()
	result.StopReason = "max_iterations"
	return result, nil
}

// effectiveTools filters the advertised tools by the allowed set minus the
// blocked set.
func (l *AnthropicLoop) effectiveTools(req TurnRequest) []ToolDefinition {
	out := make([]ToolDefinition, 0, len(req.Tools))
	for _, def := range req.Tools {
		if def.Name == "" {
			continue
		}
		if req.AllowedToolNames != nil && !req.AllowedToolNames[def.Name] {
			continue
		}
		if req.BlockedToolNames[def.Name] {
			continue
		}
		out = append(out, def)
	}
	return out
}

func (l *AnthropicLoop) executeToolCall(ctx context.Context, req TurnRequest, use sdk.ContentBlockUnion, effective []ToolDefinition, callCounts map[string]int) ToolCallRecord {
	record := ToolCallRecord{ID: use.ID, Name: use.Name, Input: use.Input}

	advertised := false
	for _, def := range effective {
		if def.Name == use.Name {
			advertised = true
			break
		}
	}
	if !advertised {
		record.Denied = true
		record.IsError = true
		record.DenyReason = "tool_not_allowed"
		record.Result = encodeToolError(use.Name, "tool_not_allowed", "tool is outside the allowed set for this turn")
		l.logger.Warn("tool call denied", "tool", use.Name, "session_id", req.SessionID, "reason", "tool_not_allowed")
		return record
	}
	if l.domains != nil {
		if ok, reason := l.domains.CanExecute(use.Name, req.Channel, req.IsSystem, callCounts); !ok {
			record.Denied = true
			record.IsError = true
			record.DenyReason = reason
			record.Result = encodeToolError(use.Name, "tool_not_allowed", reason)
			l.logger.Warn("tool call denied", "tool", use.Name, "session_id", req.SessionID, "reason", reason)
			return record
		}
	}
	callCounts[use.Name]++

	if l.executor == nil {
		record.IsError = true
		record.Result = encodeToolError(use.Name, "tool_unavailable", "no tool executor configured")
		return record
	}
	output, err := l.executor.Execute(ctx, use.Name, json.RawMessage(use.Input))
	if err != nil {
		record.IsError = true
		record.Result = encodeToolError(use.Name, "tool_failed", err.Error())
		l.logger.Warn("tool call failed", "tool", use.Name, "session_id", req.SessionID, "error", err)
		return record
	}
	record.Result = output
	return record
}

func encodeConversation(messages []Message) []sdk.MessageParam {
	out := make([]sdk.MessageParam, 0, len(messages))
	for _, m := range messages {
		if strings.TrimSpace(m.Content) == "" {
			continue
		}
		switch m.Role {
		case RoleAssistant:
			out = append(out, sdk.NewAssistantMessage(sdk.NewTextBlock(m.Content)))
		default:
			out = append(out, sdk.NewUserMessage(sdk.NewTextBlock(m.Content)))
		}
	}
	return out
}

func encodeTools(defs []ToolDefinition) []sdk.ToolUnionParam {
	out := make([]sdk.ToolUnionParam, 0, len(defs))
	for _, def := range defs {
		schema := sdk.ToolInputSchemaParam{}
		if def.InputSchema != nil {
			schema.ExtraFields = def.InputSchema
		}
		u := sdk.ToolUnionParamOfTool(schema, def.Name)
		if u.OfTool != nil && def.Description != "" {
			u.OfTool.Description = sdk.String(def.Description)
		}
		out = append(out, u)
	}
	return out
}
