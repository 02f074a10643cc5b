package task

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/opencane/edged/pkg/agent"
)

// Sentinel markers the executor prompts ask the model to emit.
const (
	// NoToolUsed marks a turn where the model answered without calling any
	// tool despite being required to.
	NoToolUsed = "NO_TOOL_USED"
	// MCPFallbackToken is the exact marker the MCP-only stage emits when its
	// tools cannot complete the goal.
	MCPFallbackToken = "MCP_FALLBACK_REQUIRED"
)

// Execution paths recorded in the task result.
const (
	PathMCP             = "mcp"
	PathWebExecFallback = "web_exec_fallback"
)

// ToolSource lists the currently available tool definitions. Satisfied by
// *mcptools.Provider.
type ToolSource interface {
	Definitions(ctx context.Context) ([]agent.ToolDefinition, error)
}

// AgentExecutor runs a task goal through the agent loop in two stages:
// first restricted to MCP tools with tool use required, then with the
// general web/exec tools added when the MCP stage cannot complete.
type AgentExecutor struct {
	loop  agent.Loop
	tools ToolSource
	// extraTools are the non-MCP fallback tools (web_search, web_fetch,
	// exec) advertised in the second stage.
	extraTools []agent.ToolDefinition
}

// NewAgentExecutor wires the default executor. tools may be nil when no MCP
// servers are configured; extraTools may be empty.
func NewAgentExecutor(loop agent.Loop, tools ToolSource, extraTools []agent.ToolDefinition) *AgentExecutor {
	return &AgentExecutor{loop: loop, tools: tools, extraTools: extraTools}
}

// Execute implements Executor.
func (e *AgentExecutor) Execute(ctx context.Context, goal, sessionID string) (ExecResult, error) {
	var mcpTools []agent.ToolDefinition
	if e.tools != nil {
		defs, err := e.tools.Definitions(ctx)
		if err != nil {
			return ExecResult{}, fmt.Errorf("failed to list tools: %w", err)
		}
		for _, def := range defs {
			if strings.HasPrefix(def.Name, "mcp_") {
				mcpTools = append(mcpTools, def)
			}
		}
	}

	// Stage 1: explicit MCP-only execution.
	if len(mcpTools) > 0 {
		result, err := e.loop.RunTurn(ctx, agent.TurnRequest{
			SessionID:      "hardware:" + sessionID + ":digital",
			Channel:        "hardware",
			Messages:       []agent.Message{{Role: agent.RoleUser, Content: buildMCPPrompt(goal)}},
			Tools:          mcpTools,
			RequireToolUse: true,
		})
		if err != nil {
			return ExecResult{}, err
		}
		if !shouldFallbackFromMCP(result) {
			return ExecResult{
				Text:          strings.TrimSpace(result.Text),
				ExecutionPath: PathMCP,
				AllowedTools:  toolNames(mcpTools),
			}, nil
		}
	}

	// Stage 2: web/exec fallback with MCP tools still available.
	fallbackTools := append(append([]agent.ToolDefinition{}, mcpTools...), e.extraTools...)
	result, err := e.loop.RunTurn(ctx, agent.TurnRequest{
		SessionID:      "hardware:" + sessionID + ":digital",
		Channel:        "hardware",
		Messages:       []agent.Message{{Role: agent.RoleUser, Content: buildFallbackPrompt(goal)}},
		Tools:          fallbackTools,
		RequireToolUse: true,
	})
	if err != nil {
		return ExecResult{}, err
	}

	text := strings.TrimSpace(result.Text)
	if !result.UsedTool || text == NoToolUsed {
		// Final freeform attempt without the tool-use requirement.
		result, err = e.loop.RunTurn(ctx, agent.TurnRequest{
			SessionID: "hardware:" + sessionID + ":digital",
			Channel:   "hardware",
			Messages:  []agent.Message{{Role: agent.RoleUser, Content: goal}},
			Tools:     fallbackTools,
		})
		if err != nil {
			return ExecResult{}, err
		}
		text = strings.TrimSpace(result.Text)
	}

	return ExecResult{
		Text:          text,
		ExecutionPath: PathWebExecFallback,
		AllowedTools:  toolNames(fallbackTools),
	}, nil
}

// shouldFallbackFromMCP decides whether the MCP stage result is usable.
func shouldFallbackFromMCP(result agent.TurnResult) bool {
	text := strings.TrimSpace(result.Text)
	if text == "" || !result.UsedTool {
		return true
	}
	if text == NoToolUsed {
		return true
	}
	return strings.Contains(text, MCPFallbackToken)
}

func toolNames(defs []agent.ToolDefinition) []string {
	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.Name)
	}
	sort.Strings(names)
	return names
}

func buildMCPPrompt(goal string) string {
	return "你在执行一个数字盲道代操作任务。要求：\n" +
		"1) 必须调用至少一个 MCP 工具完成实际操作。\n" +
		"2) 若 MCP 工具无法完成，输出完全一致的标记：MCP_FALLBACK_REQUIRED\n" +
		"3) 不要输出无根据结论。\n\n" +
		"任务目标：" + goal
}

func buildFallbackPrompt(goal string) string {
	return "你在执行一个数字盲道代操作任务。要求：\n" +
		"1) 优先使用 web_search / web_fetch / exec 等工具完成。\n" +
		"2) 给出可执行结果与简要结论。\n" +
		"3) 若信息不足，明确缺口并给出下一步。\n\n" +
		"任务目标：" + goal
}
