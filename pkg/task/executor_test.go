package task

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencane/edged/pkg/agent"
)

// scriptedLoop returns queued results and records the requests it saw.
type scriptedLoop struct {
	results  []agent.TurnResult
	requests []agent.TurnRequest
}

func (l *scriptedLoop) RunTurn(_ context.Context, req agent.TurnRequest) (agent.TurnResult, error) {
	l.requests = append(l.requests, req)
	if len(l.results) == 0 {
		return agent.TurnResult{}, nil
	}
	result := l.results[0]
	l.results = l.results[1:]
	return result, nil
}

type staticTools struct {
	defs []agent.ToolDefinition
}

func (s staticTools) Definitions(_ context.Context) ([]agent.ToolDefinition, error) {
	return s.defs, nil
}

func webTools() []agent.ToolDefinition {
	return []agent.ToolDefinition{
		{Name: "web_search", Description: "search the web"},
		{Name: "web_fetch", Description: "fetch a page"},
		{Name: "exec", Description: "run a command"},
	}
}

func TestAgentExecutorMCPPath(t *testing.T) {
	loop := &scriptedLoop{results: []agent.TurnResult{
		{Text: "预约成功，周二下午三点。", UsedTool: true},
	}}
	tools := staticTools{defs: []agent.ToolDefinition{
		{Name: "mcp_booking_reserve", Description: "reserve"},
		{Name: "web_search", Description: "search"},
	}}
	exec := NewAgentExecutor(loop, tools, webTools())

	result, err := exec.Execute(context.Background(), "预约按摩", "sess-1")
	require.NoError(t, err)
	assert.Equal(t, PathMCP, result.ExecutionPath)
	assert.Equal(t, "预约成功，周二下午三点。", result.Text)
	assert.Equal(t, []string{"mcp_booking_reserve"}, result.AllowedTools)

	// Single MCP-only call: tool-use required, only mcp_ tools advertised.
	require.Len(t, loop.requests, 1)
	assert.True(t, loop.requests[0].RequireToolUse)
	require.Len(t, loop.requests[0].Tools, 1)
	assert.Equal(t, "mcp_booking_reserve", loop.requests[0].Tools[0].Name)
	assert.Equal(t, "hardware", loop.requests[0].Channel)
	assert.Contains(t, loop.requests[0].Messages[0].Content, "预约按摩")
}

func TestAgentExecutorFallsBackOnMarker(t *testing.T) {
	loop := &scriptedLoop{results: []agent.TurnResult{
		{Text: "MCP_FALLBACK_REQUIRED", UsedTool: true},
		{Text: "通过网页搜索完成。", UsedTool: true},
	}}
	tools := staticTools{defs: []agent.ToolDefinition{
		{Name: "mcp_booking_reserve", Description: "reserve"},
	}}
	exec := NewAgentExecutor(loop, tools, webTools())

	result, err := exec.Execute(context.Background(), "查航班", "sess-1")
	require.NoError(t, err)
	assert.Equal(t, PathWebExecFallback, result.ExecutionPath)
	assert.Equal(t, "通过网页搜索完成。", result.Text)
	assert.Contains(t, result.AllowedTools, "mcp_booking_reserve")
	assert.Contains(t, result.AllowedTools, "web_search")

	require.Len(t, loop.requests, 2)
	assert.True(t, loop.requests[1].RequireToolUse)
	assert.Len(t, loop.requests[1].Tools, 4)
}

func TestAgentExecutorFreeformAfterNoToolUse(t *testing.T) {
	loop := &scriptedLoop{results: []agent.TurnResult{
		{Text: "", UsedTool: false},            // MCP stage answers nothing
		{Text: "NO_TOOL_USED", UsedTool: true}, // fallback refuses tools
		{Text: "根据常识建议如下。", UsedTool: false},   // freeform
	}}
	tools := staticTools{defs: []agent.ToolDefinition{
		{Name: "mcp_booking_reserve", Description: "reserve"},
	}}
	exec := NewAgentExecutor(loop, tools, webTools())

	result, err := exec.Execute(context.Background(), "给个建议", "sess-1")
	require.NoError(t, err)
	assert.Equal(t, PathWebExecFallback, result.ExecutionPath)
	assert.Equal(t, "根据常识建议如下。", result.Text)

	require.Len(t, loop.requests, 3)
	assert.False(t, loop.requests[2].RequireToolUse)
	assert.Equal(t, "给个建议", loop.requests[2].Messages[0].Content)
}

func TestAgentExecutorNoMCPToolsSkipsFirstStage(t *testing.T) {
	loop := &scriptedLoop{results: []agent.TurnResult{
		{Text: "网页完成。", UsedTool: true},
	}}
	exec := NewAgentExecutor(loop, nil, webTools())

	result, err := exec.Execute(context.Background(), "查天气", "sess-1")
	require.NoError(t, err)
	assert.Equal(t, PathWebExecFallback, result.ExecutionPath)

	require.Len(t, loop.requests, 1)
	assert.Len(t, loop.requests[0].Tools, 3)
}
