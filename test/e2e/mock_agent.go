package e2e

import (
	"context"
	"sync"

	"github.com/opencane/edged/pkg/agent"
	"github.com/opencane/edged/pkg/lifelog"
	"github.com/opencane/edged/pkg/task"
)

// AgentReply is one scripted agent turn.
type AgentReply struct {
	Text string
	Err  error
}

// ScriptedAgent satisfies runtime.AgentLoop with canned replies dispatched
// in call order. Once the script runs out the last entry repeats, so a
// scenario with one reply can drive any number of turns.
type ScriptedAgent struct {
	Script []AgentReply

	mu       sync.Mutex
	requests []agent.TurnRequest
}

func (a *ScriptedAgent) RunTurn(_ context.Context, req agent.TurnRequest) (agent.TurnResult, error) {
	a.mu.Lock()
	idx := len(a.requests)
	a.requests = append(a.requests, req)
	a.mu.Unlock()

	if len(a.Script) == 0 {
		return agent.TurnResult{StopReason: "end_turn"}, nil
	}
	if idx >= len(a.Script) {
		idx = len(a.Script) - 1
	}
	entry := a.Script[idx]
	if entry.Err != nil {
		return agent.TurnResult{}, entry.Err
	}
	return agent.TurnResult{Text: entry.Text, StopReason: "end_turn"}, nil
}

// Calls reports how many turns ran.
func (a *ScriptedAgent) Calls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.requests)
}

// LastRequest returns the most recent turn request.
func (a *ScriptedAgent) LastRequest() (agent.TurnRequest, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.requests) == 0 {
		return agent.TurnRequest{}, false
	}
	return a.requests[len(a.requests)-1], true
}

// ExecEntry is one scripted digital-task execution.
type ExecEntry struct {
	Text string
	Err  error

	// BlockUntilCanceled parks the execution on ctx.Done, the shape of a
	// long-running task that only ends when the service cancels it.
	BlockUntilCanceled bool
}

// ScriptedTaskExecutor satisfies task.Executor with entries dispatched in
// call order. Started receives each goal as its execution begins, so
// scenarios can sequence against a task being demonstrably in flight.
type ScriptedTaskExecutor struct {
	Entries []ExecEntry
	Started chan string

	mu    sync.Mutex
	calls int
}

// NewScriptedTaskExecutor builds an executor with a buffered Started channel.
func NewScriptedTaskExecutor(entries ...ExecEntry) *ScriptedTaskExecutor {
	return &ScriptedTaskExecutor{
		Entries: entries,
		Started: make(chan string, 16),
	}
}

func (e *ScriptedTaskExecutor) Execute(ctx context.Context, goal, _ string) (task.ExecResult, error) {
	e.mu.Lock()
	idx := e.calls
	e.calls++
	e.mu.Unlock()

	var entry ExecEntry
	if idx < len(e.Entries) {
		entry = e.Entries[idx]
	}

	select {
	case e.Started <- goal:
	default:
	}

	if entry.BlockUntilCanceled {
		<-ctx.Done()
		return task.ExecResult{}, ctx.Err()
	}
	if entry.Err != nil {
		return task.ExecResult{}, entry.Err
	}
	return task.ExecResult{Text: entry.Text, ExecutionPath: "scripted"}, nil
}

// Calls reports how many executions started.
func (e *ScriptedTaskExecutor) Calls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calls
}

// BlockingAnalyzer parks every Analyze call until Release is closed, holding
// the ingest worker busy so scenarios can fill the queue behind it. Entered
// receives one session id per call as it starts.
type BlockingAnalyzer struct {
	Entered chan string
	release chan struct{}
	once    sync.Once
}

// NewBlockingAnalyzer wires the signal channels.
func NewBlockingAnalyzer() *BlockingAnalyzer {
	return &BlockingAnalyzer{
		Entered: make(chan string, 16),
		release: make(chan struct{}),
	}
}

// Release lets every parked and future Analyze call finish. Idempotent.
func (a *BlockingAnalyzer) Release() {
	a.once.Do(func() { close(a.release) })
}

func (a *BlockingAnalyzer) Analyze(ctx context.Context, req lifelog.AnalyzeRequest) (map[string]any, error) {
	select {
	case a.Entered <- req.SessionID:
	default:
	}
	select {
	case <-a.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return map[string]any{
		"summary":    "street scene with storefronts",
		"objects":    []string{"storefront", "sidewalk"},
		"risk_level": "P3",
	}, nil
}
