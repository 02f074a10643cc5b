package runtime

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencane/edged/pkg/agent"
	"github.com/opencane/edged/pkg/lifelog"
	"github.com/opencane/edged/pkg/policy"
	"github.com/opencane/edged/pkg/protocol"
	"github.com/opencane/edged/pkg/session"
	"github.com/opencane/edged/pkg/task"
)

// scriptedAgent answers every turn with a fixed reply and records requests.
type scriptedAgent struct {
	mu    sync.Mutex
	reply string
	err   error
	reqs  []agent.TurnRequest
}

func (a *scriptedAgent) RunTurn(_ context.Context, req agent.TurnRequest) (agent.TurnResult, error) {
	a.mu.Lock()
	a.reqs = append(a.reqs, req)
	a.mu.Unlock()
	if a.err != nil {
		return agent.TurnResult{}, a.err
	}
	return agent.TurnResult{Text: a.reply, StopReason: "end_turn"}, nil
}

func (a *scriptedAgent) calls() []agent.TurnRequest {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]agent.TurnRequest, len(a.reqs))
	copy(out, a.reqs)
	return out
}

type intentFunc func(transcript string, payload map[string]any) bool

func (f intentFunc) IsDigitalTask(transcript string, payload map[string]any) bool {
	return f(transcript, payload)
}

type flushCall struct {
	deviceID  string
	sessionID string
	limit     int
}

// recordingTasks captures Execute and FlushPendingUpdates calls.
type recordingTasks struct {
	mu       sync.Mutex
	execErr  error
	execReqs []task.ExecuteRequest
	flushes  []flushCall
	stats    map[string]int
}

func (s *recordingTasks) Execute(_ context.Context, req task.ExecuteRequest) (task.ExecuteResult, error) {
	s.mu.Lock()
	s.execReqs = append(s.execReqs, req)
	s.mu.Unlock()
	if s.execErr != nil {
		return task.ExecuteResult{}, s.execErr
	}
	return task.ExecuteResult{TaskID: "task-1", Accepted: true}, nil
}

func (s *recordingTasks) FlushPendingUpdates(_ context.Context, deviceID, sessionID string, limit int) (task.FlushResult, error) {
	s.mu.Lock()
	s.flushes = append(s.flushes, flushCall{deviceID: deviceID, sessionID: sessionID, limit: limit})
	s.mu.Unlock()
	return task.FlushResult{DeviceID: deviceID}, nil
}

func (s *recordingTasks) Stats(context.Context, string) (map[string]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stats == nil {
		return map[string]int{}, nil
	}
	return s.stats, nil
}

func (s *recordingTasks) executions() []task.ExecuteRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]task.ExecuteRequest, len(s.execReqs))
	copy(out, s.execReqs)
	return out
}

func (s *recordingTasks) flushCalls() []flushCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]flushCall, len(s.flushes))
	copy(out, s.flushes)
	return out
}

type stubTools struct {
	defs []agent.ToolDefinition
	err  error
}

func (s stubTools) Definitions(context.Context) ([]agent.ToolDefinition, error) {
	return s.defs, s.err
}

func (s stubTools) Names() []string {
	names := make([]string, 0, len(s.defs))
	for _, def := range s.defs {
		names = append(names, def.Name)
	}
	return names
}

type stubPolicies struct {
	policy agent.DevicePolicy
	source string
	err    error
}

func (s stubPolicies) FetchDevicePolicy(context.Context, string, bool) (agent.DevicePolicy, string, error) {
	if s.err != nil {
		return agent.DevicePolicy{}, "", s.err
	}
	return s.policy, s.source, nil
}

type stubVision struct {
	answer VisionAnswer
	err    error
}

func (s stubVision) AnalyzePayload(context.Context, map[string]any) (VisionAnswer, error) {
	return s.answer, s.err
}

type stubTTS struct {
	audio TTSAudio
	err   error
}

func (s stubTTS) Synthesize(context.Context, string) (TTSAudio, error) {
	return s.audio, s.err
}

// recordingIngest accepts every frame and records the request.
type recordingIngest struct {
	mu   sync.Mutex
	reqs []lifelog.IngestRequest
}

func (s *recordingIngest) Ingest(_ context.Context, req lifelog.IngestRequest) lifelog.IngestResult {
	s.mu.Lock()
	s.reqs = append(s.reqs, req)
	s.mu.Unlock()
	return lifelog.IngestResult{Success: true, ImageID: "img-1"}
}

func (s *recordingIngest) Status() lifelog.QueueStatus {
	return lifelog.QueueStatus{Policy: "wait", Capacity: 8, Workers: 1}
}

func (s *recordingIngest) requests() []lifelog.IngestRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]lifelog.IngestRequest, len(s.reqs))
	copy(out, s.reqs)
	return out
}

func (f *fixture) speakTurn(transcript string) {
	f.t.Helper()
	f.hello()
	f.inject(protocol.EventListenStart, 2, nil)
	f.inject(protocol.EventListenStop, 3, map[string]any{"transcript": transcript})
}

func TestVoiceTurnEmptyTranscriptApologizes(t *testing.T) {
	fx := newFixture(t, Options{Store: newMemStore()})

	fx.hello()
	fx.inject(protocol.EventListenStart, 2, nil)
	fx.inject(protocol.EventListenStop, 3, nil)

	start := fx.waitCommand(protocol.CommandTTSStart)
	assert.Equal(t, "I could not understand the audio. Please try again.", start.Payload["text"])
	fx.waitCommand(protocol.CommandTTSStop)
	fx.waitState(session.StateReady)

	assert.NotContains(t, fx.mock.SentTypes(), "stt_final")

	metrics := fx.rt.metrics.Snapshot()
	assert.EqualValues(t, 1, metrics.VoiceTurnTotal)
	assert.EqualValues(t, 1, metrics.VoiceTurnFailed)

	require.Eventually(t, func() bool {
		rows := fx.store.eventsOfType("voice_turn")
		return len(rows) == 1 && rows[0].Payload["success"] == false
	}, 3*time.Second, 5*time.Millisecond)
}

func TestVoiceTurnAgentErrorApologizes(t *testing.T) {
	ag := &scriptedAgent{err: errors.New("model overloaded")}
	fx := newFixture(t, Options{Agent: ag, Store: newMemStore()})

	fx.speakTurn("how far is the elevator")

	final := fx.waitCommand(protocol.CommandSTTFinal)
	assert.Equal(t, "how far is the elevator", final.Payload["text"])

	start := fx.waitCommand(protocol.CommandTTSStart)
	assert.Equal(t, "Sorry, I encountered an error. Please try again.", start.Payload["text"])
	fx.waitState(session.StateReady)

	metrics := fx.rt.metrics.Snapshot()
	assert.EqualValues(t, 1, metrics.VoiceTurnFailed)

	require.Eventually(t, func() bool {
		rows := fx.store.eventsOfType("voice_turn")
		return len(rows) == 1 &&
			rows[0].Payload["success"] == false &&
			rows[0].Payload["error"] == "model overloaded"
	}, 3*time.Second, 5*time.Millisecond)
}

func TestVoiceTurnRoutesDigitalTaskIntents(t *testing.T) {
	ag := &scriptedAgent{reply: "should not run"}
	tasks := &recordingTasks{}
	fx := newFixture(t, Options{
		Agent:  ag,
		Tasks:  tasks,
		Store:  newMemStore(),
		Intent: intentFunc(func(string, map[string]any) bool { return true }),
	})

	fx.speakTurn("提醒我明天上午取快递")

	fx.waitCommand(protocol.CommandSTTFinal)
	fx.waitState(session.StateReady)

	require.Eventually(t, func() bool {
		return len(tasks.executions()) == 1
	}, 3*time.Second, 5*time.Millisecond)
	req := tasks.executions()[0]
	assert.Equal(t, testSession, req.SessionID)
	assert.Equal(t, testDevice, req.DeviceID)
	assert.Equal(t, "提醒我明天上午取快递", req.Goal)
	assert.True(t, req.Notify)
	assert.True(t, req.Speak)
	assert.True(t, req.InterruptPrevious)

	// The agent never sees a routed turn and nothing is spoken inline; the
	// task service pushes its own updates later.
	assert.Empty(t, ag.calls())
	assert.NotContains(t, fx.mock.SentTypes(), "tts_start")

	require.Eventually(t, func() bool {
		rows := fx.store.eventsOfType("digital_task_turn")
		return len(rows) == 1 && rows[0].Payload["routed"] == true
	}, 3*time.Second, 5*time.Millisecond)
}

func TestDigitalTaskRouteFailureApologizes(t *testing.T) {
	ag := &scriptedAgent{reply: "should not run"}
	tasks := &recordingTasks{execErr: errors.New("executor saturated")}
	fx := newFixture(t, Options{
		Agent:  ag,
		Tasks:  tasks,
		Intent: intentFunc(func(string, map[string]any) bool { return true }),
	})

	fx.speakTurn("帮我订一束花")

	start := fx.waitCommand(protocol.CommandTTSStart)
	assert.Equal(t, "I could not start that task. Please try again later.", start.Payload["text"])
	fx.waitState(session.StateReady)
	assert.Empty(t, ag.calls())
}

func TestAgentTurnCarriesToolPolicy(t *testing.T) {
	ag := &scriptedAgent{reply: "You are facing the entrance."}
	fx := newFixture(t, Options{
		Agent: ag,
		Tools: stubTools{defs: []agent.ToolDefinition{
			{Name: "navigate", Description: "plan a route"},
			{Name: "pay", Description: "settle an order"},
			{Name: "locate", Description: "report position"},
		}},
		Policies: stubPolicies{
			policy: agent.DevicePolicy{
				AllowedTools: []string{"navigate", "locate", "pay"},
				BlockedTools: []string{"pay"},
			},
			source: "control_plane",
		},
	})

	fx.speakTurn("where am i")
	fx.waitCommand(protocol.CommandTTSStop)

	require.Eventually(t, func() bool { return len(ag.calls()) == 1 }, 3*time.Second, 5*time.Millisecond)
	req := ag.calls()[0]

	assert.Equal(t, "hardware:dev-1:sess-1", req.SessionID)
	assert.Equal(t, "hardware", req.Channel)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, agent.RoleUser, req.Messages[0].Role)
	assert.Equal(t, "where am i", req.Messages[0].Content)
	assert.Len(t, req.Tools, 3)

	assert.Equal(t, map[string]bool{"navigate": true, "locate": true}, req.AllowedToolNames)
	assert.Equal(t, map[string]bool{"pay": true}, req.BlockedToolNames)

	assert.True(t, strings.HasPrefix(req.System, "You are the voice of a wearable assistive device."))
	assert.Contains(t, req.System, "Runtime context:")
	assert.Contains(t, req.System, `"allow_tools":["locate","navigate"]`)
	assert.Contains(t, req.System, `"deny_tools":["pay"]`)
	assert.Contains(t, req.System, `"source":"control_plane"`)
}

func TestDisabledDevicePolicyRemovesAllTools(t *testing.T) {
	ag := &scriptedAgent{reply: "ok"}
	fx := newFixture(t, Options{
		Agent:    ag,
		Policies: stubPolicies{policy: agent.DevicePolicy{Disabled: true}, source: "control_plane"},
	})

	fx.speakTurn("read the sign")
	fx.waitCommand(protocol.CommandTTSStop)

	require.Eventually(t, func() bool { return len(ag.calls()) == 1 }, 3*time.Second, 5*time.Millisecond)
	req := ag.calls()[0]
	require.NotNil(t, req.AllowedToolNames)
	assert.Empty(t, req.AllowedToolNames)
	assert.Contains(t, req.System, `"disabled":true`)
}

func TestPolicyFetchErrorDegradesOpen(t *testing.T) {
	ag := &scriptedAgent{reply: "ok"}
	fx := newFixture(t, Options{
		Agent:    ag,
		Policies: stubPolicies{err: errors.New("control plane unreachable")},
	})

	fx.speakTurn("read the sign")
	fx.waitCommand(protocol.CommandTTSStop)

	require.Eventually(t, func() bool { return len(ag.calls()) == 1 }, 3*time.Second, 5*time.Millisecond)
	req := ag.calls()[0]
	assert.Nil(t, req.AllowedToolNames)
	assert.Nil(t, req.BlockedToolNames)
	assert.Contains(t, req.System, `"source":"error"`)
}

func TestInteractionQuietHoursSilenceSkipsSpeech(t *testing.T) {
	interaction := policy.NewInteractionPolicy(policy.InteractionConfig{
		Enabled:                         true,
		SilentEnabled:                   true,
		QuietHoursEnabled:               true,
		QuietHoursStartHour:             22,
		QuietHoursEndHour:               7,
		SuppressLowPriorityInQuietHours: true,
		SilentSources:                   []string{"agent_reply"},
	}, func() int { return 23 })
	ag := &scriptedAgent{reply: "Package arrived."}
	fx := newFixture(t, Options{Agent: ag, Interaction: interaction, Store: newMemStore()})

	fx.speakTurn("any deliveries")

	stop := fx.waitCommand(protocol.CommandTTSStop)
	assert.Equal(t, false, stop.Payload["aborted"])
	assert.Equal(t, "interaction_policy_silent", stop.Payload["reason"])
	assert.NotContains(t, fx.mock.SentTypes(), "tts_start")
	fx.waitState(session.StateReady)

	status := fx.rt.Status(context.Background())
	gate, ok := status["interaction"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, gate["enabled"])
	assert.EqualValues(t, 1, gate["applied"])
	assert.EqualValues(t, 1, gate["suppressed"])

	require.Eventually(t, func() bool {
		rows := fx.store.eventsOfType("interaction_policy")
		return len(rows) == 1 && rows[0].Payload["should_speak"] == false
	}, 3*time.Second, 5*time.Millisecond)
}

func TestServerAudioStreamsSynthesizedFrames(t *testing.T) {
	pcm := make([]byte, 1200)
	for i := range pcm {
		pcm[i] = byte(i)
	}
	ag := &scriptedAgent{reply: "The hallway is clear ahead."}
	fx := newFixture(t, Options{
		Agent:  ag,
		TTS:    stubTTS{audio: TTSAudio{Audio: pcm, Encoding: "opus", SampleRateHz: 16000}},
		Config: Config{TTSMode: TTSModeServerAudio, TTSAudioChunkBytes: 512},
	})

	fx.speakTurn("is the hallway clear")
	fx.waitCommand(protocol.CommandTTSStop)

	start := fx.waitCommand(protocol.CommandTTSStart)
	assert.Equal(t, "The hallway is clear ahead.", start.Payload["text"])
	assert.Equal(t, TTSModeServerAudio, start.Payload["mode"])
	assert.Equal(t, "opus", start.Payload["encoding"])

	var chunks []protocol.Envelope
	for _, env := range fx.mock.Sent() {
		if env.Type == string(protocol.CommandTTSChunk) {
			chunks = append(chunks, env)
		}
	}
	require.Len(t, chunks, 3)
	var rebuilt []byte
	for _, chunk := range chunks {
		assert.Equal(t, "opus", chunk.Payload["encoding"])
		assert.EqualValues(t, 16000, chunk.Payload["sample_rate_hz"])
		data, err := base64.StdEncoding.DecodeString(chunk.Payload["audio_b64"].(string))
		require.NoError(t, err)
		rebuilt = append(rebuilt, data...)
	}
	assert.Equal(t, pcm, rebuilt)
	assert.Len(t, chunks[0].Payload["audio_b64"], base64.StdEncoding.EncodedLen(512))
}

func TestServerAudioFallsBackToTextOnSynthError(t *testing.T) {
	ag := &scriptedAgent{reply: "Fallback answer."}
	fx := newFixture(t, Options{
		Agent:  ag,
		TTS:    stubTTS{err: errors.New("synth offline")},
		Config: Config{TTSMode: TTSModeServerAudio},
	})

	fx.speakTurn("anything")
	fx.waitCommand(protocol.CommandTTSStop)

	start := fx.waitCommand(protocol.CommandTTSStart)
	_, hasMode := start.Payload["mode"]
	assert.False(t, hasMode, "text fallback must not advertise server_audio")

	chunk := fx.waitCommand(protocol.CommandTTSChunk)
	assert.Equal(t, "Fallback answer.", chunk.Payload["text"])
}

func TestVisionTurnSpeaksAnswerAndIngestsFrame(t *testing.T) {
	ingest := &recordingIngest{}
	fx := newFixture(t, Options{
		Vision: stubVision{answer: VisionAnswer{Text: "A red door, two steps ahead.", Confidence: 0.92, RiskLevel: "P3"}},
		Ingest: ingest,
		Store:  newMemStore(),
	})

	frame := base64.StdEncoding.EncodeToString([]byte("fake-jpeg-bytes"))
	fx.hello()
	fx.inject(protocol.EventImageReady, 2, map[string]any{
		"image_base64": frame,
		"question":     "what is ahead",
		"ts":           1700000000000,
	})

	start := fx.waitCommand(protocol.CommandTTSStart)
	assert.Equal(t, "A red door, two steps ahead.", start.Payload["text"])
	fx.waitCommand(protocol.CommandTTSStop)
	fx.waitState(session.StateReady)

	require.Eventually(t, func() bool {
		return len(ingest.requests()) == 1
	}, 3*time.Second, 5*time.Millisecond)
	req := ingest.requests()[0]
	assert.Equal(t, testSession, req.SessionID)
	assert.Equal(t, testDevice, req.DeviceID)
	assert.Equal(t, frame, req.ImageBase64)
	assert.Equal(t, "what is ahead", req.Question)
	assert.Equal(t, "image/jpeg", req.MIME)
	assert.Equal(t, "hardware_runtime", req.Metadata["source"])
	assert.EqualValues(t, 1700000000000, req.TSMS)

	require.Eventually(t, func() bool {
		rows := fx.store.eventsOfType("image_turn")
		return len(rows) == 1 &&
			rows[0].Payload["success"] == true &&
			rows[0].Payload["question"] == "what is ahead"
	}, 3*time.Second, 5*time.Millisecond)
}

func TestVisionUnavailableApologizes(t *testing.T) {
	fx := newFixture(t, Options{Store: newMemStore()})

	fx.hello()
	fx.inject(protocol.EventImageReady, 2, map[string]any{"question": "what is this"})

	start := fx.waitCommand(protocol.CommandTTSStart)
	assert.Equal(t, "Vision service is not available.", start.Payload["text"])
	fx.waitState(session.StateReady)

	require.Eventually(t, func() bool {
		rows := fx.store.eventsOfType("image_turn")
		return len(rows) == 1 &&
			rows[0].Payload["success"] == false &&
			rows[0].Payload["reason"] == "vision unavailable"
	}, 3*time.Second, 5*time.Millisecond)
}

func TestVisionErrorFallsBackToGenericAnswer(t *testing.T) {
	fx := newFixture(t, Options{
		Vision: stubVision{err: errors.New("vision backend 503")},
		Store:  newMemStore(),
	})

	fx.hello()
	fx.inject(protocol.EventImageReady, 2, map[string]any{"question": "describe"})

	start := fx.waitCommand(protocol.CommandTTSStart)
	assert.Equal(t, "I could not analyze the image.", start.Payload["text"])
	fx.waitState(session.StateReady)

	require.Eventually(t, func() bool {
		rows := fx.store.eventsOfType("image_turn")
		return len(rows) == 1 && rows[0].Payload["success"] == false
	}, 3*time.Second, 5*time.Millisecond)
	row := fx.store.eventsOfType("image_turn")[0]
	assert.Equal(t, "P2", row.RiskLevel)
	assert.EqualValues(t, 0.7, row.Confidence)
}
