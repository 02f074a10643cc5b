package runtime

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"github.com/opencane/edged/pkg/agent"
	"github.com/opencane/edged/pkg/lifelog"
	"github.com/opencane/edged/pkg/protocol"
	"github.com/opencane/edged/pkg/session"
	"github.com/opencane/edged/pkg/task"
)

// voiceSystemPrompt frames the agent for spoken replies on a wearable
// assistive device. The runtime context document is appended per turn.
const voiceSystemPrompt = `You are the voice of a wearable assistive device. ` +
	`Answer in short spoken sentences a person can follow while walking. ` +
	`Prefer concrete, immediately actionable guidance. If you are unsure, say so ` +
	`and suggest the safest option. Use the runtime context below for device ` +
	`state and recent telemetry; never read identifiers or raw JSON aloud.`

// runVoiceTurn finalizes the audio capture, routes the transcript to either
// the digital-task service or the agent, and speaks the reply. It runs as
// the session's single in-flight turn; barge-in, abort, and close cancel ctx.
func (rt *Runtime) runVoiceTurn(ctx context.Context, snap session.Snapshot, payload map[string]any, traceID string) {
	turnStart := rt.nowMS()
	transcript := rt.capture.FinalizeCapture(ctx, snap.DeviceID, snap.SessionID, payload)
	sttLatency := rt.nowMS() - turnStart
	if ctx.Err() != nil {
		return
	}

	if transcript == "" {
		if err := rt.speakText(ctx, snap, "I could not understand the audio. Please try again.", traceID, speakOptions{
			Source:     "stt_error",
			Confidence: 1.0,
			RiskLevel:  "P2",
			Context:    map[string]any{"stage": "listen_stop"},
		}); err != nil {
			return
		}
		rt.sessions.UpdateState(snap.DeviceID, snap.SessionID, session.StateReady)
		total := rt.nowMS() - turnStart
		rt.metrics.RecordVoiceTurn(false, float64(total), float64(sttLatency), 0)
		rt.recordLifelog(snap, "voice_turn", map[string]any{
			"trace_id":         traceID,
			"transcript":       "",
			"response":         "",
			"success":          false,
			"stt_latency_ms":   sttLatency,
			"agent_latency_ms": 0,
			"total_latency_ms": total,
		}, "P2", 0)
		return
	}

	rt.sendCommand(ctx, snap.DeviceID, snap.SessionID, protocol.CommandSTTFinal,
		map[string]any{"text": transcript}, traceID)
	rt.recordTrace(snap, traceID, "stt_final", map[string]any{
		"transcript": shorten(transcript, 280),
	})

	if rt.tasks != nil && rt.intent.IsDigitalTask(transcript, payload) {
		if rt.routeDigitalTask(ctx, snap, transcript, traceID) {
			if ctx.Err() != nil {
				return
			}
			rt.sessions.UpdateState(snap.DeviceID, snap.SessionID, session.StateReady)
			total := rt.nowMS() - turnStart
			rt.metrics.RecordVoiceTurn(true, float64(total), float64(sttLatency), 0)
			rt.recordLifelog(snap, "digital_task_turn", map[string]any{
				"trace_id":         traceID,
				"transcript":       transcript,
				"routed":           true,
				"stt_latency_ms":   sttLatency,
				"agent_latency_ms": 0,
				"total_latency_ms": total,
			}, "P3", 0.8)
			return
		}
	}

	agentStart := rt.nowMS()
	reply, err := rt.answerTranscript(ctx, snap, transcript, traceID)
	agentLatency := rt.nowMS() - agentStart
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		rt.logger.Warn("agent turn failed",
			"device_id", snap.DeviceID,
			"session_id", snap.SessionID,
			"trace_id", traceID,
			"error", err)
		if err := rt.speakText(ctx, snap, "Sorry, I encountered an error. Please try again.", traceID, speakOptions{
			Source:     "agent_error",
			Confidence: 1.0,
			RiskLevel:  "P2",
			Context:    map[string]any{"transcript": shorten(transcript, 280)},
		}); err != nil {
			return
		}
		rt.sessions.UpdateState(snap.DeviceID, snap.SessionID, session.StateReady)
		total := rt.nowMS() - turnStart
		rt.metrics.RecordVoiceTurn(false, float64(total), float64(sttLatency), float64(agentLatency))
		rt.recordLifelog(snap, "voice_turn", map[string]any{
			"trace_id":         traceID,
			"transcript":       transcript,
			"response":         "",
			"success":          false,
			"error":            err.Error(),
			"stt_latency_ms":   sttLatency,
			"agent_latency_ms": agentLatency,
			"total_latency_ms": total,
		}, "P2", 0)
		return
	}

	if err := rt.speakText(ctx, snap, reply, traceID, speakOptions{
		Source:     "agent_reply",
		Confidence: 0.75,
		RiskLevel:  "P3",
		Context:    map[string]any{"transcript": transcript},
	}); err != nil {
		return
	}
	rt.sessions.UpdateState(snap.DeviceID, snap.SessionID, session.StateReady)
	total := rt.nowMS() - turnStart
	rt.metrics.RecordVoiceTurn(true, float64(total), float64(sttLatency), float64(agentLatency))
	rt.recordLifelog(snap, "voice_turn", map[string]any{
		"trace_id":         traceID,
		"transcript":       transcript,
		"response":         shorten(reply, 1000),
		"success":          true,
		"stt_latency_ms":   sttLatency,
		"agent_latency_ms": agentLatency,
		"total_latency_ms": total,
	}, "P3", 0.7)
}

// answerTranscript runs one agent turn with the device's effective tool
// policy and the runtime context document. A nil agent yields an empty
// reply; the speak path turns that into a plain tts_stop.
func (rt *Runtime) answerTranscript(ctx context.Context, snap session.Snapshot, transcript, traceID string) (string, error) {
	if rt.agent == nil {
		return "", nil
	}

	allowed, blocked, policyContext := rt.resolveToolPolicy(ctx, snap)

	var tools []agent.ToolDefinition
	if rt.tools != nil {
		defs, err := rt.tools.Definitions(ctx)
		if err != nil {
			rt.logger.Debug("tool definitions unavailable", "error", err)
		} else {
			tools = defs
		}
	}

	system := voiceSystemPrompt
	if doc := rt.buildRuntimeContext(snap, traceID, transcript, policyContext); doc != nil {
		if raw, err := json.Marshal(doc); err == nil {
			system += "\n\nRuntime context:\n" + string(raw)
		}
	}

	res, err := rt.agent.RunTurn(ctx, agent.TurnRequest{
		SessionID:        agentSessionKey(snap.DeviceID, snap.SessionID),
		Channel:          "hardware",
		System:           system,
		Messages:         []agent.Message{{Role: agent.RoleUser, Content: transcript}},
		Tools:            tools,
		AllowedToolNames: allowed,
		BlockedToolNames: blocked,
	})
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// resolveToolPolicy fetches the control-plane tool policy for the device.
// Fetch trouble degrades to "no restriction" so the turn still answers; the
// returned context records what happened for the runtime context document.
func (rt *Runtime) resolveToolPolicy(ctx context.Context, snap session.Snapshot) (allowed, blocked map[string]bool, policyContext map[string]any) {
	if rt.policies == nil {
		return nil, nil, map[string]any{"enabled": false, "source": "disabled"}
	}
	dp, source, err := rt.policies.FetchDevicePolicy(ctx, snap.DeviceID, false)
	if err != nil {
		rt.logger.Debug("device policy fetch failed", "device_id", snap.DeviceID, "error", err)
		return nil, nil, map[string]any{
			"enabled": true,
			"source":  "error",
			"warning": err.Error(),
		}
	}

	blocked = nameSet(dp.BlockedTools)
	if len(dp.AllowedTools) > 0 {
		allowed = nameSet(dp.AllowedTools)
		for name := range blocked {
			delete(allowed, name)
		}
	}
	if dp.Disabled {
		// A disabled device keeps conversing but every tool is off the table.
		allowed = map[string]bool{}
	}
	return allowed, blocked, map[string]any{
		"enabled":     true,
		"source":      source,
		"disabled":    dp.Disabled,
		"allow_tools": sortedNames(allowed),
		"deny_tools":  sortedNames(blocked),
	}
}

// buildRuntimeContext assembles the per-turn context document handed to the
// agent. It re-reads the live session so telemetry applied after the event
// was queued still makes it into the turn.
func (rt *Runtime) buildRuntimeContext(snap session.Snapshot, traceID, transcript string, policyContext map[string]any) map[string]any {
	if fresh, ok := rt.sessions.Get(snap.DeviceID, snap.SessionID); ok {
		snap = fresh
	}
	doc := map[string]any{
		"device_id":        snap.DeviceID,
		"session_id":       snap.SessionID,
		"state":            string(snap.State),
		"trace_id":         traceID,
		"transcript":       shorten(transcript, 280),
		"telemetry":        copyMap(snap.Telemetry),
		"session_metadata": copyMap(snap.Metadata),
		"tool_policy":      policyContext,
	}
	if structured, ok := snap.Metadata["telemetry_structured"].(map[string]any); ok {
		doc["telemetry_structured"] = copyMap(structured)
	}
	return doc
}

// routeDigitalTask hands one transcript to the task service. It returns true
// when the turn is consumed, including the failure case where the caller
// already heard an apology.
func (rt *Runtime) routeDigitalTask(ctx context.Context, snap session.Snapshot, transcript, traceID string) bool {
	res, err := rt.tasks.Execute(ctx, task.ExecuteRequest{
		SessionID:         snap.SessionID,
		DeviceID:          snap.DeviceID,
		Goal:              transcript,
		Notify:            true,
		Speak:             true,
		InterruptPrevious: true,
	})
	if err != nil {
		rt.logger.Warn("digital task route failed",
			"device_id", snap.DeviceID,
			"trace_id", traceID,
			"error", err)
		rt.speakText(ctx, snap, "I could not start that task. Please try again later.", traceID, speakOptions{
			Source:     "digital_task_route",
			Confidence: 1.0,
			RiskLevel:  "P2",
		})
		return true
	}
	rt.logger.Info("digital task routed from voice",
		"device_id", snap.DeviceID,
		"session_id", snap.SessionID,
		"task_id", res.TaskID,
		"trace_id", traceID)
	return true
}

// runVisionTurn ingests the frame into the lifelog, answers the question
// through the vision service, and speaks the answer.
func (rt *Runtime) runVisionTurn(ctx context.Context, snap session.Snapshot, payload map[string]any, traceID string) {
	// Pipeline.Ingest blocks until the frame is processed; the spoken answer
	// must not wait on dedup and indexing, so ingest runs off-turn. Barge-in
	// cancels the turn but never a frame already handed to the pipeline.
	rt.turnWG.Add(1)
	go func() {
		defer rt.turnWG.Done()
		rt.ingestTurnImage(rt.baseCtx, snap, payload, traceID)
	}()

	question := protocol.PayloadString(payload, "question", "prompt")

	if rt.vision == nil {
		if err := rt.speakText(ctx, snap, "Vision service is not available.", traceID, speakOptions{
			Source:     "vision_reply",
			Confidence: 1.0,
			RiskLevel:  "P2",
			Context:    map[string]any{"reason": "vision unavailable"},
		}); err != nil {
			return
		}
		rt.sessions.UpdateState(snap.DeviceID, snap.SessionID, session.StateReady)
		rt.recordLifelog(snap, "image_turn", map[string]any{
			"trace_id": traceID,
			"success":  false,
			"reason":   "vision unavailable",
		}, "P2", 0)
		return
	}

	answer, err := rt.vision.AnalyzePayload(ctx, payload)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		rt.logger.Warn("vision analyze failed",
			"device_id", snap.DeviceID,
			"trace_id", traceID,
			"error", err)
		answer = VisionAnswer{}
	}
	text := strings.TrimSpace(answer.Text)
	if text == "" {
		text = "I could not analyze the image."
	}
	confidence := answer.Confidence
	if confidence <= 0 {
		confidence = 0.7
	}
	risk := answer.RiskLevel
	if risk == "" {
		risk = "P2"
	}

	if speakErr := rt.speakText(ctx, snap, text, traceID, speakOptions{
		Source:     "vision_reply",
		Confidence: confidence,
		RiskLevel:  risk,
		Context: map[string]any{
			"question":       question,
			"vision_success": err == nil && answer.Text != "",
			"proactive_hint": "I can keep describing obstacles on either side and which directions are clear.",
		},
	}); speakErr != nil {
		return
	}
	rt.sessions.UpdateState(snap.DeviceID, snap.SessionID, session.StateReady)
	rt.recordLifelog(snap, "image_turn", map[string]any{
		"trace_id": traceID,
		"question": question,
		"result":   shorten(text, 1000),
		"success":  err == nil,
	}, risk, confidence)
}

// ingestTurnImage enqueues the image_ready frame into the lifelog pipeline.
// The turn never waits on ingest; dedup and analysis run on pipeline workers.
func (rt *Runtime) ingestTurnImage(ctx context.Context, snap session.Snapshot, payload map[string]any, traceID string) {
	if rt.ingest == nil {
		return
	}
	image := protocol.PayloadString(payload, "image_base64", "imageBase64", "image")
	if image == "" {
		return
	}
	mime := protocol.PayloadString(payload, "mime")
	if mime == "" {
		mime = "image/jpeg"
	}
	res := rt.ingest.Ingest(ctx, lifelog.IngestRequest{
		SessionID:   snap.SessionID,
		DeviceID:    snap.DeviceID,
		ImageBase64: image,
		Question:    protocol.PayloadString(payload, "question", "prompt"),
		MIME:        mime,
		Metadata:    map[string]any{"trace_id": traceID, "source": "hardware_runtime"},
		TSMS:        protocol.PayloadInt(payload, 0, "ts", "ts_ms"),
	})
	if !res.Success && res.ErrorCode != "" {
		rt.logger.Debug("lifelog image ingest rejected",
			"device_id", snap.DeviceID,
			"error_code", res.ErrorCode,
			"error", res.Error)
	}
}

func nameSet(names []string) map[string]bool {
	if len(names) == 0 {
		return nil
	}
	out := make(map[string]bool, len(names))
	for _, name := range names {
		if v := strings.TrimSpace(name); v != "" {
			out[v] = true
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func sortedNames(set map[string]bool) []string {
	if len(set) == 0 {
		return []string{}
	}
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
