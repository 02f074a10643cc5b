package runtime

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/opencane/edged/pkg/policy"
	"github.com/opencane/edged/pkg/protocol"
	"github.com/opencane/edged/pkg/session"
)

// speakOptions shapes one outbound utterance for the policy gates.
type speakOptions struct {
	Source     string
	Confidence float64
	RiskLevel  string
	Context    map[string]any

	// SkipSafety is set when the text already passed the safety gate, e.g.
	// task pushes that were sanitized before the task_update command.
	SkipSafety bool
}

// speakText runs the outbound text through safety and interaction policy and
// streams it as tts_start / tts_chunk / tts_stop. An empty or suppressed text
// still closes with tts_stop so the device UI never hangs in a speaking
// state. The returned error is non-nil only when ctx was canceled mid-way;
// callers treat that as "turn superseded" and stop touching session state.
func (rt *Runtime) speakText(ctx context.Context, snap session.Snapshot, text, traceID string, opts speakOptions) error {
	text = strings.TrimSpace(text)
	if text != "" && !opts.SkipSafety {
		text = rt.applySafetyText(snap, text, traceID, opts)
	}
	if text != "" {
		spoken, shouldSpeak := rt.applyInteractionText(snap, text, traceID, opts)
		if !shouldSpeak {
			rt.sessions.UpdateState(snap.DeviceID, snap.SessionID, session.StateReady)
			rt.sendTTSStop(ctx, snap, false, "interaction_policy_silent", traceID)
			return ctx.Err()
		}
		text = spoken
	}
	if text == "" {
		rt.sendTTSStop(ctx, snap, false, "", traceID)
		return ctx.Err()
	}

	if rt.cfg.TTSMode == TTSModeServerAudio {
		if rt.sendTTSAudio(ctx, snap, text, traceID) {
			return ctx.Err()
		}
	}

	rt.sessions.UpdateState(snap.DeviceID, snap.SessionID, session.StateSpeaking)
	rt.sendCommand(ctx, snap.DeviceID, snap.SessionID, protocol.CommandTTSStart,
		map[string]any{"text": headRunes(text, 80)}, traceID)
	for _, chunk := range chunkText(text, rt.cfg.TTSTextChunkChars) {
		rt.sendCommand(ctx, snap.DeviceID, snap.SessionID, protocol.CommandTTSChunk,
			map[string]any{"text": chunk}, traceID)
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	rt.sendTTSStop(ctx, snap, false, "", traceID)
	return ctx.Err()
}

// sendTTSAudio synthesizes the text and streams base64 audio frames. It
// returns false when synthesis is unavailable or failed, which sends the
// caller down the device_text path.
func (rt *Runtime) sendTTSAudio(ctx context.Context, snap session.Snapshot, text, traceID string) bool {
	if rt.tts == nil {
		rt.logger.Warn("server_audio requested but no synthesizer configured")
		return false
	}
	audio, err := rt.tts.Synthesize(ctx, text)
	if err != nil {
		rt.logger.Warn("server_audio synthesize failed", "error", err)
		return false
	}
	if len(audio.Audio) == 0 {
		return false
	}
	encoding := audio.Encoding
	if encoding == "" {
		encoding = "wav"
	}

	rt.sessions.UpdateState(snap.DeviceID, snap.SessionID, session.StateSpeaking)
	rt.sendCommand(ctx, snap.DeviceID, snap.SessionID, protocol.CommandTTSStart, map[string]any{
		"text":     headRunes(text, 80),
		"mode":     TTSModeServerAudio,
		"encoding": encoding,
	}, traceID)
	for _, chunk := range chunkBytes(audio.Audio, rt.cfg.TTSAudioChunkBytes) {
		payload := map[string]any{
			"audio_b64": base64.StdEncoding.EncodeToString(chunk),
			"encoding":  encoding,
		}
		if audio.SampleRateHz > 0 {
			payload["sample_rate_hz"] = audio.SampleRateHz
		}
		rt.sendCommand(ctx, snap.DeviceID, snap.SessionID, protocol.CommandTTSChunk, payload, traceID)
		if ctx.Err() != nil {
			return true
		}
	}
	rt.sendTTSStop(ctx, snap, false, "", traceID)
	return true
}

func (rt *Runtime) sendTTSStop(ctx context.Context, snap session.Snapshot, aborted bool, reason, traceID string) {
	payload := map[string]any{"aborted": aborted}
	if reason != "" {
		payload["reason"] = reason
	}
	rt.sendCommand(ctx, snap.DeviceID, snap.SessionID, protocol.CommandTTSStop, payload, traceID)
}

// applySafetyText runs the safety gate and records the decision as a
// safety_policy lifelog event. The decision text wins unless it came back
// blank.
func (rt *Runtime) applySafetyText(snap session.Snapshot, text, traceID string, opts speakOptions) string {
	if rt.safety == nil {
		return text
	}
	conf := opts.Confidence
	dec := rt.safety.Evaluate(policy.SafetyInput{
		Text:       text,
		Source:     opts.Source,
		Confidence: &conf,
		RiskLevel:  opts.RiskLevel,
		Context:    opts.Context,
	})
	out := strings.TrimSpace(dec.Text)
	if out == "" {
		out = text
	}

	rt.policyMu.Lock()
	rt.safetyApplied++
	if dec.Downgraded {
		rt.safetyDowngraded++
	}
	rt.policyMu.Unlock()

	rt.recordLifelog(snap, "safety_policy", map[string]any{
		"trace_id":          traceID,
		"source":            dec.Source,
		"reason":            dec.Reason,
		"flags":             append([]string{}, dec.Flags...),
		"policy_version":    dec.PolicyVersion,
		"rule_ids":          append([]string{}, dec.RuleIDs...),
		"evidence":          dec.Evidence,
		"input_text":        shorten(text, 300),
		"output_text":       shorten(out, 300),
		"input_risk_level":  opts.RiskLevel,
		"output_risk_level": dec.RiskLevel,
		"downgraded":        dec.Downgraded,
		"context":           copyMap(opts.Context),
	}, dec.RiskLevel, dec.Confidence)
	return out
}

// applyInteractionText runs the interaction gate and records the decision as
// an interaction_policy lifelog event.
func (rt *Runtime) applyInteractionText(snap session.Snapshot, text, traceID string, opts speakOptions) (string, bool) {
	if rt.interaction == nil {
		return text, true
	}
	conf := opts.Confidence
	dec := rt.interaction.Evaluate(policy.InteractionInput{
		Text:       text,
		Source:     opts.Source,
		Confidence: &conf,
		RiskLevel:  opts.RiskLevel,
		Context:    opts.Context,
		Speak:      true,
	})
	out := strings.TrimSpace(dec.Text)
	if out == "" {
		out = text
	}

	rt.policyMu.Lock()
	rt.interactionApplied++
	if !dec.ShouldSpeak {
		rt.interactionSuppressed++
	}
	rt.policyMu.Unlock()

	rt.recordLifelog(snap, "interaction_policy", map[string]any{
		"trace_id":       traceID,
		"source":         dec.Source,
		"reason":         dec.Reason,
		"flags":          append([]string{}, dec.Flags...),
		"policy_version": dec.PolicyVersion,
		"input_text":     shorten(text, 300),
		"output_text":    shorten(out, 300),
		"should_speak":   dec.ShouldSpeak,
		"risk_level":     dec.RiskLevel,
		"context":        copyMap(opts.Context),
	}, dec.RiskLevel, dec.Confidence)
	return out, dec.ShouldSpeak
}

// headRunes returns the first max runes without an ellipsis marker.
func headRunes(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}

func chunkText(text string, size int) []string {
	runes := []rune(text)
	if size <= 0 || len(runes) <= size {
		return []string{text}
	}
	chunks := make([]string, 0, (len(runes)+size-1)/size)
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}

func chunkBytes(data []byte, size int) [][]byte {
	if size <= 0 || len(data) <= size {
		return [][]byte{data}
	}
	chunks := make([][]byte, 0, (len(data)+size-1)/size)
	for start := 0; start < len(data); start += size {
		end := start + size
		if end > len(data) {
			end = len(data)
		}
		chunks = append(chunks, data[start:end])
	}
	return chunks
}
